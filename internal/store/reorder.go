package store

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"petshop/catalog/internal/client"
	"petshop/catalog/internal/domain"
)

var (
	ErrEmptyOrder     = errors.New("no sizes to reorder")
	ErrInvalidOrderID = errors.New("size id must be set")
	ErrDuplicateOrder = errors.New("size appears more than once")
)

// Placement is one entry of a reorder plan.
type Placement struct {
	ID           domain.ID `json:"id"`
	DisplayOrder int       `json:"displayOrder"`
}

// PlanDisplayOrder assigns displayOrder = index to each id, in input order.
// The same ids always produce the same plan.
func PlanDisplayOrder(ids []domain.ID) ([]Placement, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyOrder
	}

	seen := make(map[domain.ID]int, len(ids))
	plan := make([]Placement, 0, len(ids))
	for i, id := range ids {
		if id == 0 {
			return nil, fmt.Errorf("position %d: %w", i, ErrInvalidOrderID)
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("size #%s at positions %d and %d: %w", id, prev, i, ErrDuplicateOrder)
		}
		seen[id] = i
		plan = append(plan, Placement{ID: id, DisplayOrder: i})
	}
	return plan, nil
}

// ReorderResult is the outcome of a batch reorder. Plan is set whenever the
// ids were accepted locally, even if the server then rejected them.
type ReorderResult struct {
	Outcome Outcome
	Plan    []Placement
	Message string
	Error   string
}

func (r ReorderResult) OK() bool {
	return r.Outcome == OutcomeOK
}

// SizeController is the size list controller plus batch reordering.
type SizeController struct {
	*Controller[domain.Size, domain.SizeDraft]
	api *client.SizeAPI
}

func NewSizeController(api *client.SizeAPI, v Validator, opts ...Option) *SizeController {
	return &SizeController{
		Controller: NewController[domain.Size, domain.SizeDraft](sizeResource{api: api}, v, opts...),
		api:        api,
	}
}

// Reorder submits the whole ordered id sequence as one mutation and reloads
// on success. Either every id gets its new position or none does.
func (c *SizeController) Reorder(ctx context.Context, ids []domain.ID) ReorderResult {
	plan, err := PlanDisplayOrder(ids)
	if err != nil {
		log.Warnf("Rejected reorder: %v", err)
		return ReorderResult{Outcome: OutcomeInvalid, Error: err.Error()}
	}

	ordered := make([]domain.ID, len(plan))
	for i, p := range plan {
		ordered[i] = p.ID
	}

	res := c.mutate(ctx, "reorder", 0, ordered, func(ctx context.Context) client.Result {
		return c.api.UpdateDisplayOrder(ctx, ordered)
	})

	out := ReorderResult{Plan: plan}
	switch res.Kind {
	case client.KindOK:
		out.Outcome = OutcomeOK
		out.Message = res.Message
	case client.KindBusiness:
		out.Outcome = OutcomeBusiness
		out.Error = res.Message
	default:
		out.Outcome = OutcomeNetwork
		out.Error = res.Message
	}
	return out
}
