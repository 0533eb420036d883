package store

import (
	"cmp"
	"context"
	"slices"

	"petshop/catalog/internal/client"
	"petshop/catalog/internal/domain"
)

// Resource adapts one REST collection to a Controller.
type Resource[T any, D any] interface {
	Name() string // plural, used in logs and journal entries
	Noun() string // singular, used in prompts
	Fetch(ctx context.Context, q domain.ListQuery) client.Result
	Create(ctx context.Context, draft D) client.Result
	Update(ctx context.Context, id domain.ID, draft D) client.Result
	Delete(ctx context.Context, id domain.ID) client.Result
	ToggleStatus(ctx context.Context, id domain.ID) client.Result
	// Arrange puts a freshly fetched list into presentation order in place.
	Arrange(items []T)
}

type categoryResource struct {
	api *client.CategoryAPI
}

func (r categoryResource) Name() string { return "categories" }
func (r categoryResource) Noun() string { return "category" }

func (r categoryResource) Fetch(ctx context.Context, q domain.ListQuery) client.Result {
	if q.ActiveOnly {
		return r.api.Active(ctx)
	}
	return r.api.List(ctx, q)
}

func (r categoryResource) Create(ctx context.Context, draft domain.CategoryDraft) client.Result {
	return r.api.Create(ctx, draft)
}

func (r categoryResource) Update(ctx context.Context, id domain.ID, draft domain.CategoryDraft) client.Result {
	return r.api.Update(ctx, id, draft)
}

func (r categoryResource) Delete(ctx context.Context, id domain.ID) client.Result {
	return r.api.Delete(ctx, id)
}

func (r categoryResource) ToggleStatus(ctx context.Context, id domain.ID) client.Result {
	return r.api.ToggleStatus(ctx, id)
}

func (r categoryResource) Arrange([]domain.Category) {}

type sizeResource struct {
	api *client.SizeAPI
}

func (r sizeResource) Name() string { return "sizes" }
func (r sizeResource) Noun() string { return "size" }

// Fetch picks the endpoint: active-only bypasses pagination, a bare unit
// filter uses the by-unit listing, anything else goes to the paginated
// collection with the unit forwarded as a server-side filter.
func (r sizeResource) Fetch(ctx context.Context, q domain.ListQuery) client.Result {
	switch {
	case q.ActiveOnly:
		return r.api.Active(ctx)
	case q.Unit != "" && !q.FiltersEngaged():
		return r.api.ByUnit(ctx, q.Unit)
	default:
		return r.api.List(ctx, q)
	}
}

func (r sizeResource) Create(ctx context.Context, draft domain.SizeDraft) client.Result {
	return r.api.Create(ctx, draft)
}

func (r sizeResource) Update(ctx context.Context, id domain.ID, draft domain.SizeDraft) client.Result {
	return r.api.Update(ctx, id, draft)
}

func (r sizeResource) Delete(ctx context.Context, id domain.ID) client.Result {
	return r.api.Delete(ctx, id)
}

func (r sizeResource) ToggleStatus(ctx context.Context, id domain.ID) client.Result {
	return r.api.ToggleStatus(ctx, id)
}

// Arrange orders sizes by ascending displayOrder, unordered sizes last. The
// sort is stable so the server's tie-break (name) survives.
func (r sizeResource) Arrange(items []domain.Size) {
	slices.SortStableFunc(items, func(a, b domain.Size) int {
		switch {
		case a.DisplayOrder == nil && b.DisplayOrder == nil:
			return 0
		case a.DisplayOrder == nil:
			return 1
		case b.DisplayOrder == nil:
			return -1
		default:
			return cmp.Compare(*a.DisplayOrder, *b.DisplayOrder)
		}
	})
}

func NewCategoryController(api *client.CategoryAPI, v Validator, opts ...Option) *Controller[domain.Category, domain.CategoryDraft] {
	return NewController[domain.Category, domain.CategoryDraft](categoryResource{api: api}, v, opts...)
}
