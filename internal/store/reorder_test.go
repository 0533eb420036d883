package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petshop/catalog/internal/client"
	"petshop/catalog/internal/domain"
)

func TestPlanDisplayOrder(t *testing.T) {
	plan, err := PlanDisplayOrder([]domain.ID{5, 2, 8})
	require.NoError(t, err)
	assert.Equal(t, []Placement{
		{ID: 5, DisplayOrder: 0},
		{ID: 2, DisplayOrder: 1},
		{ID: 8, DisplayOrder: 2},
	}, plan)

	again, err := PlanDisplayOrder([]domain.ID{5, 2, 8})
	require.NoError(t, err)
	assert.Equal(t, plan, again)
}

func TestPlanDisplayOrder_Rejects(t *testing.T) {
	tests := []struct {
		name string
		ids  []domain.ID
		want error
	}{
		{"empty", nil, ErrEmptyOrder},
		{"zero id", []domain.ID{4, 0}, ErrInvalidOrderID},
		{"duplicate", []domain.ID{4, 9, 4}, ErrDuplicateOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanDisplayOrder(tt.ids)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, plan)
		})
	}
}

// orderServer mimics the server: it stores 1-based positions for the ids it
// receives and lists sizes of one unit in storage order.
type orderServer struct {
	mu     sync.Mutex
	sizes  map[domain.ID]domain.Size
	stored []domain.ID
}

func newOrderServer(ids ...domain.ID) *orderServer {
	s := &orderServer{sizes: map[domain.ID]domain.Size{}}
	for _, id := range ids {
		s.sizes[id] = domain.Size{ID: id, SizeName: "size " + id.String(), Unit: domain.UnitWeight, Status: true}
		s.stored = append(s.stored, id)
	}
	return s
}

func (s *orderServer) reorder(_ client.Operation, payload any) client.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, id := range payload.([]domain.ID) {
		size := s.sizes[id]
		order := i + 1
		size.DisplayOrder = &order
		s.sizes[id] = size
	}
	return client.Result{Kind: client.KindOK, Message: "Display order updated"}
}

func (s *orderServer) byUnit(client.Operation, any) client.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Size, 0, len(s.stored))
	for _, id := range s.stored {
		out = append(out, s.sizes[id])
	}
	return okResult(out, nil)
}

func (s *orderServer) assignment() map[domain.ID]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[domain.ID]int{}
	for id, size := range s.sizes {
		if size.DisplayOrder != nil {
			out[id] = *size.DisplayOrder
		}
	}
	return out
}

func TestReorder_SubmitsBatchAndReloads(t *testing.T) {
	server := newOrderServer(8, 2, 5)
	gw := newFakeGateway()
	gw.on("sizes.reorder", server.reorder)
	gw.on("sizes.by_unit", server.byUnit)

	rec := &memoryRecorder{}
	c := newSizes(gw, WithRecorder(rec), WithQuery(domain.ListQuery{Unit: domain.UnitWeight}))
	ctx := context.Background()

	res := c.Reorder(ctx, []domain.ID{5, 2, 8})
	require.True(t, res.OK(), res.Error)
	assert.Equal(t, []Placement{{5, 0}, {2, 1}, {8, 2}}, res.Plan)
	assert.Equal(t, "Display order updated", res.Message)

	assert.Equal(t, 1, gw.count("sizes.reorder"))
	_, payload := gw.lastOp("sizes.reorder")
	assert.Equal(t, []domain.ID{5, 2, 8}, payload)
	assert.Equal(t, 1, gw.count("sizes.by_unit"), "exactly one reload")

	var ids []domain.ID
	for _, s := range c.Snapshot().Items {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []domain.ID{5, 2, 8}, ids)
	assert.False(t, c.Snapshot().Loading)

	require.Len(t, rec.events, 1)
	assert.Equal(t, "sizes.reorder", rec.events[0].EventType())
	assert.Equal(t, []domain.ID{5, 2, 8}, rec.events[0].IDs)
}

func TestReorder_Idempotent(t *testing.T) {
	server := newOrderServer(8, 2, 5)
	gw := newFakeGateway()
	gw.on("sizes.reorder", server.reorder)
	gw.on("sizes.by_unit", server.byUnit)
	c := newSizes(gw, WithQuery(domain.ListQuery{Unit: domain.UnitWeight}))
	ctx := context.Background()

	first := c.Reorder(ctx, []domain.ID{5, 2, 8})
	require.True(t, first.OK())
	afterFirst := server.assignment()
	itemsFirst := c.Snapshot().Items

	second := c.Reorder(ctx, []domain.ID{5, 2, 8})
	require.True(t, second.OK())

	assert.Equal(t, first.Plan, second.Plan)
	assert.Equal(t, afterFirst, server.assignment())
	assert.Equal(t, itemsFirst, c.Snapshot().Items)
}

func TestReorder_InvalidNeverReachesNetwork(t *testing.T) {
	gw := newFakeGateway()
	c := newSizes(gw)

	res := c.Reorder(context.Background(), []domain.ID{3, 3})
	assert.Equal(t, OutcomeInvalid, res.Outcome)
	assert.Contains(t, res.Error, "more than once")
	assert.Nil(t, res.Plan)
	assert.Zero(t, gw.total())
}

func TestReorder_RejectedLeavesListUntouched(t *testing.T) {
	one := 1
	gw := newFakeGateway()
	gw.on("sizes.list", fixed(okResult([]domain.Size{{ID: 2, DisplayOrder: &one}}, nil)))
	gw.on("sizes.reorder", fixed(client.Result{Kind: client.KindBusiness, Message: "Unknown size 99"}))
	c := newSizes(gw)
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))
	before := c.Snapshot()

	res := c.Reorder(ctx, []domain.ID{99, 2})
	assert.Equal(t, OutcomeBusiness, res.Outcome)
	assert.Equal(t, "Unknown size 99", res.Error)
	assert.Len(t, res.Plan, 2)

	after := c.Snapshot()
	assert.Equal(t, before.Items, after.Items)
	assert.False(t, after.Loading)
	assert.Equal(t, 1, gw.count("sizes.list"))
}
