package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"petshop/catalog/internal/domain"
)

// SizeAPI exposes the /sizes endpoints.
type SizeAPI struct {
	gw Gateway
}

func NewSizeAPI(gw Gateway) *SizeAPI {
	return &SizeAPI{gw: gw}
}

// List fetches one page. The unit filter travels as a query parameter so the
// server filters before paginating.
func (a *SizeAPI) List(ctx context.Context, q domain.ListQuery) Result {
	params := pageParams(q)
	if q.Unit != "" {
		params["unit"] = q.Unit.String()
	}

	return a.gw.Call(ctx, Operation{
		Name:   "sizes.list",
		Method: http.MethodGet,
		Path:   "/sizes",
		Query:  params,
	}, nil)
}

func (a *SizeAPI) Active(ctx context.Context) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "sizes.active",
		Method: http.MethodGet,
		Path:   "/sizes/active",
	}, nil)
}

func (a *SizeAPI) ByUnit(ctx context.Context, unit domain.Unit) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "sizes.by_unit",
		Method: http.MethodGet,
		Path:   "/sizes/by-unit/" + url.PathEscape(unit.String()),
	}, nil)
}

func (a *SizeAPI) Get(ctx context.Context, id domain.ID) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "sizes.get",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/sizes/%s", id),
	}, nil)
}

func (a *SizeAPI) Create(ctx context.Context, draft domain.SizeDraft) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "sizes.create",
		Method: http.MethodPost,
		Path:   "/sizes",
	}, draft.Request())
}

func (a *SizeAPI) Update(ctx context.Context, id domain.ID, draft domain.SizeDraft) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "sizes.update",
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/sizes/%s", id),
	}, draft.Request())
}

func (a *SizeAPI) Delete(ctx context.Context, id domain.ID) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "sizes.delete",
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/sizes/%s", id),
	}, nil)
}

func (a *SizeAPI) ToggleStatus(ctx context.Context, id domain.ID) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "sizes.toggle",
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/sizes/%s/toggle-status", id),
	}, nil)
}

// UpdateDisplayOrder submits the complete ordered id sequence in one call.
func (a *SizeAPI) UpdateDisplayOrder(ctx context.Context, ids []domain.ID) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "sizes.reorder",
		Method: http.MethodPut,
		Path:   "/sizes/display-order",
	}, ids)
}
