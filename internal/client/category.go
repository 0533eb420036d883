package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"petshop/catalog/internal/domain"
)

// CategoryAPI exposes the /categories endpoints.
type CategoryAPI struct {
	gw Gateway
}

func NewCategoryAPI(gw Gateway) *CategoryAPI {
	return &CategoryAPI{gw: gw}
}

// List fetches one page. q.Page is 1-based and is sent 0-based.
func (a *CategoryAPI) List(ctx context.Context, q domain.ListQuery) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "categories.list",
		Method: http.MethodGet,
		Path:   "/categories",
		Query:  pageParams(q),
	}, nil)
}

func (a *CategoryAPI) Active(ctx context.Context) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "categories.active",
		Method: http.MethodGet,
		Path:   "/categories/active",
	}, nil)
}

func (a *CategoryAPI) Get(ctx context.Context, id domain.ID) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "categories.get",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/categories/%s", id),
	}, nil)
}

func (a *CategoryAPI) Create(ctx context.Context, draft domain.CategoryDraft) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "categories.create",
		Method: http.MethodPost,
		Path:   "/categories",
	}, draft)
}

func (a *CategoryAPI) Update(ctx context.Context, id domain.ID, draft domain.CategoryDraft) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "categories.update",
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/categories/%s", id),
	}, draft)
}

func (a *CategoryAPI) Delete(ctx context.Context, id domain.ID) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "categories.delete",
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/categories/%s", id),
	}, nil)
}

func (a *CategoryAPI) ToggleStatus(ctx context.Context, id domain.ID) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "categories.toggle",
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/categories/%s/toggle-status", id),
	}, nil)
}

// Products lists the products filed under a category.
func (a *CategoryAPI) Products(ctx context.Context, id domain.ID) Result {
	return a.gw.Call(ctx, Operation{
		Name:   "categories.products",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/categories/%s/products", id),
	}, nil)
}

// pageParams converts a presentation query into transport parameters.
func pageParams(q domain.ListQuery) map[string]string {
	page := q.Page - 1
	if page < 0 {
		page = 0
	}

	params := map[string]string{
		"page":   strconv.Itoa(page),
		"size":   strconv.Itoa(q.PageSize),
		"search": q.Search,
	}
	if q.Status != nil {
		params["status"] = strconv.FormatBool(*q.Status)
	}
	return params
}
