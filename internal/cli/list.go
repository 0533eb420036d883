package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"petshop/catalog/internal/domain"
	"petshop/catalog/internal/store"
)

type listFlags struct {
	page       int
	size       int
	search     string
	status     string
	unit       string
	activeOnly bool
}

func (f *listFlags) bind(cmd *cobra.Command, withUnit bool) {
	cmd.Flags().IntVar(&f.page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&f.size, "size", 0, "page size")
	cmd.Flags().StringVar(&f.search, "search", "", "search text")
	cmd.Flags().StringVar(&f.status, "status", "all", "status filter: all, active, inactive")
	cmd.Flags().BoolVar(&f.activeOnly, "active", false, "list every active entry without pagination")
	if withUnit {
		cmd.Flags().StringVar(&f.unit, "unit", "", "unit filter: weight, volume, size, length, other (empty for all)")
	}
}

// apply overlays the flags the user set on q. Any filter change without an
// explicit --page starts again from the first page.
func (f *listFlags) apply(cmd *cobra.Command, q domain.ListQuery) (domain.ListQuery, error) {
	flags := cmd.Flags()
	filtered := false

	if flags.Changed("size") {
		q.PageSize = f.size
		filtered = true
	}
	if flags.Changed("search") {
		q.Search = f.search
		filtered = true
	}
	if flags.Changed("status") {
		switch strings.ToLower(f.status) {
		case "all", "":
			q.Status = nil
		case "active":
			active := true
			q.Status = &active
		case "inactive":
			inactive := false
			q.Status = &inactive
		default:
			return q, fmt.Errorf("unknown status %q, want all, active or inactive", f.status)
		}
		filtered = true
	}
	if flags.Lookup("unit") != nil && flags.Changed("unit") {
		unit := domain.Unit(strings.ToLower(f.unit))
		if unit != "" && !unit.Valid() {
			return q, fmt.Errorf("unknown unit %q", f.unit)
		}
		q.Unit = unit
		filtered = true
	}
	if flags.Changed("active") {
		q.ActiveOnly = f.activeOnly
		filtered = true
	}

	switch {
	case flags.Changed("page"):
		q.Page = f.page
	case filtered:
		q.Page = 1
	}
	return q, nil
}

type listController[T any] interface {
	SetQuery(ctx context.Context, q domain.ListQuery) error
	Snapshot() store.State[T]
}

// runList resumes the saved view of resource, applies the flags, loads once
// and saves the resulting view.
func runList[T any](cmd *cobra.Command, a *app, resource string, f *listFlags, ctrl listController[T], render func(store.State[T])) error {
	ctx := cmd.Context()

	q, err := f.apply(cmd, a.svc().LastQuery(ctx, resource))
	if err != nil {
		return err
	}

	if err := ctrl.SetQuery(ctx, q); err != nil {
		return err
	}

	s := ctrl.Snapshot()
	a.svc().RememberQuery(ctx, resource, s.Query)
	render(s)
	return nil
}
