package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"petshop/catalog/internal/domain"
	"petshop/catalog/internal/journal"
	"petshop/catalog/internal/store"
)

var errInvalidInput = errors.New("input rejected, nothing was sent")

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func statusLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

func renderCategories(w io.Writer, items []domain.Category) {
	table := newTable(w, "ID", "Name", "Description", "Products", "Status")
	for _, c := range items {
		table.Append([]string{
			c.ID.String(),
			c.CategoryName,
			c.Description,
			strconv.FormatInt(c.ProductCount, 10),
			statusLabel(c.Status),
		})
	}
	table.Render()
}

func renderSizes(w io.Writer, items []domain.Size) {
	table := newTable(w, "ID", "Order", "Name", "Value", "Unit", "Products", "Status")
	for _, s := range items {
		order := "-"
		if s.DisplayOrder != nil {
			order = strconv.Itoa(*s.DisplayOrder)
		}
		value := s.Value
		if value != "" {
			value += s.Unit.Suffix()
		}
		table.Append([]string{
			s.ID.String(),
			order,
			s.SizeName,
			value,
			s.Unit.Label(),
			strconv.FormatInt(s.ProductCount, 10),
			statusLabel(s.Status),
		})
	}
	table.Render()
}

func renderProducts(w io.Writer, items []domain.Product) {
	table := newTable(w, "ID", "Name", "SKU", "Size", "Price", "Stock", "Status")
	for _, p := range items {
		table.Append([]string{
			p.ID.String(),
			p.ProductName,
			p.SKU,
			p.SizeName,
			p.EffectivePrice().StringFixed(2),
			strconv.Itoa(p.Stock),
			statusLabel(p.Status),
		})
	}
	table.Render()
}

func renderPlan(w io.Writer, plan []store.Placement) {
	table := newTable(w, "ID", "Display order")
	for _, p := range plan {
		table.Append([]string{p.ID.String(), strconv.Itoa(p.DisplayOrder)})
	}
	table.Render()
}

func renderHistory(w io.Writer, entries []journal.Entry) {
	table := newTable(w, "When", "Event", "Target", "Message")
	for _, e := range entries {
		target := ""
		switch {
		case len(e.Event.IDs) > 0:
			ids := make([]string, len(e.Event.IDs))
			for i, id := range e.Event.IDs {
				ids[i] = id.String()
			}
			target = strings.Join(ids, ",")
		case e.Event.EntityID != 0:
			target = "#" + e.Event.EntityID.String()
		}
		table.Append([]string{
			e.Event.At.Local().Format("2006-01-02 15:04:05"),
			e.Event.EventType(),
			target,
			e.Event.Message,
		})
	}
	table.Render()
}

func renderPageFooter[T any](w io.Writer, s store.State[T]) {
	if s.Query.ActiveOnly {
		fmt.Fprintf(w, "%d active\n", len(s.Items))
		return
	}
	fmt.Fprintf(w, "Page %d of %d (%d total)\n", s.Query.Page, s.TotalPages, s.Metadata.TotalElements)
}

// reportMutation prints the outcome of a mutation. Validation failures and
// server rejections become errors so the process exits non-zero.
func reportMutation[T any](w io.Writer, res store.MutationResult[T]) error {
	switch res.Outcome {
	case store.OutcomeOK:
		fmt.Fprintln(w, res.Message)
		return nil
	case store.OutcomeCancelled:
		fmt.Fprintln(w, "Cancelled")
		return nil
	case store.OutcomeInvalid:
		for _, field := range res.FieldErrors.Fields() {
			fmt.Fprintf(w, "  %s: %s\n", field, res.FieldErrors[field])
		}
		return errInvalidInput
	default:
		return errors.New(res.Error)
	}
}
