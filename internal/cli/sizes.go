package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"petshop/catalog/internal/domain"
	"petshop/catalog/internal/service"
	"petshop/catalog/internal/store"
)

type sizeFlags struct {
	name        string
	description string
	value       string
	unit        string
	order       string
	inactive    bool
}

func (f *sizeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "size name, e.g. M or 500g bag")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().StringVar(&f.value, "value", "", "magnitude, e.g. 500")
	cmd.Flags().StringVar(&f.unit, "unit", "", "unit: weight, volume, size, length, other")
	cmd.Flags().StringVar(&f.order, "order", "", "display order 0-999, empty lets the server choose")
	cmd.Flags().BoolVar(&f.inactive, "inactive", false, "mark the size inactive")
}

// apply overlays the flags the user set on d. Values are passed through
// untouched so the validator sees exactly what was typed.
func (f *sizeFlags) apply(cmd *cobra.Command, d domain.SizeDraft) domain.SizeDraft {
	flags := cmd.Flags()
	if flags.Changed("name") {
		d.SizeName = f.name
	}
	if flags.Changed("description") {
		d.Description = f.description
	}
	if flags.Changed("value") {
		d.Value = f.value
	}
	if flags.Changed("unit") {
		d.Unit = domain.Unit(strings.ToLower(f.unit))
	}
	if flags.Changed("order") {
		d.DisplayOrder = f.order
	}
	if flags.Changed("inactive") {
		d.Status = !f.inactive
	}
	return d
}

func (a *app) sizesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sizes",
		Aliases: []string{"size"},
		Short:   "Manage product sizes",
	}

	cmd.AddCommand(
		a.sizeListCommand(),
		a.sizeGetCommand(),
		a.sizeCreateCommand(),
		a.sizeUpdateCommand(),
		a.sizeDeleteCommand(),
		a.sizeToggleCommand(),
		a.sizeReorderCommand(),
	)
	return cmd
}

func (a *app) sizeListCommand() *cobra.Command {
	f := &listFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sizes in display order, resuming the last view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList[domain.Size](cmd, a, service.ResourceSizes, f, a.svc().Sizes, func(s store.State[domain.Size]) {
				renderSizes(cmd.OutOrStdout(), s.Items)
				renderPageFooter(cmd.OutOrStdout(), s)
			})
		},
	}
	f.bind(cmd, true)
	return cmd
}

func (a *app) sizeGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			size, err := a.svc().Size(cmd.Context(), id)
			if err != nil {
				return err
			}
			renderSizes(cmd.OutOrStdout(), []domain.Size{size})
			return nil
		},
	}
}

func (a *app) sizeCreateCommand() *cobra.Command {
	f := &sizeFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft := f.apply(cmd, domain.SizeDraft{Status: true})
			return reportMutation(cmd.OutOrStdout(), a.svc().Sizes.Create(cmd.Context(), draft))
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) sizeUpdateCommand() *cobra.Command {
	f := &sizeFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the fields given as flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := a.svc().Size(cmd.Context(), id)
			if err != nil {
				return err
			}
			draft := f.apply(cmd, current.Draft())
			return reportMutation(cmd.OutOrStdout(), a.svc().Sizes.Update(cmd.Context(), id, draft))
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) sizeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a size after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return reportMutation(cmd.OutOrStdout(), a.svc().Sizes.Delete(cmd.Context(), id))
		},
	}
}

func (a *app) sizeToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Switch a size between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return reportMutation(cmd.OutOrStdout(), a.svc().Sizes.ToggleStatus(cmd.Context(), id))
		},
	}
}

func (a *app) sizeReorderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <id> <id>...",
		Short: "Save a new display order, first id first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]domain.ID, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			res := a.svc().Sizes.Reorder(cmd.Context(), ids)
			out := cmd.OutOrStdout()
			switch res.Outcome {
			case store.OutcomeOK:
				renderPlan(out, res.Plan)
				fmt.Fprintln(out, res.Message)
				return nil
			case store.OutcomeInvalid:
				return fmt.Errorf("%w: %s", errInvalidInput, res.Error)
			default:
				return errors.New(res.Error)
			}
		},
	}
}
