package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"petshop/catalog/internal/domain"
	"petshop/catalog/internal/service"
	"petshop/catalog/internal/store"
)

type categoryFlags struct {
	name        string
	description string
	inactive    bool
}

func (f *categoryFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "category name")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().BoolVar(&f.inactive, "inactive", false, "mark the category inactive")
}

// apply overlays the flags the user set on d.
func (f *categoryFlags) apply(cmd *cobra.Command, d domain.CategoryDraft) domain.CategoryDraft {
	flags := cmd.Flags()
	if flags.Changed("name") {
		d.CategoryName = f.name
	}
	if flags.Changed("description") {
		d.Description = f.description
	}
	if flags.Changed("inactive") {
		d.Status = !f.inactive
	}
	return d
}

func (a *app) categoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cat"},
		Short:   "Manage product categories",
	}

	cmd.AddCommand(
		a.categoryListCommand(),
		a.categoryGetCommand(),
		a.categoryCreateCommand(),
		a.categoryUpdateCommand(),
		a.categoryDeleteCommand(),
		a.categoryToggleCommand(),
		a.categoryProductsCommand(),
	)
	return cmd
}

func (a *app) categoryListCommand() *cobra.Command {
	f := &listFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories, resuming the last view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList[domain.Category](cmd, a, service.ResourceCategories, f, a.svc().Categories, func(s store.State[domain.Category]) {
				renderCategories(cmd.OutOrStdout(), s.Items)
				renderPageFooter(cmd.OutOrStdout(), s)
			})
		},
	}
	f.bind(cmd, false)
	return cmd
}

func (a *app) categoryGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			category, err := a.svc().Category(cmd.Context(), id)
			if err != nil {
				return err
			}
			renderCategories(cmd.OutOrStdout(), []domain.Category{category})
			return nil
		},
	}
}

func (a *app) categoryCreateCommand() *cobra.Command {
	f := &categoryFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft := f.apply(cmd, domain.CategoryDraft{Status: true})
			return reportMutation(cmd.OutOrStdout(), a.svc().Categories.Create(cmd.Context(), draft))
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) categoryUpdateCommand() *cobra.Command {
	f := &categoryFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the fields given as flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := a.svc().Category(cmd.Context(), id)
			if err != nil {
				return err
			}
			draft := f.apply(cmd, current.Draft())
			return reportMutation(cmd.OutOrStdout(), a.svc().Categories.Update(cmd.Context(), id, draft))
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) categoryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return reportMutation(cmd.OutOrStdout(), a.svc().Categories.Delete(cmd.Context(), id))
		},
	}
}

func (a *app) categoryToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Switch a category between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return reportMutation(cmd.OutOrStdout(), a.svc().Categories.ToggleStatus(cmd.Context(), id))
		},
	}
}

func (a *app) categoryProductsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "products <id>",
		Short: "List the products of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			products, err := a.svc().CategoryProducts(cmd.Context(), id)
			if err != nil {
				return err
			}
			renderProducts(cmd.OutOrStdout(), products)
			fmt.Fprintf(cmd.OutOrStdout(), "%d products\n", len(products))
			return nil
		},
	}
}

func parseID(s string) (domain.ID, error) {
	id, err := domain.ParseID(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}
