// Package cli is the command line front end of the catalog admin client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"petshop/catalog/internal/config"
	"petshop/catalog/internal/container"
	"petshop/catalog/internal/service"
	"petshop/catalog/internal/store"
)

type app struct {
	configPath string
	assumeYes  bool

	container *container.Container
}

// NewRootCommand builds the catalog command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:                "catalog",
		Short:              "Manage pet shop product categories and sizes",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./config.yaml)")
	root.PersistentFlags().BoolVarP(&a.assumeYes, "yes", "y", false, "confirm deletions without prompting")

	root.AddCommand(
		a.categoriesCommand(),
		a.sizesCommand(),
		a.overviewCommand(),
		a.historyCommand(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	log.SetLevel(level)
	log.SetOutput(cmd.ErrOrStderr())

	var confirmer store.Confirmer = promptConfirmer{in: cmd.InOrStdin(), out: cmd.ErrOrStderr()}
	if a.assumeYes {
		confirmer = store.ConfirmFunc(func(context.Context, string) bool { return true })
	}

	a.container, err = container.New(cmd.Context(), cfg, confirmer)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.container == nil {
		return nil
	}
	return a.container.Close()
}

func (a *app) svc() *service.Service {
	return a.container.Service
}

// promptConfirmer asks on the terminal and accepts only an explicit yes.
type promptConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (p promptConfirmer) Confirm(_ context.Context, prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)

	answer, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
