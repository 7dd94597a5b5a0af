// Package cli provides the cobra commands of catalogctl.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/catalog-backend/internal/domain"
	"github.com/heartmarshall/catalog-backend/internal/service/catalog"
)

// Service is the catalog API the commands run against.
type Service interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	ItemsTable(ctx context.Context, input catalog.ListItemsInput) (*domain.ItemTable, error)
	GetItem(ctx context.Context, code string) (*catalog.ItemDetails, error)
	GetItemsByName(ctx context.Context, name string) ([]catalog.ItemDetails, error)
	CreateItem(ctx context.Context, input catalog.CreateItemInput) (*catalog.ItemDetails, error)
	UpdateItem(ctx context.Context, input catalog.UpdateItemInput) (*catalog.ItemDetails, error)
	DeleteItems(ctx context.Context, input catalog.DeleteItemsInput) error
}

// Opener connects to the catalog described by the config file at
// configPath. An empty path means the default lookup. The returned func
// releases the catalog.
type Opener func(ctx context.Context, configPath string) (Service, func(), error)

type runner struct {
	open       Opener
	configPath string
}

// NewRootCmd builds the catalogctl command tree.
func NewRootCmd(open Opener) *cobra.Command {
	r := &runner{open: open}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Manage the item catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&r.configPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		r.categoriesCmd(),
		r.listCmd(),
		r.getCmd(),
		r.findNameCmd(),
		r.createCmd(),
		r.updateCmd(),
		r.deleteCmd(),
	)

	return root
}

// run opens the catalog, runs fn and releases the catalog.
func (r *runner) run(cmd *cobra.Command, fn func(ctx context.Context, svc Service) error) error {
	svc, closeFn, err := r.open(cmd.Context(), r.configPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer closeFn()

	return fn(cmd.Context(), svc)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
