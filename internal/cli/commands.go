package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/catalog-backend/internal/domain"
	"github.com/heartmarshall/catalog-backend/internal/service/catalog"
)

func (r *runner) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List every category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context, svc Service) error {
				cats, err := svc.Categories(ctx)
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME")
				for _, c := range cats {
					fmt.Fprintf(tw, "%d\t%s\n", c.ID, c.Name)
				}
				return tw.Flush()
			})
		},
	}
}

func (r *runner) listCmd() *cobra.Command {
	var (
		in         catalog.ListItemsInput
		name, code string
		orderBy    string
		direction  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the items table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("code") {
				in.Code = &code
			}
			in.SortBy = domain.SortKey(orderBy)
			in.Direction = domain.SortDirection(direction)

			return r.run(cmd, func(ctx context.Context, svc Service) error {
				table, err := svc.ItemsTable(ctx, in)
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "CODE\tNAME\tRATING\tYEAR\tSTATUS\tCATEGORIES")
				for _, row := range table.Rows {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
						row.Code, row.Name, strconv.FormatFloat(row.Rating, 'f', -1, 64),
						row.ReleaseYear, row.Status, row.Categories)
				}
				if err := tw.Flush(); err != nil {
					return err
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "page %d/%d, %d items\n",
					table.Page, table.TotalPages, table.TotalItems)
				return err
			})
		},
	}

	f := cmd.Flags()
	f.Int64SliceVar(&in.CategoryIDs, "category", nil, "category id filter (repeatable, any match)")
	f.StringVar(&name, "name", "", "case-insensitive name substring")
	f.StringVar(&code, "code", "", "case-insensitive code substring")
	f.IntVar(&in.Page, "page", 0, "1-based page number (default 1)")
	f.IntVar(&in.PageSize, "page-size", 0, "rows per page (default from config)")
	f.StringVar(&orderBy, "order-by", "", "NAME or RATING (default RATING)")
	f.StringVar(&direction, "direction", "", "ASC or DESC (default ASC)")

	return cmd
}

func (r *runner) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <code>",
		Short: "Print an item and its categories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, svc Service) error {
				details, err := svc.GetItem(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), details)
			})
		},
	}
}

func (r *runner) findNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-name <name>",
		Short: "Print every item with exactly this name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, svc Service) error {
				list, err := svc.GetItemsByName(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), list)
			})
		},
	}
}

// itemFlags binds the item fields shared by create and update.
type itemFlags struct {
	name       string
	rating     float64
	year       int
	status     string
	categories []int64
}

func (f *itemFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "item name")
	fs.Float64Var(&f.rating, "rating", 0, "rating between 0 and 10")
	fs.IntVar(&f.year, "year", 0, "release year")
	fs.StringVar(&f.status, "status", string(domain.ItemStatusActive), "ACTIVE or INACTIVE")
	fs.Int64SliceVar(&f.categories, "category", nil, "category id, in order (repeatable)")
}

func (r *runner) createCmd() *cobra.Command {
	var (
		code  string
		flags itemFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an item with its categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := catalog.CreateItemInput{
				Code:        code,
				Name:        flags.name,
				Rating:      flags.rating,
				ReleaseYear: flags.year,
				Status:      domain.ItemStatus(flags.status),
				CategoryIDs: flags.categories,
			}
			return r.run(cmd, func(ctx context.Context, svc Service) error {
				details, err := svc.CreateItem(ctx, in)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), details)
			})
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "item code")
	flags.bind(cmd)
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func (r *runner) updateCmd() *cobra.Command {
	var flags itemFlags

	cmd := &cobra.Command{
		Use:   "update <code>",
		Short: "Update the given fields of an item; unset flags keep their values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, svc Service) error {
				current, err := svc.GetItem(ctx, args[0])
				if err != nil {
					return err
				}

				in := catalog.UpdateItemInput{
					Code:        current.Item.Code,
					Name:        current.Item.Name,
					Rating:      current.Item.Rating,
					ReleaseYear: current.Item.ReleaseYear,
					Status:      current.Item.Status,
					CategoryIDs: make([]int64, len(current.Categories)),
				}
				for i, c := range current.Categories {
					in.CategoryIDs[i] = c.ID
				}

				changed := cmd.Flags().Changed
				if changed("name") {
					in.Name = flags.name
				}
				if changed("rating") {
					in.Rating = flags.rating
				}
				if changed("year") {
					in.ReleaseYear = flags.year
				}
				if changed("status") {
					in.Status = domain.ItemStatus(flags.status)
				}
				if changed("category") {
					in.CategoryIDs = flags.categories
				}

				details, err := svc.UpdateItem(ctx, in)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), details)
			})
		},
	}

	flags.bind(cmd)
	return cmd
}

func (r *runner) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <code>...",
		Short: "Delete items and their relations; nothing is deleted if any code is unknown",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, svc Service) error {
				if err := svc.DeleteItems(ctx, catalog.DeleteItemsInput{Codes: args}); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", strings.Join(args, ", "))
				return err
			})
		},
	}
}
