package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/wishlist"
)

func newProductsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog",
	}

	var category, search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally filtered by category or name",
		RunE: func(cmd *cobra.Command, args []string) error {
			sp := startSpinner(app.Err, "Loading products...", "Fetching the catalog...")
			var (
				products []clients.Product
				err      error
			)
			switch {
			case category != "":
				products, err = app.Catalog.ByCategory(cmd.Context(), category)
			case search != "":
				products, err = app.Catalog.SearchByName(cmd.Context(), search)
			default:
				products, err = app.Catalog.ListProducts(cmd.Context())
			}
			sp.Stop()
			if err != nil {
				return notify(app, err)
			}
			renderProducts(app.Out, products)
			return nil
		},
	}
	list.Flags().StringVar(&category, "category", "", "filter by category name")
	list.Flags().StringVar(&search, "name", "", "filter by product name")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			p, err := app.Catalog.GetProduct(cmd.Context(), id)
			if err != nil {
				return notify(app, err)
			}
			renderProductDetail(app.Out, p)

			// Wishlist state only shows for logged-in users; lookup failures
			// are not worth blocking the product page over.
			if _, serr := app.Sessions.Load(); serr == nil {
				if saved, werr := app.Wishlist.Fetch(cmd.Context()); werr == nil && wishlist.Contains(saved, p.ID) {
					fmt.Fprintln(app.Out, "\nSaved in your wishlist.")
				}
			}
			return nil
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := app.Categories.List(cmd.Context())
			if err != nil {
				return notify(app, err)
			}
			if len(cats) == 0 {
				fmt.Fprintln(app.Out, "No categories.")
				return nil
			}
			for _, c := range cats {
				fmt.Fprintln(app.Out, c.Name)
			}
			return nil
		},
	}
}
