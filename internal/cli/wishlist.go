package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newWishlistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "wishlist",
		Short:             "Products saved for later",
		PersistentPreRunE: guardSession(app),
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := app.Wishlist.Fetch(cmd.Context())
			if err != nil {
				return notify(app, err)
			}
			if len(products) == 0 {
				fmt.Fprintln(app.Out, "Your wishlist is empty.")
				return nil
			}
			renderProducts(app.Out, products)
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <productId>",
		Short: "Save a product to the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			products, err := app.Wishlist.Add(cmd.Context(), id)
			if err != nil {
				return notify(app, err)
			}
			fmt.Fprintf(app.Out, "Saved. Wishlist has %d product(s).\n", len(products))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <productId>",
		Short: "Remove a product from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			products, err := app.Wishlist.Remove(cmd.Context(), id)
			if err != nil {
				return notify(app, err)
			}
			fmt.Fprintf(app.Out, "Removed. Wishlist has %d product(s).\n", len(products))
			return nil
		},
	}

	cmd.AddCommand(show, add, remove)
	return cmd
}
