package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "cart",
		Short:             "View and edit your cart",
		PersistentPreRunE: guardSession(app),
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			sp := startSpinner(app.Err, "Loading cart...", "Fetching product details...")
			view, err := app.Cart.Fetch(cmd.Context())
			sp.Stop()
			if err != nil {
				return notify(app, err)
			}
			renderCart(app.Out, view)
			return nil
		},
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <productId>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			view, err := app.Cart.Add(cmd.Context(), productID, qty)
			if err != nil {
				return notify(app, err)
			}
			fmt.Fprintln(app.Out, "Added to cart.")
			renderCart(app.Out, view)
			return nil
		},
	}
	add.Flags().IntVar(&qty, "qty", 1, "quantity to add")

	update := &cobra.Command{
		Use:   "update <itemId> <quantity>",
		Short: "Change an item's quantity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			view, err := app.Cart.UpdateQuantity(cmd.Context(), itemID, quantity)
			if err != nil {
				return notify(app, err)
			}
			fmt.Fprintln(app.Out, "Quantity updated.")
			renderCart(app.Out, view)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <itemId>",
		Short: "Remove an item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			view, err := app.Cart.Remove(cmd.Context(), itemID)
			if err != nil {
				return notify(app, err)
			}
			fmt.Fprintln(app.Out, "Item removed.")
			renderCart(app.Out, view)
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.Clear(cmd.Context()); err != nil {
				return notify(app, err)
			}
			fmt.Fprintln(app.Out, "Cart cleared.")
			return nil
		},
	}

	cmd.AddCommand(show, add, update, remove, clear)
	return cmd
}
