package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newOrdersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "orders",
		Short:             "Your orders",
		PersistentPreRunE: guardSession(app),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			orderList, err := app.Orders.ListMine(cmd.Context())
			if err != nil {
				return notify(app, err)
			}
			renderOrders(app.Out, orderList)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <orderId>",
		Short: "Show one order with tracking progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			o, err := app.Orders.Get(cmd.Context(), id)
			if err != nil {
				return notify(app, err)
			}
			renderOrderDetail(app.Out, o)
			return nil
		},
	}

	track := &cobra.Command{
		Use:   "track <orderId>",
		Short: "Show just the delivery progress of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			o, err := app.Orders.Get(cmd.Context(), id)
			if err != nil {
				return notify(app, err)
			}
			fmt.Fprintf(app.Out, "Order #%d: %s %s\n", o.ID, o.Status, renderProgress(o.Status))
			return nil
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <orderId>",
		Short: "Request cancellation of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			if err := app.Orders.Delete(cmd.Context(), id); err != nil {
				return notify(app, err)
			}
			fmt.Fprintf(app.Out, "Cancellation requested for order %d.\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, show, track, cancel)
	return cmd
}
