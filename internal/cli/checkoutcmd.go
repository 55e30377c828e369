package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/payment"
)

func newCheckoutCmd(app *App) *cobra.Command {
	var (
		buyNow int64
		card   payment.Card
		addr   clients.ShippingAddress
	)

	cmd := &cobra.Command{
		Use:               "checkout",
		Short:             "Pay for your cart (or a single product with --buy-now)",
		PersistentPreRunE: guardSession(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch := app.newCheckout()

			var err error
			if buyNow != 0 {
				err = orch.LoadBuyNowContext(cmd.Context(), buyNow)
			} else {
				err = orch.LoadCartContext(cmd.Context())
			}
			if err != nil {
				return notify(app, err)
			}

			ctxData := orch.Context()
			fmt.Fprintln(app.Out, "Checking out:")
			for _, l := range ctxData.Lines {
				fmt.Fprintf(app.Out, "  %dx %s at %s\n", l.Quantity, l.Name, money(l.Price))
			}
			fmt.Fprintf(app.Out, "Total: %s\n", money(ctxData.Total))

			sp := startSpinner(app.Err, "Submitting payment...", "Waiting for the payment provider...")
			orderID, err := orch.Submit(cmd.Context(), card, addr)
			sp.Stop()
			if err != nil {
				// The form stays editable: rerun with corrected details.
				return notify(app, err)
			}

			fmt.Fprintf(app.Out, "Order placed successfully! Order ID: %d\n", orderID)
			fmt.Fprintf(app.Out, "Track it with 'storefront orders show %d'.\n", orderID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&buyNow, "buy-now", 0, "bypass the cart and buy this product id directly")

	cmd.Flags().StringVar(&card.Number, "card-number", "", "card number")
	cmd.Flags().Int64Var(&card.ExpMonth, "card-exp-month", 0, "card expiry month")
	cmd.Flags().Int64Var(&card.ExpYear, "card-exp-year", 0, "card expiry year")
	cmd.Flags().StringVar(&card.CVC, "card-cvc", "", "card security code")

	cmd.Flags().StringVar(&addr.FullName, "ship-name", "", "recipient full name")
	cmd.Flags().StringVar(&addr.Street, "ship-street", "", "street address")
	cmd.Flags().StringVar(&addr.City, "ship-city", "", "city")
	cmd.Flags().StringVar(&addr.State, "ship-state", "", "state or province")
	cmd.Flags().StringVar(&addr.ZipCode, "ship-zip", "", "postal code")
	cmd.Flags().StringVar(&addr.Country, "ship-country", "", "country")
	cmd.Flags().StringVar(&addr.Phone, "ship-phone", "", "contact phone")

	return cmd
}
