// Package cli is the presentation layer: one command tree per storefront
// screen, with route guards keeping unauthenticated and non-admin users out
// of protected commands.
package cli

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Hemachandram324/ecommerce-project/internal/admin"
	"github.com/Hemachandram324/ecommerce-project/internal/cart"
	"github.com/Hemachandram324/ecommerce-project/internal/checkout"
	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/config"
	"github.com/Hemachandram324/ecommerce-project/internal/payment"
	"github.com/Hemachandram324/ecommerce-project/internal/session"
	"github.com/Hemachandram324/ecommerce-project/internal/wishlist"
)

type App struct {
	Cfg      config.Config
	Log      *slog.Logger
	Sessions session.Store

	Auth       *clients.AuthClient
	Catalog    *clients.CatalogClient
	Categories *clients.CategoryClient
	Orders     *clients.OrderClient
	Payments   *clients.PaymentClient

	Cart      *cart.Synchronizer
	Wishlist  *wishlist.Synchronizer
	Confirmer payment.Confirmer
	Admin     *admin.Console

	Out io.Writer
	Err io.Writer
}

// NewApp wires the gateway client and every view-model behind it.
func NewApp(cfg config.Config, log *slog.Logger, out, errOut io.Writer) (*App, error) {
	sessions := session.NewFileStore(cfg.StateDir)

	base, err := clients.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.RequestTimeout}, sessions)
	if err != nil {
		return nil, err
	}

	catalog := clients.NewCatalogClient(base)
	carts := clients.NewCartClient(base)
	orderClient := clients.NewOrderClient(base)

	app := &App{
		Cfg:      cfg,
		Log:      log,
		Sessions: sessions,

		Auth:       clients.NewAuthClient(base),
		Catalog:    catalog,
		Categories: clients.NewCategoryClient(base),
		Orders:     orderClient,
		Payments:   clients.NewPaymentClient(base),

		Cart:      cart.NewSynchronizer(carts, catalog, log),
		Wishlist:  wishlist.NewSynchronizer(clients.NewWishlistClient(base)),
		Confirmer: payment.NewStripeConfirmer(cfg.StripeAPIKey),
		Admin: admin.NewConsole(
			clients.NewProductAdminClient(base),
			catalog,
			clients.NewUserClient(base),
			orderClient,
			log,
		),

		Out: out,
		Err: errOut,
	}
	return app, nil
}

func (a *App) newCheckout() *checkout.Orchestrator {
	return checkout.NewOrchestrator(a.Payments, a.Confirmer, a.Cart, a.Catalog, a.Log)
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Shop from your terminal: browse, cart, checkout, track orders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newSessionCmd(app),
		newProductsCmd(app),
		newCategoriesCmd(app),
		newCartCmd(app),
		newWishlistCmd(app),
		newCheckoutCmd(app),
		newOrdersCmd(app),
		newAdminCmd(app),
	)

	return root
}
