package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/orders"
)

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "admin",
		Short:             "Back-office: products, users, orders",
		PersistentPreRunE: guardAdmin(app),
	}

	cmd.AddCommand(
		newAdminProductCmd(app),
		newAdminUsersCmd(app),
		newAdminOrdersCmd(app),
	)
	return cmd
}

func newAdminProductCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage the catalog",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := app.Admin.ListProducts(cmd.Context())
			if err != nil {
				return notify(app, err)
			}
			renderProducts(app.Out, products)
			return nil
		},
	}

	var form clients.ProductForm
	var imagePath string

	bindForm := func(c *cobra.Command) {
		c.Flags().StringVar(&form.Name, "name", "", "product name")
		c.Flags().StringVar(&form.Description, "description", "", "product description")
		c.Flags().StringVar(&form.Price, "price", "", "product price, e.g. 19.99")
		c.Flags().StringVar(&form.Category, "category", "", "category name")
		c.Flags().StringVar(&imagePath, "image", "", "path to an image file")
	}

	withImage := func(fn func() error) error {
		if imagePath != "" {
			f, err := os.Open(imagePath)
			if err != nil {
				return fmt.Errorf("open image: %w", err)
			}
			defer f.Close()
			form.Image = f
			form.ImageName = filepath.Base(imagePath)
		}
		return fn()
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withImage(func() error {
				p, err := app.Admin.AddProduct(cmd.Context(), form)
				if err != nil {
					return notify(app, err)
				}
				fmt.Fprintf(app.Out, "Product %q added with id %d.\n", p.Name, p.ID)
				return nil
			})
		},
	}
	bindForm(add)

	update := &cobra.Command{
		Use:   "update",
		Short: "Update a product (matched by name, last write wins)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withImage(func() error {
				p, err := app.Admin.UpdateProduct(cmd.Context(), form)
				if err != nil {
					return notify(app, err)
				}
				fmt.Fprintf(app.Out, "Product %q updated.\n", p.Name)
				return nil
			})
		},
	}
	bindForm(update)

	setImage := &cobra.Command{
		Use:   "set-image <name> <imagePath>",
		Short: "Replace a product's image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("open image: %w", err)
			}
			defer f.Close()
			p, err := app.Admin.UpdateProductImage(cmd.Context(), args[0], f, filepath.Base(args[1]))
			if err != nil {
				return notify(app, err)
			}
			fmt.Fprintf(app.Out, "Image for %q updated.\n", p.Name)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a product by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Admin.DeleteProduct(cmd.Context(), args[0]); err != nil {
				return notify(app, err)
			}
			fmt.Fprintf(app.Out, "Product %q deleted.\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, add, update, setImage, del)
	return cmd
}

func newAdminUsersCmd(app *App) *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users (paginated client-side)",
		RunE: func(cmd *cobra.Command, args []string) error {
			up, err := app.Admin.ListUsers(cmd.Context(), page, pageSize)
			if err != nil {
				return notify(app, err)
			}
			for _, u := range up.Users {
				fmt.Fprintf(app.Out, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
			}
			fmt.Fprintf(app.Out, "Page %d (%d of %d users)\n", up.Page, len(up.Users), up.TotalUsers)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "users per page")
	return cmd
}

func newAdminOrdersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage orders",
	}

	var userID int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List all orders, or one user's with --user",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				orderList []clients.Order
				err       error
			)
			if userID != 0 {
				orderList, err = app.Admin.OrdersByUser(cmd.Context(), userID)
			} else {
				orderList, err = app.Admin.ListAllOrders(cmd.Context())
			}
			if err != nil {
				return notify(app, err)
			}
			renderOrders(app.Out, orderList)
			return nil
		},
	}
	list.Flags().Int64Var(&userID, "user", 0, "list orders for this user id")

	setStatus := &cobra.Command{
		Use:   "set-status <orderId> <status>",
		Short: "Set an order's status (PENDING, PROCESSING, SHIPPED, DELIVERED, CANCELLED)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			o, err := app.Admin.SetOrderStatus(cmd.Context(), id, orders.Status(args[1]))
			if err != nil {
				return notify(app, err)
			}
			fmt.Fprintf(app.Out, "Order %d is now %s. %s\n", o.ID, o.Status, renderProgress(o.Status))
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <orderId>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			if err := app.Admin.DeleteOrder(cmd.Context(), id); err != nil {
				return notify(app, err)
			}
			fmt.Fprintf(app.Out, "Order %d deleted.\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, setStatus, del)
	return cmd
}
