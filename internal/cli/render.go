package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/Hemachandram324/ecommerce-project/internal/cart"
	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/orders"
)

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func renderProducts(w io.Writer, products []clients.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, money(p.Price))
	}
	tw.Flush()
}

func renderProductDetail(w io.Writer, p clients.Product) {
	fmt.Fprintf(w, "%s (#%d)\n", p.Name, p.ID)
	fmt.Fprintf(w, "Price:    %s\n", money(p.Price))
	fmt.Fprintf(w, "Category: %s\n", p.Category)
	if p.Description != "" {
		fmt.Fprintf(w, "\n%s\n", p.Description)
	}
}

// renderCart shows the server-reported total verbatim; no totalling happens
// here.
func renderCart(w io.Writer, v *cart.View) {
	if v.Empty() {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tPRODUCT\tQTY\tPRICE\tSUBTOTAL")
	for _, it := range v.Items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", it.ItemID, it.Name, it.Quantity, money(it.Price), money(it.Subtotal))
	}
	tw.Flush()
	fmt.Fprintf(w, "Total: %s\n", money(v.Total))
}

func renderOrders(w io.Writer, list []clients.Order) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No orders yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tDATE\tSTATUS\tTOTAL")
	for _, o := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", o.ID, o.CreatedAt.Format("2006-01-02"), o.Status, money(o.Total))
	}
	tw.Flush()
}

func renderOrderDetail(w io.Writer, o clients.Order) {
	fmt.Fprintf(w, "Order #%d (%s)\n", o.ID, o.Status)
	fmt.Fprintf(w, "Placed:  %s\n", o.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Ship to: %s, %s, %s %s, %s\n",
		o.ShippingAddress.FullName, o.ShippingAddress.Street,
		o.ShippingAddress.City, o.ShippingAddress.ZipCode, o.ShippingAddress.Country)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tQTY\tUNIT PRICE")
	for _, it := range o.Items {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", it.ProductName, it.Quantity, money(it.UnitPrice))
	}
	tw.Flush()
	fmt.Fprintf(w, "Total: %s\n", money(o.Total))
	fmt.Fprintln(w, renderProgress(o.Status))
}

// renderProgress draws the tracking indicator, full at DELIVERED.
func renderProgress(s orders.Status) string {
	pct := orders.ProgressPercent(s)
	filled := pct / 10
	bar := strings.Repeat("#", filled) + strings.Repeat("-", 10-filled)
	return fmt.Sprintf("[%s] %d%%", bar, pct)
}
