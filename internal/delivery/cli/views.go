// Package cli renders the storefront and admin console views and maps
// subcommands onto the usecases. Handlers stay thin: parse, call, render.
package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"orchid/internal/domain/entity"
)

func renderOrchids(w io.Writer, orchids []entity.Orchid, currency string) {
	if len(orchids) == 0 {
		fmt.Fprintln(w, "No orchids in the catalog.")

		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tORIGIN\tCATEGORY\tAVAILABLE")
	for _, o := range orchids {
		origin := "industry"
		if o.Natural {
			origin = "natural"
		}
		category := "-"
		if o.Category != nil {
			category = o.Category.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\n",
			o.ID, o.Name, FormatPrice(o.Price, currency), origin, category, o.Available)
	}
	tw.Flush()
}

func renderOrchid(w io.Writer, o *entity.Orchid, currency string) {
	fmt.Fprintf(w, "%s (%s)\n", o.Name, o.ID)
	if o.Description != "" {
		fmt.Fprintln(w, o.Description)
	}
	fmt.Fprintf(w, "Price: %s\n", FormatPrice(o.Price, currency))
	if o.Category != nil {
		fmt.Fprintf(w, "Category: %s\n", o.Category.Name)
	}
	if o.Natural {
		fmt.Fprintln(w, "Origin: natural")
	} else {
		fmt.Fprintln(w, "Origin: industry")
	}
	if !o.Available {
		fmt.Fprintln(w, "Currently unavailable.")
	}
	if o.ImageURL != "" {
		fmt.Fprintf(w, "Image: %s\n", o.ImageURL)
	}
}

func renderCart(w io.Writer, lines []entity.CartLine, quote entity.OrderQuote, currency string) {
	if len(lines) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")

		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tUNIT PRICE\tQTY\tLINE TOTAL")
	for _, line := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			line.ProductID, line.Name,
			FormatPrice(line.UnitPrice, currency),
			line.Quantity,
			FormatPrice(line.UnitPrice*float64(line.Quantity), currency))
	}
	tw.Flush()

	fmt.Fprintf(w, "Subtotal: %s\n", FormatPrice(quote.Subtotal, currency))
	if quote.ShippingFee == 0 {
		fmt.Fprintln(w, "Shipping: free")
	} else {
		fmt.Fprintf(w, "Shipping: %s\n", FormatPrice(quote.ShippingFee, currency))
	}
	fmt.Fprintf(w, "Total: %s\n", FormatPrice(quote.Total, currency))
}

func renderOrders(w io.Writer, orders []entity.Order, currency string) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet.")

		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tSTATUS\tTOTAL")
	for _, o := range orders {
		date := "-"
		if !o.OrderDate.IsZero() {
			date = o.OrderDate.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			o.ID, date, o.Status, FormatPrice(o.TotalAmount, currency))
	}
	tw.Flush()
}

func renderOrder(w io.Writer, o *entity.Order, currency string) {
	fmt.Fprintf(w, "Order #%s\n", o.ID)
	fmt.Fprintf(w, "Status: %s\n", o.Status)
	if !o.OrderDate.IsZero() {
		fmt.Fprintf(w, "Placed: %s\n", o.OrderDate.Format("2006-01-02 15:04"))
	}
	if o.ShippingAddress != "" {
		fmt.Fprintf(w, "Ship to: %s\n", o.ShippingAddress)
	}
	if o.Note != "" {
		fmt.Fprintf(w, "Note: %s\n", o.Note)
	}

	if len(o.Details) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ORCHID\tUNIT PRICE\tQTY")
		for _, d := range o.Details {
			name := d.OrchidName
			if name == "" {
				name = d.OrchidID
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\n", name, FormatPrice(d.UnitPrice, currency), d.Quantity)
		}
		tw.Flush()
	}

	fmt.Fprintf(w, "Total: %s\n", FormatPrice(o.TotalAmount, currency))
}

func renderAccounts(w io.Writer, accounts []entity.Account) {
	if len(accounts) == 0 {
		fmt.Fprintln(w, "No accounts.")

		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Email, a.Role)
	}
	tw.Flush()
}

func renderCategories(w io.Writer, categories []entity.Category) {
	if len(categories) == 0 {
		fmt.Fprintln(w, "No categories.")

		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
	}
	tw.Flush()
}
