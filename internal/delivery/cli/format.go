package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatPrice renders an amount in the storefront's display style:
// thousands-grouped digits followed by the currency marker, "₫" for VND.
func FormatPrice(amount float64, currency string) string {
	marker := currency
	if strings.EqualFold(currency, "VND") || currency == "" {
		marker = "₫"
	}

	return groupThousands(amount) + " " + marker
}

func groupThousands(amount float64) string {
	negative := amount < 0
	rounded := int64(math.Round(math.Abs(amount)))

	digits := strconv.FormatInt(rounded, 10)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	return b.String()
}

// FormatQuantity renders the cart line count for the status line.
func FormatQuantity(n int) string {
	if n == 1 {
		return "1 item"
	}

	return fmt.Sprintf("%d items", n)
}
