package entity

// CartLine is one product entry in the shopping cart. Name, UnitPrice and
// ImageURL are a denormalized snapshot of the product captured at add time;
// only Quantity mutates afterwards.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity"`
}

// NewCartLine captures a product snapshot as a cart line.
func NewCartLine(o Orchid, quantity int) CartLine {
	return CartLine{
		ProductID: o.ID,
		Name:      o.Name,
		UnitPrice: o.Price,
		ImageURL:  o.ImageURL,
		Quantity:  quantity,
	}
}

// Cart is an ordered sequence of lines, unique by ProductID. Insertion order
// carries no meaning but is preserved so repeated renderings stay stable.
type Cart struct {
	lines []CartLine
}

// NewCart builds a cart from persisted lines. Duplicate ProductIDs in the
// input are merged so the uniqueness invariant holds no matter what was
// stored.
func NewCart(lines []CartLine) *Cart {
	cart := &Cart{}
	for _, line := range lines {
		cart.Add(line)
	}

	return cart
}

// Add inserts a line, merging quantities when a line with the same ProductID
// already exists. It reports whether an existing line was merged into.
func (c *Cart) Add(line CartLine) (merged bool) {
	for i := range c.lines {
		if c.lines[i].ProductID == line.ProductID {
			c.lines[i].Quantity += line.Quantity

			return true
		}
	}

	c.lines = append(c.lines, line)

	return false
}

// Remove deletes the line with the given ProductID. It reports whether a
// line was removed; a missing id is not an error.
func (c *Cart) Remove(productID string) bool {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)

			return true
		}
	}

	return false
}

// Adjust adds delta to the matching line's quantity. A resulting quantity of
// zero or below removes the line entirely. Unknown ids are a no-op.
// The returns report whether a line matched and whether it was removed.
func (c *Cart) Adjust(productID string, delta int) (found, removed bool) {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}

		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)

			return true, true
		}

		return true, false
	}

	return false, false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in display order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)

	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal sums unit price times quantity over all lines. It is pure and
// safe to call repeatedly.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.UnitPrice * float64(line.Quantity)
	}

	return total
}
