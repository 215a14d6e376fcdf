// Package cart implements the in-memory shopping cart held by each session.
//
// A Cart is an ordered list of (product, quantity) pairs, unique by product
// id, in first-add order. Every mutation returns a fresh snapshot instead of
// modifying the receiver, so a handler can hand out the previous value
// without worrying about aliasing.
package cart

// Product is the summary of a product as it lives inside the cart. It is a
// snapshot taken when the item was added; catalog changes after that do not
// reach back into open carts.
type Product struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

// Item is one cart entry. Quantity is always >= 1; removal is the only way
// to get an item out of the cart.
type Item struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is an immutable cart snapshot. The zero value is an empty cart.
type Cart []Item

// Add puts a product into the cart. If the product is already present its
// quantity goes up by one, otherwise a new entry with quantity 1 is appended
// at the end. There is no upper bound on quantities.
func (c Cart) Add(p Product) Cart {
	next := c.clone()
	for i := range next {
		if next[i].Product.ID == p.ID {
			next[i].Quantity++
			return next
		}
	}
	return append(next, Item{Product: p, Quantity: 1})
}

// UpdateQuantity sets the quantity of the matching entry to exactly qty
// (not additive). Requests below 1 are a no-op: the only way to zero out an
// item is Remove.
func (c Cart) UpdateQuantity(productID int64, qty int) Cart {
	if qty < 1 {
		return c
	}
	next := c.clone()
	for i := range next {
		if next[i].Product.ID == productID {
			next[i].Quantity = qty
			break
		}
	}
	return next
}

// Remove deletes the matching entry. Removing an absent product is a no-op.
func (c Cart) Remove(productID int64) Cart {
	next := make(Cart, 0, len(c))
	for _, item := range c {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

// ItemCount returns the sum of all quantities (the cart badge number).
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c {
		count += item.Quantity
	}
	return count
}

// Total returns the sum of price x quantity across all entries.
// An empty cart totals 0.
func (c Cart) Total() float64 {
	total := 0.0
	for _, item := range c {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Clear returns an empty cart. Called after a successful checkout.
func (c Cart) Clear() Cart {
	return Cart{}
}

// IsEmpty reports whether the cart holds no entries.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

func (c Cart) clone() Cart {
	next := make(Cart, len(c))
	copy(next, c)
	return next
}
