package store

import (
	"errors"
	"slices"
	"sync"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("store: quantity must be positive")
	ErrNotInCart       = errors.New("store: product not in cart")
)

// CartItem is one line of the cart. UnitPrice is captured when the product
// is added.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id" yaml:"product_id"`
	Name      string    `json:"name" yaml:"name"`
	UnitPrice float64   `json:"unit_price" yaml:"unit_price"`
	Quantity  int       `json:"quantity" yaml:"quantity"`
}

func (i CartItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// CartStore keeps cart lines in the order they were first added.
type CartStore struct {
	mu    sync.Mutex
	items []CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// Add puts qty of product in the cart, merging with an existing line.
func (c *CartStore) Add(p models.StorefrontProductResponse, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.index(p.ID); i >= 0 {
		c.items[i].Quantity += qty
		return nil
	}
	price := p.Price
	if p.DiscountPrice != nil {
		price = *p.DiscountPrice
	}
	c.items = append(c.items, CartItem{ProductID: p.ID, Name: p.Name, UnitPrice: price, Quantity: qty})
	return nil
}

// SetQuantity changes a line's quantity; zero removes it.
func (c *CartStore) SetQuantity(id uuid.UUID, qty int) error {
	if qty < 0 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return ErrNotInCart
	}
	if qty == 0 {
		c.items = slices.Delete(c.items, i, i+1)
		return nil
	}
	c.items[i].Quantity = qty
	return nil
}

func (c *CartStore) Remove(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.index(id); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}
}

func (c *CartStore) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Count is the number of units across all lines.
func (c *CartStore) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *CartStore) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, it := range c.items {
		total += it.Subtotal()
	}
	return total
}

func (c *CartStore) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

func (c *CartStore) index(id uuid.UUID) int {
	return slices.IndexFunc(c.items, func(it CartItem) bool { return it.ProductID == id })
}
