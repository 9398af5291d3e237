// Package catalog holds the product records shown in the showcase.
package catalog

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrMalformed is returned when a product payload cannot be decoded.
	ErrMalformed = errors.New("malformed product data")
	// ErrInvalidPrice is returned for empty, non-numeric or negative prices.
	ErrInvalidPrice = errors.New("invalid price")
)

// Product is an immutable name/description/price record.
//
// Edits replace the whole value; there are no setters.
type Product struct {
	name        string
	description string
	price       decimal.Decimal
}

// NewProduct builds a Product. Negative prices are clamped to zero.
func NewProduct(name, description string, price decimal.Decimal) Product {
	if price.IsNegative() {
		price = decimal.Zero
	}
	return Product{name: name, description: description, price: price}
}

func (p Product) Name() string           { return p.name }
func (p Product) Description() string    { return p.description }
func (p Product) Price() decimal.Decimal { return p.price }

// PriceText is the canonical display form of the price.
func (p Product) PriceText() string { return p.price.String() }

// Equal reports whether two products carry the same values.
func (p Product) Equal(o Product) bool {
	return p.name == o.name && p.description == o.description && p.price.Equal(o.price)
}

// Accepted prices carry at most priceScale fractional digits and never exceed
// MaxPrice.
const (
	priceScale       = 12
	maxPriceExponent = 9
)

// MaxPrice is the largest price a product can hold.
var MaxPrice = decimal.New(1, maxPriceExponent)

// checkPriceRange rejects values too large or too precise to display. The
// exponent is checked first: comparing against MaxPrice rescales d.
func checkPriceRange(d decimal.Decimal) error {
	if exp := d.Exponent(); exp > maxPriceExponent || exp < -priceScale {
		return errors.Errorf("exponent %d out of range", exp)
	}
	if d.Abs().GreaterThan(MaxPrice) {
		return errors.Errorf("exceeds %s", MaxPrice)
	}
	return nil
}

// ParsePrice parses user input into a price. Surrounding spaces are ignored.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.Wrap(ErrInvalidPrice, "empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrInvalidPrice, "%q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, errors.Wrapf(ErrInvalidPrice, "%q is negative", s)
	}
	if err := checkPriceRange(d); err != nil {
		return decimal.Zero, errors.Wrapf(ErrInvalidPrice, "%q: %v", s, err)
	}
	return d, nil
}

type productJSON struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       json.RawMessage `json:"price,omitempty"`
}

// MarshalJSON writes the price as a JSON number.
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		Name:        p.name,
		Description: p.description,
		Price:       json.RawMessage(p.price.String()),
	})
}

// UnmarshalJSON decodes through NewProduct so the price clamp applies.
func (p *Product) UnmarshalJSON(b []byte) error {
	var raw productJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	price := decimal.Zero
	if len(raw.Price) > 0 && !bytes.Equal(raw.Price, []byte("null")) {
		if err := price.UnmarshalJSON(raw.Price); err != nil {
			return errors.Wrap(err, "price")
		}
		if !price.IsNegative() {
			if err := checkPriceRange(price); err != nil {
				return errors.Wrapf(ErrMalformed, "price: %v", err)
			}
		}
	}
	*p = NewProduct(raw.Name, raw.Description, price)
	return nil
}
