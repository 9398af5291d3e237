package catalog

import (
	"encoding/json"

	"github.com/go-faster/errors"
)

// ProductList is the API envelope. Products keeps response order.
//
// A nil Products means the key was missing or null; an empty slice means the
// API answered with no products.
type ProductList struct {
	Products []Product `json:"products"`
}

// Len returns the number of products.
func (l ProductList) Len() int { return len(l.Products) }

// DecodeProductList parses an API response body.
func DecodeProductList(b []byte) (ProductList, error) {
	var l ProductList
	if err := json.Unmarshal(b, &l); err != nil {
		return ProductList{}, errors.Wrapf(ErrMalformed, "%v", err)
	}
	return l, nil
}

// EncodeProductList renders a list in the API envelope format.
func EncodeProductList(l ProductList) ([]byte, error) {
	if l.Products == nil {
		l.Products = []Product{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(err, "encode products")
	}
	return b, nil
}
