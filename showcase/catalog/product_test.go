package catalog

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

func TestNewProductClampsNegativePrice(t *testing.T) {
	for _, in := range []string{"-0.01", "-1", "-99999.5"} {
		p := NewProduct("n", "d", decimal.RequireFromString(in))
		if !p.Price().IsZero() {
			t.Fatalf("price %s: expected 0, got %s", in, p.PriceText())
		}
	}

	p := NewProduct("n", "d", decimal.RequireFromString("12.50"))
	if p.PriceText() != "12.5" {
		t.Fatalf("expected 12.5, got %s", p.PriceText())
	}
}

func TestParsePrice(t *testing.T) {
	valid := map[string]string{
		"0":      "0",
		"19.99":  "19.99",
		" 7 ":    "7",
		"1e2":    "100",
		"0.0001": "0.0001",
	}
	for in, want := range valid {
		d, err := ParsePrice(in)
		if err != nil {
			t.Fatalf("ParsePrice(%q): %v", in, err)
		}
		if d.String() != want {
			t.Fatalf("ParsePrice(%q) = %s, want %s", in, d, want)
		}
	}

	for _, in := range []string{
		"", "  ", "abc", "12,5", "-1", "-0.5", "1.2.3", "NaN",
		"1e2000000", "1e10", "1000000000.01", "0.0000000000001", "1e-2000000",
	} {
		if _, err := ParsePrice(in); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("ParsePrice(%q): expected ErrInvalidPrice, got %v", in, err)
		}
	}
}

func TestParsePriceBounds(t *testing.T) {
	d, err := ParsePrice(MaxPrice.String())
	if err != nil || !d.Equal(MaxPrice) {
		t.Fatalf("ParsePrice(max) = %s, %v", d, err)
	}
	if _, err := ParsePrice("0.000000000001"); err != nil {
		t.Fatalf("ParsePrice(12 decimals): %v", err)
	}
}

func TestDecodeProductListRejectsHugePrice(t *testing.T) {
	for _, price := range []string{"1e200000000", "1e2000000", "12345678901", "0.1234567890123"} {
		body := []byte(`{"products":[{"name":"X","price":` + price + `}]}`)
		if _, err := DecodeProductList(body); !errors.Is(err, ErrMalformed) {
			t.Fatalf("price %s: expected ErrMalformed, got %v", price, err)
		}
	}

	l, err := DecodeProductList([]byte(`{"products":[{"name":"X","price":-1e30}]}`))
	if err != nil {
		t.Fatalf("negative price: %v", err)
	}
	if !l.Products[0].Price().IsZero() {
		t.Fatalf("expected clamp to 0, got %s", l.Products[0].PriceText())
	}
}

func TestDecodeProductList(t *testing.T) {
	body := []byte(`{"products":[
		{"name":"Chair","description":"Oak","price":49.9},
		{"name":"Lamp","description":"Brass","price":-3},
		{"name":"Rug"}
	]}`)

	l, err := DecodeProductList(body)
	if err != nil {
		t.Fatalf("DecodeProductList: %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("expected 3 products, got %d", l.Len())
	}
	if l.Products[0].Name() != "Chair" || l.Products[0].PriceText() != "49.9" {
		t.Fatalf("unexpected first product %+v", l.Products[0])
	}
	if !l.Products[1].Price().IsZero() {
		t.Fatalf("expected clamped price, got %s", l.Products[1].PriceText())
	}
	if l.Products[2].Description() != "" || !l.Products[2].Price().IsZero() {
		t.Fatalf("expected zero values for missing fields")
	}
}

func TestDecodeProductListNullAndEmpty(t *testing.T) {
	l, err := DecodeProductList([]byte(`{"products":null}`))
	if err != nil {
		t.Fatalf("DecodeProductList: %v", err)
	}
	if l.Products != nil {
		t.Fatal("expected nil products for null")
	}

	l, err = DecodeProductList([]byte(`{"products":[]}`))
	if err != nil {
		t.Fatalf("DecodeProductList: %v", err)
	}
	if l.Products == nil || l.Len() != 0 {
		t.Fatal("expected empty, non-nil products")
	}
}

func TestDecodeProductListMalformed(t *testing.T) {
	for _, body := range []string{``, `{`, `{"products":"nope"}`, `{"products":[{"price":"cheap"}]}`} {
		if _, err := DecodeProductList([]byte(body)); !errors.Is(err, ErrMalformed) {
			t.Fatalf("body %q: expected ErrMalformed, got %v", body, err)
		}
	}
}

func TestEncodeProductListWritesNumbers(t *testing.T) {
	l := ProductList{Products: []Product{NewProduct("A", "B", decimal.RequireFromString("5.25"))}}
	b, err := EncodeProductList(l)
	if err != nil {
		t.Fatalf("EncodeProductList: %v", err)
	}
	want := `{"products":[{"name":"A","description":"B","price":5.25}]}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}

	b, err = EncodeProductList(ProductList{})
	if err != nil {
		t.Fatalf("EncodeProductList: %v", err)
	}
	if string(b) != `{"products":[]}` {
		t.Fatalf("got %s", b)
	}
}
