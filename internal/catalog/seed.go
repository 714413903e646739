package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

//go:embed seed.yaml
var defaultSeed []byte

// DefaultSeed returns the bundled sample products.
func DefaultSeed() []byte {
	return defaultSeed
}

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

// Prices are strings so that YAML float parsing cannot round them.
type seedProduct struct {
	CreateProductRequest `yaml:",inline"`
	Price                string `yaml:"price"`
}

// LoadSeed decodes a YAML document of the form
//
//	products:
//	  - name: Wireless Mouse
//	    description: Ergonomic wireless mouse ...
//	    price: "29.99"
//	    stock_quantity: 150
//	    category: electronics
//
// Field validation is left to ProductService.Seed.
func LoadSeed(r io.Reader) ([]CreateProductRequest, error) {
	var f seedFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidSeed, err)
	}

	out := make([]CreateProductRequest, 0, len(f.Products))
	for i, p := range f.Products {
		field := fmt.Sprintf("products[%d].price", i)
		raw, err := guard.NullOrWhiteSpace(field, p.Price)
		if err != nil {
			return nil, errors.Join(ErrInvalidSeed, err)
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.Join(ErrInvalidSeed, fmt.Errorf("%s: %w", field, err))
		}
		req := p.CreateProductRequest
		req.Price = price
		out = append(out, req)
	}
	return out, nil
}
