// Package seed loads the declarative sample catalog used to populate an
// empty store.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/safar/go-storefront/internal/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Products []catalogProduct `yaml:"products"`
}

type catalogProduct struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Stock       int    `yaml:"stock"`
}

// Default returns the embedded sample catalog.
func Default() ([]models.Product, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog from path.
func LoadFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]models.Product, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]bool, len(file.Products))
	products := make([]models.Product, 0, len(file.Products))

	for i, p := range file.Products {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("product %d: name is required", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("product %q: duplicate name", name)
		}
		seen[name] = true

		price, err := decimal.NewFromString(strings.TrimSpace(p.Price))
		if err != nil {
			return nil, fmt.Errorf("product %q: invalid price %q: %w", name, p.Price, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("product %q: price must not be negative", name)
		}
		if p.Stock < 0 {
			return nil, fmt.Errorf("product %q: stock must not be negative", name)
		}

		products = append(products, models.Product{
			Name:        name,
			Description: p.Description,
			Price:       models.NewMoney(price),
			Stock:       p.Stock,
		})
	}

	return products, nil
}
