package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	products, err := Default()
	require.NoError(t, err)
	require.Len(t, products, 20)

	first := products[0]
	assert.Equal(t, "Laptop HP Pavilion", first.Name)
	assert.True(t, first.Price.Equal(decimal.RequireFromString("1299.99")))
	assert.Equal(t, 15, first.Stock)

	names := make(map[string]bool)
	for _, p := range products {
		assert.False(t, names[p.Name], "duplicate %q", p.Name)
		names[p.Name] = true
	}
	assert.True(t, names[`Monitor LG UltraWide 34"`])
}

func TestParseRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "products:\n  - price: \"1\"\n    stock: 1\n"},
		{"bad price", "products:\n  - name: A\n    price: cheap\n    stock: 1\n"},
		{"negative price", "products:\n  - name: A\n    price: \"-1\"\n    stock: 1\n"},
		{"negative stock", "products:\n  - name: A\n    price: \"1\"\n    stock: -2\n"},
		{"duplicate", "products:\n  - name: A\n    price: \"1\"\n  - name: A\n    price: \"2\"\n"},
		{"not yaml", "products: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "products:\n  - name: Cable\n    description: USB-C\n    price: \"19.99\"\n    stock: 100\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	products, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Cable", products[0].Name)
	assert.Equal(t, "19.99", products[0].Price.String())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
