package generators_test

import (
	"testing"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/geozone"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/generators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerGenerator(t *testing.T) {
	t.Run("should reject nil zone registry", func(t *testing.T) {
		_, err := generators.NewCustomerGenerator(generators.DefaultSeed, nil)

		require.Error(t, err)
	})

	t.Run("should create generator with default registry", func(t *testing.T) {
		_, err := generators.NewCustomerGenerator(generators.DefaultSeed, geozone.DefaultRegistry())

		require.NoError(t, err)
	})
}

func TestCustomerGenerator_Customers(t *testing.T) {
	registry := geozone.DefaultRegistry()

	t.Run("should generate the requested count of valid customers", func(t *testing.T) {
		g, err := generators.NewCustomerGenerator(generators.DefaultSeed, registry)
		require.NoError(t, err)

		customers, err := g.Customers(50)

		require.NoError(t, err)
		require.Len(t, customers, 50)
		for _, c := range customers {
			require.NoError(t, c.Validate())
			assert.NotEmpty(t, c.Name())
			assert.NotEmpty(t, c.Email())
			assert.NotEmpty(t, c.Address())
			assert.False(t, c.CreatedAt().IsZero())
		}
	})

	t.Run("should place customers near a delivery zone", func(t *testing.T) {
		g, err := generators.NewCustomerGenerator(generators.DefaultSeed, registry)
		require.NoError(t, err)

		customers, err := g.Customers(30)
		require.NoError(t, err)

		inZone := 0
		for _, c := range customers {
			zone, zErr := registry.ZoneFor(c.Location())
			require.NoError(t, zErr)
			if zone != nil {
				inZone++
			}
		}
		// Jitter can push a customer just outside a zone radius, but most land inside.
		assert.Greater(t, inZone, 20)
	})

	t.Run("should generate unique emails", func(t *testing.T) {
		g, err := generators.NewCustomerGenerator(generators.DefaultSeed, registry)
		require.NoError(t, err)

		customers, err := g.Customers(100)
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, c := range customers {
			assert.False(t, seen[c.Email()], "duplicate email %s", c.Email())
			seen[c.Email()] = true
		}
	})

	t.Run("should produce the same names for the same seed", func(t *testing.T) {
		g1, err := generators.NewCustomerGenerator(7, registry)
		require.NoError(t, err)
		g2, err := generators.NewCustomerGenerator(7, registry)
		require.NoError(t, err)

		first, err := g1.Customers(10)
		require.NoError(t, err)
		second, err := g2.Customers(10)
		require.NoError(t, err)

		for i := range first {
			assert.Equal(t, first[i].Name(), second[i].Name())
			assert.Equal(t, first[i].IsPremium(), second[i].IsPremium())
		}
	})

	t.Run("should mark a minority of customers premium", func(t *testing.T) {
		g, err := generators.NewCustomerGenerator(generators.DefaultSeed, registry)
		require.NoError(t, err)

		customers, err := g.Customers(400)
		require.NoError(t, err)

		premium := 0
		for _, c := range customers {
			if c.IsPremium() {
				premium++
			}
		}
		assert.Greater(t, premium, 40)
		assert.Less(t, premium, 200)
	})
}
