package generators_test

import (
	"testing"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/driver"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/geozone"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/generators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriverGenerator(t *testing.T) {
	t.Run("should reject nil zone registry", func(t *testing.T) {
		_, err := generators.NewDriverGenerator(generators.DefaultSeed, nil)

		require.Error(t, err)
	})
}

func TestDriverGenerator_Drivers(t *testing.T) {
	registry := geozone.DefaultRegistry()

	t.Run("should generate the requested count of valid drivers", func(t *testing.T) {
		g, err := generators.NewDriverGenerator(generators.DefaultSeed, registry)
		require.NoError(t, err)

		drivers, err := g.Drivers(50)

		require.NoError(t, err)
		require.Len(t, drivers, 50)
		for _, d := range drivers {
			require.NoError(t, d.Validate())
			assert.NotEmpty(t, d.Name())
			assert.NotEmpty(t, d.Phone())
			assert.NotEmpty(t, d.LicensePlate())
		}
	})

	t.Run("should keep ratings in the four to five band", func(t *testing.T) {
		g, err := generators.NewDriverGenerator(generators.DefaultSeed, registry)
		require.NoError(t, err)

		drivers, err := g.Drivers(200)
		require.NoError(t, err)

		for _, d := range drivers {
			assert.GreaterOrEqual(t, d.Rating(), 4.0)
			assert.LessOrEqual(t, d.Rating(), 5.0)
		}
	})

	t.Run("should cover the fleet mix with sedans dominating", func(t *testing.T) {
		g, err := generators.NewDriverGenerator(generators.DefaultSeed, registry)
		require.NoError(t, err)

		drivers, err := g.Drivers(500)
		require.NoError(t, err)

		counts := make(map[driver.Vehicle]int)
		for _, d := range drivers {
			counts[d.Vehicle()]++
		}

		assert.Greater(t, counts[driver.VehicleSedan], counts[driver.VehicleVan])
		assert.Greater(t, counts[driver.VehicleSedan], counts[driver.VehicleTruck])
		assert.NotZero(t, counts[driver.VehicleSUV])
	})

	t.Run("should mark most drivers active", func(t *testing.T) {
		g, err := generators.NewDriverGenerator(generators.DefaultSeed, registry)
		require.NoError(t, err)

		drivers, err := g.Drivers(400)
		require.NoError(t, err)

		active := 0
		for _, d := range drivers {
			if d.IsActive() {
				active++
			}
		}
		assert.Greater(t, active, 280)
	})

	t.Run("should produce the same fleet for the same seed", func(t *testing.T) {
		g1, err := generators.NewDriverGenerator(11, registry)
		require.NoError(t, err)
		g2, err := generators.NewDriverGenerator(11, registry)
		require.NoError(t, err)

		first, err := g1.Drivers(10)
		require.NoError(t, err)
		second, err := g2.Drivers(10)
		require.NoError(t, err)

		for i := range first {
			assert.Equal(t, first[i].Name(), second[i].Name())
			assert.Equal(t, first[i].Vehicle(), second[i].Vehicle())
			assert.InDelta(t, first[i].Rating(), second[i].Rating(), 0.001)
		}
	})
}
