package services_test

import (
	"testing"

	"consolidator/internal/core/domain/model/fulfillment"
	"consolidator/internal/core/domain/model/kernel"
	"consolidator/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, id string) kernel.LocationID {
	t.Helper()

	location, err := kernel.NewLocationID(id)
	require.NoError(t, err)
	return location
}

func subOrderAt(t *testing.T, id string, locationID string) fulfillment.SubOrder {
	t.Helper()

	subOrder := fulfillment.SubOrder{ID: id, Status: "OPEN"}
	if locationID != "" {
		location := mustLocation(t, locationID)
		subOrder.AssignedLocationID = &location
	}
	return subOrder
}

func TestLocationAnalyzer_Analyze(t *testing.T) {
	analyzer := services.NewLocationAnalyzer()
	target := "gid://shopify/Location/usa"

	t.Run("empty sub-order set needs no consolidation", func(t *testing.T) {
		// When
		distribution := analyzer.Analyze(nil, mustLocation(t, target))

		// Then
		assert.Empty(t, distribution.UniqueLocations)
		assert.Equal(t, 0, distribution.TotalSubOrders)
		assert.False(t, distribution.NeedsConsolidation)
		assert.False(t, distribution.AllAtTarget)
	})

	t.Run("single location does not need consolidation", func(t *testing.T) {
		// Given
		subOrders := []fulfillment.SubOrder{
			subOrderAt(t, "fo-1", "gid://shopify/Location/australia"),
			subOrderAt(t, "fo-2", "gid://shopify/Location/australia"),
		}

		// When
		distribution := analyzer.Analyze(subOrders, mustLocation(t, target))

		// Then
		require.Len(t, distribution.UniqueLocations, 1)
		assert.False(t, distribution.NeedsConsolidation)
		assert.False(t, distribution.AllAtTarget)
		assert.True(t, distribution.SingleLocation())
	})

	t.Run("all at target reports AllAtTarget", func(t *testing.T) {
		// Given
		subOrders := []fulfillment.SubOrder{
			subOrderAt(t, "fo-1", target),
			subOrderAt(t, "fo-2", target),
		}

		// When
		distribution := analyzer.Analyze(subOrders, mustLocation(t, target))

		// Then
		assert.False(t, distribution.NeedsConsolidation)
		assert.True(t, distribution.AllAtTarget)
	})

	t.Run("two distinct locations need consolidation", func(t *testing.T) {
		// Given
		subOrders := []fulfillment.SubOrder{
			subOrderAt(t, "fo-1", "gid://shopify/Location/australia"),
			subOrderAt(t, "fo-2", "gid://shopify/Location/yoyogi"),
		}

		// When
		distribution := analyzer.Analyze(subOrders, mustLocation(t, target))

		// Then
		assert.True(t, distribution.NeedsConsolidation)
		assert.Len(t, distribution.UniqueLocations, 2)
		assert.False(t, distribution.AllAtTarget)
	})

	t.Run("unique location count equals distinct locations", func(t *testing.T) {
		// Given
		subOrders := []fulfillment.SubOrder{
			subOrderAt(t, "fo-1", "gid://shopify/Location/a"),
			subOrderAt(t, "fo-2", "gid://shopify/Location/b"),
			subOrderAt(t, "fo-3", "gid://shopify/Location/c"),
			subOrderAt(t, "fo-4", "gid://shopify/Location/b"),
		}

		// When
		distribution := analyzer.Analyze(subOrders, mustLocation(t, target))

		// Then
		assert.Len(t, distribution.UniqueLocations, 3)
		assert.Equal(t, 2, distribution.SubOrdersPerLocation["gid://shopify/Location/b"])
		assert.Equal(t, 4, distribution.TotalSubOrders)
	})

	t.Run("unassigned sub-orders are counted but excluded from locations", func(t *testing.T) {
		// Given
		subOrders := []fulfillment.SubOrder{
			subOrderAt(t, "fo-1", target),
			subOrderAt(t, "fo-2", ""), // no assigned location yet
		}

		// When
		distribution := analyzer.Analyze(subOrders, mustLocation(t, target))

		// Then
		assert.Len(t, distribution.UniqueLocations, 1)
		assert.Equal(t, 2, distribution.TotalSubOrders)
		assert.False(t, distribution.NeedsConsolidation)
		assert.False(t, distribution.AllAtTarget, "unassigned sub-order is not at the target")
	})

	t.Run("output is independent of input ordering", func(t *testing.T) {
		// Given
		forward := []fulfillment.SubOrder{
			subOrderAt(t, "fo-1", "gid://shopify/Location/b"),
			subOrderAt(t, "fo-2", "gid://shopify/Location/a"),
		}
		reversed := []fulfillment.SubOrder{forward[1], forward[0]}

		// When
		first := analyzer.Analyze(forward, mustLocation(t, target))
		second := analyzer.Analyze(reversed, mustLocation(t, target))

		// Then
		assert.Equal(t, first, second)
	})
}
