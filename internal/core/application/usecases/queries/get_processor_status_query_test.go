package queries_test

import (
	"testing"

	"consolidator/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProcessorStatusQuery(t *testing.T) {
	t.Run("constructed query is valid", func(t *testing.T) {
		// Given
		query := queries.NewGetProcessorStatusQuery()

		// Then
		assert.NoError(t, query.Validate())
	})

	t.Run("zero value query is rejected", func(t *testing.T) {
		// Given
		var query queries.GetProcessorStatusQuery

		// When
		err := query.Validate()

		// Then
		require.Error(t, err)
		assert.Equal(t, queries.ErrGetProcessorStatusQueryIsNotConstructed, err)
	})
}
