package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTrucksQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetTrucksQuery(5, 10)

	require.NoError(t, err)
	assert.Equal(t, 5, query.Limit())
	assert.Equal(t, 10, query.Offset())
	assert.NoError(t, query.Validate())
}

func TestNewGetTrucksQuery_InvalidBounds(t *testing.T) {
	testCases := []struct {
		name    string
		limit   int
		offset  int
		wantErr error
	}{
		{name: "zero_limit", limit: 0, offset: 0, wantErr: queries.ErrLimitIsInvalid},
		{name: "negative_limit", limit: -5, offset: 0, wantErr: queries.ErrLimitIsInvalid},
		{name: "negative_offset", limit: 5, offset: -1, wantErr: queries.ErrOffsetIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.NewGetTrucksQuery(tc.limit, tc.offset)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewGetTrucksQuery_ZeroOffsetIsValid(t *testing.T) {
	query, err := queries.NewGetTrucksQuery(1, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, query.Offset())
}

func TestGetTrucksQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.GetTrucksQuery

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetTrucksQueryIsNotConstructed)
}
