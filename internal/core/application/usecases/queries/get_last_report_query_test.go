package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLastReportQuery_Valid(t *testing.T) {
	query := queries.NewGetLastReportQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetLastReportQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetLastReportQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetLastReportQueryIsNotConstructed)
}
