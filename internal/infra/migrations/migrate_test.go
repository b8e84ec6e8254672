//go:build unit

package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileNames_SortedSQLOnly(t *testing.T) {
	names, err := fileNames()

	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_create_customers.sql", names[0])
	assert.IsIncreasing(t, names)
	for _, n := range names {
		assert.True(t, strings.HasSuffix(n, ".sql"), n)
	}
}
