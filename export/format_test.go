package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnlite/tableport/export"
)

func TestParseFormats(t *testing.T) {
	t.Run("valid formats", func(t *testing.T) {
		got, err := export.ParseFormats([]string{"csv", "parquet"})
		require.NoError(t, err)
		assert.Equal(t, []export.Format{export.FormatCSV, export.FormatParquet}, got)
	})

	t.Run("case insensitive and deduplicated", func(t *testing.T) {
		got, err := export.ParseFormats([]string{"CSV", "csv", " json "})
		require.NoError(t, err)
		assert.Equal(t, []export.Format{export.FormatCSV, export.FormatJSON}, got)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := export.ParseFormats([]string{"csv", "xml"})
		assert.ErrorIs(t, err, export.ErrUnknownFormat)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := export.ParseFormats(nil)
		assert.ErrorIs(t, err, export.ErrUnknownFormat)
	})
}

func TestFormat_Ext(t *testing.T) {
	assert.Equal(t, "csv", export.FormatCSV.Ext())
	assert.Equal(t, "parquet", export.FormatParquet.Ext())
	assert.Equal(t, "json", export.FormatJSON.Ext())
	assert.Equal(t, "txt", export.FormatTable.Ext())
}

func TestFormat_BestEffort(t *testing.T) {
	assert.True(t, export.FormatParquet.BestEffort())
	assert.False(t, export.FormatCSV.BestEffort())
	assert.False(t, export.FormatJSON.BestEffort())
}
