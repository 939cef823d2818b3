package applications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormID(t *testing.T) {
	t.Run("EditorURL", func(t *testing.T) {
		id, err := ParseFormID("https://docs.google.com/forms/d/1FAIpQLSdabc123/edit")
		require.NoError(t, err)
		assert.Equal(t, "1FAIpQLSdabc123", id)
	})

	t.Run("TrailingSegments", func(t *testing.T) {
		id, err := ParseFormID("https://docs.google.com/forms/d/xyz789/edit#responses")
		require.NoError(t, err)
		assert.Equal(t, "xyz789", id)
	})

	t.Run("BareID", func(t *testing.T) {
		id, err := ParseFormID("https://docs.google.com/forms/d/xyz789")
		require.NoError(t, err)
		assert.Equal(t, "xyz789", id)
	})

	t.Run("MissingSegment", func(t *testing.T) {
		_, err := ParseFormID("https://example.com/not-a-form")
		assert.Error(t, err)
	})

	t.Run("EmptyID", func(t *testing.T) {
		_, err := ParseFormID("https://docs.google.com/forms/d//edit")
		assert.Error(t, err)
	})
}
