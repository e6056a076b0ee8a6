package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zambiatennis/ztaweb/models"
)

func TestLoadEvents(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		res := LoadEvents(filepath.Join(t.TempDir(), "nope.json"))
		assert.True(t, res.FromFallback)
		assert.Error(t, res.Reason)
		assert.Equal(t, DefaultEvents(), res.Events)
		assert.Len(t, res.Events, 3)
	})

	t.Run("corrupt file falls back with a parse reason", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "events.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		res := LoadEvents(path)
		assert.True(t, res.FromFallback)
		assert.Error(t, res.Reason)
		assert.Equal(t, DefaultEvents(), res.Events)
	})

	t.Run("valid file is returned verbatim", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "events.json")
		body := `[
			{"title":"Club Open","start":"2026-01-10","end":"2026-01-12","location":"Ndola","category":"OPEN","description":"Annual club open."}
		]`
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		res := LoadEvents(path)
		assert.False(t, res.FromFallback)
		assert.NoError(t, res.Reason)
		require.Len(t, res.Events, 1)
		assert.Equal(t, models.Event{
			Title:       "Club Open",
			Start:       "2026-01-10",
			End:         "2026-01-12",
			Location:    "Ndola",
			Category:    "OPEN",
			Description: "Annual club open.",
		}, res.Events[0])
	})

	t.Run("default events are copies", func(t *testing.T) {
		a := DefaultEvents()
		a[0].Title = "mutated"
		assert.NotEqual(t, a[0].Title, DefaultEvents()[0].Title)
	})
}
