package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Next(t *testing.T) {
	base := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)

	entry := Entry{Expression: "every 15 seconds"}
	next, err := entry.Next(base)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 2, 3, 4, 15, 0, time.UTC), next)

	entry = Entry{Expression: "at 10:00 am"}
	next, err = entry.Next(base)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 2, 10, 0, 0, 0, time.UTC), next)
}

func TestEntry_NextInvalidExpression(t *testing.T) {
	entry := Entry{Expression: "gibberish"}
	_, err := entry.Next(time.Now())
	assert.Error(t, err)

	assert.Panics(t, func() { entry.MustNext(time.Now()) })
}

func TestEntry_ByTimeAsc_Unique(t *testing.T) {
	entries := ByTimeAsc{
		{ID: "a", Expression: "every 15 seconds"},
		{ID: "b", Expression: "every 30 seconds"},
		{ID: "a", Expression: "every 15 seconds"},
	}

	uniques := entries.Unique()
	require.Len(t, uniques, 2)

	ids := []string{uniques[0].ID, uniques[1].ID}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}
