// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/typestream/pkg/types"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndGet(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	stored, err := s.Add(ctx, types.HistoryEntry{
		Mode:        "quote short",
		TestType:    "quote short english punctuation",
		Words:       42,
		QuoteSource: "Meditations",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())

	got, err := s.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, "quote short english punctuation", got.TestType)
	assert.Equal(t, 42, got.Words)
	assert.Equal(t, "Meditations", got.QuoteSource)
	assert.True(t, stored.CreatedAt.Equal(got.CreatedAt))
}

func TestGetMissing(t *testing.T) {
	s := openStore(t)
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, mode := range []string{"time 15", "time 30", "time 60"} {
		_, err := s.Add(ctx, types.HistoryEntry{
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Mode:      mode,
			TestType:  mode + " english",
			Words:     10 * (i + 1),
		})
		require.NoError(t, err)
	}

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"time 60", "time 30", "time 15"}, []string{all[0].Mode, all[1].Mode, all[2].Mode})

	two, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestClear(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	for range 3 {
		_, err := s.Add(ctx, types.HistoryEntry{Mode: "word 10", TestType: "word 10 english"})
		require.NoError(t, err)
	}

	n, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestExport(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	_, err := s.Add(ctx, types.HistoryEntry{Mode: "word 25", TestType: "word 25 english number", Words: 25})
	require.NoError(t, err)

	var jsonOut bytes.Buffer
	require.NoError(t, s.Export(ctx, &jsonOut, "json"))
	var fromJSON []types.HistoryEntry
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &fromJSON))
	require.Len(t, fromJSON, 1)
	assert.Equal(t, "word 25 english number", fromJSON[0].TestType)

	var yamlOut bytes.Buffer
	require.NoError(t, s.Export(ctx, &yamlOut, "yaml"))
	var fromYAML []types.HistoryEntry
	require.NoError(t, yaml.Unmarshal(yamlOut.Bytes(), &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.Equal(t, 25, fromYAML[0].Words)

	assert.Error(t, s.Export(ctx, &bytes.Buffer{}, "csv"))
}

func TestExportEmpty(t *testing.T) {
	s := openStore(t)
	var out bytes.Buffer
	require.NoError(t, s.Export(context.Background(), &out, "json"))
	assert.Equal(t, "[]\n", out.String())
}
