package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkin-bot/internal/checkin"
)

func TestFileStoreMissingFileYieldsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "checkin.json"))

	data, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.NotNil(t, data)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "checkin.json")
	store := NewFileStore(path)

	data := checkin.DataSet{
		"group:1": {
			"1001": &checkin.UserRecord{
				DisplayName:    "Alice",
				TotalDays:      3,
				MonthDays:      3,
				ContinuousDays: 3,
				TotalRewards:   42,
				MonthRewards:   42,
				LastCheckin:    "2024-01-03",
			},
		},
		"private:2": {
			"2002": &checkin.UserRecord{DisplayName: "Bob", TotalDays: 1},
		},
	}
	require.NoError(t, store.Save(context.Background(), data))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestFileStoreSaveReplacesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkin.json")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, checkin.DataSet{
		"group:1": {"1001": &checkin.UserRecord{DisplayName: "Alice", TotalDays: 1}},
	}))
	require.NoError(t, store.Save(ctx, checkin.DataSet{
		"group:1": {"1001": &checkin.UserRecord{DisplayName: "Alice", TotalDays: 2}},
	}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded["group:1"]["1001"].TotalDays)

	// No temp file left behind after a successful save.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreCorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkin.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path)
	data, err := store.Load(context.Background())
	require.NoError(t, err, "corruption is logged, not fatal")
	assert.Empty(t, data)
}

func TestFileStoreNullFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkin.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))

	store := NewFileStore(path)
	data, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}
