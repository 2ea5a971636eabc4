package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_Empty(t *testing.T) {
	store := NewConfigStore()

	v, ok := store.Lookup("feed.page_size")

	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, Location, store.Location())
}

func TestConfigStore_PutMergesAndOverwrites(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Put(map[string]any{"log.file": "a.log", "feed.page_size": 30}))
	require.NoError(t, store.Put(map[string]any{"log.file": "b.log"}))

	v, ok := store.Lookup("log.file")
	assert.True(t, ok)
	assert.Equal(t, "b.log", v)

	v, ok = store.Lookup("feed.page_size")
	assert.True(t, ok)
	assert.Equal(t, 30, v)
}

func TestConfigStore_PutCopiesInput(t *testing.T) {
	store := NewConfigStore()
	in := map[string]any{"feed.window_days": 10}
	require.NoError(t, store.Put(in))

	in["feed.window_days"] = 99

	v, _ := store.Lookup("feed.window_days")
	assert.Equal(t, 10, v)
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Put(map[string]any{"n": i})
			_, _ = store.Lookup("n")
		}()
	}
	wg.Wait()

	_, ok := store.Lookup("n")
	assert.True(t, ok)
}
