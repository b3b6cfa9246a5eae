package watch_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpi-demonstrator/vhal-go/pkg/jsonconfig"
	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
	"github.com/rpi-demonstrator/vhal-go/pkg/watch"
)

const (
	infoMake      = 0x11100101
	infoModelYear = 0x11400103
)

const oneProperty = `{"properties": [
  {"property": "VehicleProperty::INFO_MAKE", "access": "VehiclePropertyAccess::READ",
   "changeMode": "VehiclePropertyChangeMode::STATIC"}
]}`

const twoProperties = `{"properties": [
  {"property": "VehicleProperty::INFO_MAKE", "access": "VehiclePropertyAccess::READ",
   "changeMode": "VehiclePropertyChangeMode::STATIC"},
  {"property": "VehicleProperty::INFO_MODEL_YEAR", "access": "VehiclePropertyAccess::READ",
   "changeMode": "VehiclePropertyChangeMode::STATIC"}
]}`

const broken = `{"properties": [{"property": "VehicleProperty::INFO_MAKE", "access": "Bogus::FOO",
  "changeMode": "VehiclePropertyChangeMode::STATIC"}]}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "properties.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newHolder(t *testing.T, path string) *watch.Holder {
	t.Helper()
	loader, err := jsonconfig.NewLoader()
	require.NoError(t, err)
	h, err := watch.NewHolder(path, loader, nil)
	require.NoError(t, err)
	t.Cleanup(h.Stop)
	return h
}

func TestHolderTable(t *testing.T) {
	h := newHolder(t, writeConfig(t, oneProperty))

	table := h.Table()
	require.Len(t, table, 1)
	assert.Contains(t, table, int32(infoMake))
	assert.True(t, filepath.IsAbs(h.Path()))
}

func TestNewHolderFailsOnInvalidFile(t *testing.T) {
	loader, err := jsonconfig.NewLoader()
	require.NoError(t, err)

	_, err = watch.NewHolder(writeConfig(t, broken), loader, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jsonconfig.ErrUnresolvedConstant))
}

func TestHolderReload(t *testing.T) {
	path := writeConfig(t, oneProperty)
	h := newHolder(t, path)

	require.NoError(t, os.WriteFile(path, []byte(twoProperties), 0o644))
	require.NoError(t, h.Reload())

	table := h.Table()
	assert.Len(t, table, 2)
	assert.Contains(t, table, int32(infoModelYear))
}

func TestHolderReloadKeepsOldTable(t *testing.T) {
	path := writeConfig(t, oneProperty)
	h := newHolder(t, path)

	require.NoError(t, os.WriteFile(path, []byte(broken), 0o644))
	err := h.Reload()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bogus::FOO")

	table := h.Table()
	require.Len(t, table, 1)
	assert.Contains(t, table, int32(infoMake))
}

func TestHolderOnChange(t *testing.T) {
	path := writeConfig(t, oneProperty)
	h := newHolder(t, path)

	var mu sync.Mutex
	var calls int
	var received vehicle.Table
	h.OnChange(func(table vehicle.Table) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		received = table
	})

	require.NoError(t, os.WriteFile(path, []byte(broken), 0o644))
	require.Error(t, h.Reload())

	require.NoError(t, os.WriteFile(path, []byte(twoProperties), 0o644))
	require.NoError(t, h.Reload())

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("OnChange calls = %d, want 1", calls)
	}
	assert.Len(t, received, 2)
}

func TestHolderWatchFile(t *testing.T) {
	path := writeConfig(t, oneProperty)
	h := newHolder(t, path)

	changed := make(chan vehicle.Table, 8)
	h.OnChange(func(table vehicle.Table) { changed <- table })

	require.NoError(t, h.WatchFile())
	require.NoError(t, os.WriteFile(path, []byte(twoProperties), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case table := <-changed:
			if len(table) == 2 {
				assert.Len(t, h.Table(), 2)
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestHolderWatchFileTwice(t *testing.T) {
	h := newHolder(t, writeConfig(t, oneProperty))
	require.NoError(t, h.WatchFile())

	assert.ErrorIs(t, h.WatchFile(), watch.ErrWatching)

	h.Stop()
	assert.ErrorIs(t, h.WatchFile(), watch.ErrStopped)
}

func TestHolderStop(t *testing.T) {
	h := newHolder(t, writeConfig(t, oneProperty))
	require.NoError(t, h.WatchFile())

	h.Stop()
	h.Stop()

	assert.ErrorIs(t, h.WatchFile(), watch.ErrStopped)
}

func TestHolderConcurrentAccess(t *testing.T) {
	path := writeConfig(t, twoProperties)
	h := newHolder(t, path)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = h.Reload()
		}()
		go func() {
			defer wg.Done()
			_ = h.Table()
		}()
	}
	wg.Wait()

	assert.Len(t, h.Table(), 2)
}
