package render

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var assertError = fmt.Errorf("provider down")

func TestFormatCache_HitAndExpiry(t *testing.T) {
	req := require.New(t)

	current := time.Now()
	cache := NewFormatCache(10 * time.Second)
	cache.now = func() time.Time { return current }

	var calls atomic.Int32
	loader := func(uuid.UUID) (string, error) {
		calls.Add(1)
		return "<red>%username%</red>: %message%", nil
	}
	id := uuid.New()

	format, err := cache.Get(id, loader)
	req.NoError(err)
	req.Equal("<red>%username%</red>: %message%", format)
	req.EqualValues(1, calls.Load())

	// Within the TTL the entry is served without touching the loader
	_, err = cache.Get(id, loader)
	req.NoError(err)
	req.EqualValues(1, calls.Load())

	// Past the TTL the entry counts as absent and is reloaded
	current = current.Add(11 * time.Second)
	_, err = cache.Get(id, loader)
	req.NoError(err)
	req.EqualValues(2, calls.Load())
}

func TestFormatCache_SingleFlight(t *testing.T) {
	req := require.New(t)
	cache := NewFormatCache(10 * time.Second)
	id := uuid.New()

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	loader := func(uuid.UUID) (string, error) {
		calls.Add(1)
		close(started)
		<-release
		return "format", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = cache.Get(id, loader)
	}()

	// Second caller joins once the first flight is in progress
	<-started
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = cache.Get(id, loader)
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	req.EqualValues(1, calls.Load())
	req.Equal("format", results[0])
	req.Equal("format", results[1])
}

func TestFormatCache_ErrorIsNotCached(t *testing.T) {
	req := require.New(t)
	cache := NewFormatCache(10 * time.Second)
	id := uuid.New()

	var calls atomic.Int32
	loader := func(uuid.UUID) (string, error) {
		if calls.Add(1) == 1 {
			return "", assertError
		}
		return "recovered", nil
	}

	_, err := cache.Get(id, loader)
	req.Error(err)

	format, err := cache.Get(id, loader)
	req.NoError(err)
	req.Equal("recovered", format)
	req.EqualValues(2, calls.Load())
}

func TestFormatCache_Invalidate(t *testing.T) {
	req := require.New(t)
	cache := NewFormatCache(10 * time.Second)
	id := uuid.New()

	var calls atomic.Int32
	loader := func(uuid.UUID) (string, error) {
		calls.Add(1)
		return "format", nil
	}

	_, err := cache.Get(id, loader)
	req.NoError(err)
	cache.Invalidate(id)
	_, err = cache.Get(id, loader)
	req.NoError(err)
	req.EqualValues(2, calls.Load())
}
