package g1

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNeverReusesIDs(t *testing.T) {
	r := newRegistry[armState]()
	a := r.put(&armState{})
	b := r.put(&armState{})
	assert.NotEqual(t, a, b)

	_, ok := r.take(a)
	require.True(t, ok)
	c := r.put(&armState{})
	assert.NotEqual(t, a, c)

	_, ok = r.get(a)
	assert.False(t, ok, "destroyed id must not resolve")
	_, ok = r.take(a)
	assert.False(t, ok, "double take is a no-op")
	assert.Equal(t, 2, r.len())
}

func TestRegistryNullHandle(t *testing.T) {
	r := newRegistry[locoState]()
	r.put(&locoState{})
	_, ok := r.get(0)
	assert.False(t, ok)
	_, ok = r.take(0)
	assert.False(t, ok)
	assert.Equal(t, 1, r.len())
}

func TestRegistryConcurrentPut(t *testing.T) {
	r := newRegistry[locoState]()
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[uintptr]bool)
	)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := r.put(&locoState{})
			mu.Lock()
			ids[h] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, ids, 64)
	assert.NotContains(t, ids, uintptr(0))
}
