package slotstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddedUint64LoadStoreAdd(t *testing.T) {
	var v PaddedUint64
	assert.Equal(t, uint64(0), v.Load())

	v.Store(41)
	assert.Equal(t, uint64(41), v.Load())

	got := v.Add(1)
	assert.Equal(t, uint64(42), got)

	got = v.Add(-2)
	assert.Equal(t, uint64(40), got)
}

func TestPaddedUint64ConcurrentAdd(t *testing.T) {
	var v PaddedUint64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.Add(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(100), v.Load())
}

func TestPaddedBoolSwapAndStore(t *testing.T) {
	var b PaddedBool

	old := b.Swap(true)
	assert.False(t, old)

	old = b.Swap(true)
	assert.True(t, old, "second swap should observe the flag already held")

	b.Store(false)
	old = b.Swap(true)
	assert.False(t, old)
}
