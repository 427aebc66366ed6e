// cache_test.go: Tests for the public Cache[T] API
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotcache

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type testValue struct {
	n int
}

func (v testValue) Clone() testValue { return v }

type tagSet struct {
	id   int
	tags []string
}

func (t tagSet) Clone() tagSet {
	return tagSet{id: t.id, tags: append([]string(nil), t.tags...)}
}

func TestGetClonesNestedSliceIndependently(t *testing.T) {
	c, err := New[tagSet](4, tagSet{id: 1, tags: []string{"a", "b"}})
	require.NoError(t, err)
	defer c.Close()

	first := c.Get()
	second := c.Get()

	if diff := cmp.Diff(first, second, cmp.AllowUnexported(tagSet{})); diff != "" {
		t.Fatalf("two clones of the same publication diverged (-first +second):\n%s", diff)
	}

	first.tags[0] = "mutated"
	assert.NotEqual(t, first.tags, c.Get().tags, "mutating one clone must not affect later reads")
}

func TestNewRejectsInvalidSlotCounts(t *testing.T) {
	_, err := New[testValue](3, testValue{n: 1})
	require.Error(t, err)

	_, err = New[testValue](1, testValue{n: 1})
	require.Error(t, err)
}

func TestGetAndUpdate(t *testing.T) {
	c, err := New[testValue](4, testValue{n: 0})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 0, c.Get().n)

	c.Update(testValue{n: 1})
	assert.Equal(t, 1, c.Get().n)
}

func TestUpdateTracksStats(t *testing.T) {
	c, err := New[testValue](4, testValue{n: 0})
	require.NoError(t, err)
	defer c.Close()

	zero := c.Stats().LastWriteID
	c.Update(testValue{n: 1})
	stats := c.Stats()

	assert.Equal(t, uint64(1), stats.Writes)
	assert.NotEqual(t, zero, stats.LastWriteID)
}

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) Infow(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func TestLoggerFiresOnConstructionAndClose(t *testing.T) {
	logger := &recordingLogger{}
	c, err := New[testValue](4, testValue{n: 0}, WithLogger(logger))
	require.NoError(t, err)

	c.Update(testValue{n: 1})
	c.Close()

	assert.Equal(t, []string{"slotcache constructed", "slotcache closed"}, logger.messages)
}

func TestConcurrentReadersAndWriter(t *testing.T) {
	c, err := New[testValue](4, testValue{n: 0})
	require.NoError(t, err)
	defer c.Close()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					_ = c.Get()
				}
			}
		}()
	}

	for i := 1; i <= 50; i++ {
		c.Update(testValue{n: i})
	}
	close(stop)
	wg.Wait()

	assert.Equal(t, 50, c.Get().n)
}

// TestContendedWritersUpdateBookkeeping races a fleet of writers and
// readers, coordinated with an errgroup so any reader/writer failure
// aborts the group, then checks that the Writes counter and
// LastWriteID seen by Stats reflect every completed Update exactly
// once, with no lost or torn updates.
func TestContendedWritersUpdateBookkeeping(t *testing.T) {
	c, err := New[testValue](4, testValue{n: 0})
	require.NoError(t, err)
	defer c.Close()

	const writers = 4
	const updatesPerWriter = 50

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	readers, readerCtx := errgroup.WithContext(ctx)
	for i := 0; i < 8; i++ {
		readers.Go(func() error {
			for {
				select {
				case <-readerCtx.Done():
					return nil
				default:
					_ = c.Stats()
				}
			}
		})
	}

	writerGroup, writerCtx := errgroup.WithContext(ctx)
	for i := 0; i < writers; i++ {
		writerGroup.Go(func() error {
			for j := 0; j < updatesPerWriter; j++ {
				select {
				case <-writerCtx.Done():
					return writerCtx.Err()
				default:
					c.Update(testValue{n: j})
				}
			}
			return nil
		})
	}

	require.NoError(t, writerGroup.Wait())
	cancel()
	require.NoError(t, readers.Wait())

	stats := c.Stats()
	assert.Equal(t, uint64(writers*updatesPerWriter), stats.Writes)
	assert.NotEqual(t, uuid.UUID{}, stats.LastWriteID)
}
