package cache

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestCache() *Cache {
	c := New(100, time.Minute)
	return c
}

func TestKey(t *testing.T) {
	if got := Key("catalog", "big buck bunny"); got != "catalog:big buck bunny" {
		t.Errorf("Key = %q, want %q", got, "catalog:big buck bunny")
	}
	if got := Key("meta", "src", "q"); got != "meta:src:q" {
		t.Errorf("Key = %q, want %q", got, "meta:src:q")
	}
}

func TestGetOrCompute_HitSkipsCompute(t *testing.T) {
	c := newTestCache()
	defer c.Stop()

	calls := 0
	compute := func() (any, bool) {
		calls++
		return "value", true
	}

	first := c.GetOrCompute("k", time.Minute, compute)
	second := c.GetOrCompute("k", time.Minute, compute)

	if first != "value" || second != "value" {
		t.Errorf("got %v, %v; want value, value", first, second)
	}
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
}

func TestGetOrCompute_ExpiredRecomputes(t *testing.T) {
	c := newTestCache()
	defer c.Stop()

	calls := 0
	compute := func() (any, bool) {
		calls++
		return calls, true
	}

	c.GetOrCompute("k", time.Millisecond, compute)
	time.Sleep(5 * time.Millisecond)
	got := c.GetOrCompute("k", time.Minute, compute)

	if calls != 2 {
		t.Errorf("compute ran %d times, want 2 (expired entries are absent)", calls)
	}
	if got != 2 {
		t.Errorf("got %v, want 2", got)
	}
}

func TestGetOrCompute_NotCacheableNotStored(t *testing.T) {
	c := newTestCache()
	defer c.Stop()

	calls := 0
	compute := func() (any, bool) {
		calls++
		return "transient", false
	}

	c.GetOrCompute("k", time.Minute, compute)
	c.GetOrCompute("k", time.Minute, compute)

	if calls != 2 {
		t.Errorf("compute ran %d times, want 2 (non-cacheable result must not be stored)", calls)
	}
	if n := c.Len(); n != 0 {
		t.Errorf("cache holds %d entries, want 0", n)
	}
}

func TestGetOrCompute_SingleFlight(t *testing.T) {
	c := newTestCache()
	defer c.Stop()

	var computes atomic.Int32
	release := make(chan struct{})
	compute := func() (any, bool) {
		computes.Add(1)
		<-release
		return "shared", true
	}

	const callers = 10
	var wg sync.WaitGroup
	results := make([]any, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.GetOrCompute("hot", time.Minute, compute)
		}(i)
	}

	// Let all callers pile onto the in-flight compute, then release it.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := computes.Load(); got != 1 {
		t.Errorf("%d computes for concurrent identical keys, want exactly 1", got)
	}
	for i, r := range results {
		if r != "shared" {
			t.Errorf("caller %d got %v, want shared", i, r)
		}
	}
}

func TestGetOrCompute_DistinctKeysComputeIndependently(t *testing.T) {
	c := newTestCache()
	defer c.Stop()

	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("k%d", i)
		got := c.GetOrCompute(key, time.Minute, func() (any, bool) {
			return key, true
		})
		if got != key {
			t.Errorf("key %q got %v", key, got)
		}
	}
	if n := c.Len(); n != 3 {
		t.Errorf("cache holds %d entries, want 3", n)
	}
}

func TestEvictionAtCapacity(t *testing.T) {
	c := New(3, time.Minute)
	defer c.Stop()

	for i := 0; i < 5; i++ {
		key := fmt.Sprintf("k%d", i)
		c.GetOrCompute(key, time.Minute, func() (any, bool) {
			return i, true
		})
	}

	if n := c.Len(); n > 3 {
		t.Errorf("cache holds %d entries after eviction, want at most 3", n)
	}
}

func TestSweepEvictsExpired(t *testing.T) {
	c := New(100, 10*time.Millisecond)
	defer c.Stop()

	c.GetOrCompute("short", time.Millisecond, func() (any, bool) { return 1, true })
	c.GetOrCompute("long", time.Minute, func() (any, bool) { return 2, true })

	time.Sleep(50 * time.Millisecond)

	c.mu.RLock()
	_, shortAlive := c.store["short"]
	_, longAlive := c.store["long"]
	c.mu.RUnlock()

	if shortAlive {
		t.Error("expired entry survived the background sweep")
	}
	if !longAlive {
		t.Error("live entry was swept")
	}
}
