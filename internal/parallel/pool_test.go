package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogpu/lattice"
)

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Size() != 4 {
		t.Errorf("Size() = %d, want 4", pool.Size())
	}
	if !pool.Open() {
		t.Error("pool should be open after creation")
	}
}

func TestPool_DefaultSize(t *testing.T) {
	for _, size := range []int{0, -5} {
		pool := NewPool(size)
		if got, want := pool.Size(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewPool(%d).Size() = %d, want %d", size, got, want)
		}
		pool.Close()
	}
}

func TestPool_Run(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		tasks   int
	}{
		{"single worker", 1, 10},
		{"more tasks than workers", 4, 100},
		{"more workers than tasks", 16, 3},
		{"many small tasks", 8, 10000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.workers)
			defer pool.Close()

			hits := make([]atomic.Int32, tt.tasks)
			pool.Run(tt.tasks, func(i int) { hits[i].Add(1) })

			for i := range hits {
				if got := hits[i].Load(); got != 1 {
					t.Fatalf("task %d ran %d times, want 1", i, got)
				}
			}
		})
	}
}

func TestPool_RunEmpty(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	pool.Run(0, func(int) { t.Error("task should not run") })
	pool.Run(-1, func(int) { t.Error("task should not run") })
}

func TestPool_RunPropagatesPanic(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var ran atomic.Int32
	defer func() {
		r := recover()
		if r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
		if ran.Load() != 20 {
			t.Errorf("%d tasks ran, want 20", ran.Load())
		}
	}()

	pool.Run(20, func(i int) {
		ran.Add(1)
		if i == 7 {
			panic("boom")
		}
	})
	t.Error("Run should have panicked")
}

func TestPool_Close(t *testing.T) {
	pool := NewPool(4)
	pool.Close()
	if pool.Open() {
		t.Error("pool should be closed")
	}
	// Idempotent.
	pool.Close()
	pool.Close()
}

func TestPool_RunAfterClose(t *testing.T) {
	pool := NewPool(4)
	pool.Close()

	var count int
	pool.Run(5, func(int) { count++ })
	if count != 5 {
		t.Errorf("count = %d, want 5 (inline execution)", count)
	}
}

func TestPool_ConcurrentRuns(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var total atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Run(50, func(int) { total.Add(1) })
		}()
	}
	wg.Wait()

	if total.Load() != 400 {
		t.Errorf("total = %d, want 400", total.Load())
	}
}

func TestPool_WorkStealing(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	// Every fourth task is slow and lands on worker 0; the others must
	// still complete well before the slow tasks would serialize.
	start := time.Now()
	pool.Run(16, func(i int) {
		if i%4 == 0 {
			time.Sleep(20 * time.Millisecond)
		}
	})
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Run took %v", elapsed)
	}
	if pool.Pending() != 0 {
		t.Errorf("Pending() = %d after Run, want 0", pool.Pending())
	}
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()

	for range 10 {
		pool := NewPool(4)
		pool.Run(10, func(int) {})
		pool.Close()
	}

	time.Sleep(50 * time.Millisecond)
	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("goroutines: before=%d after=%d", before, after)
	}
}

func TestForEach(t *testing.T) {
	region := lattice.BoxFromShape(lattice.Pos(5, 4, 7))
	tiling, err := lattice.TileSlabs(region, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	for _, pool := range []*Pool{nil, NewPool(1), NewPool(3)} {
		visits := lattice.NewRaster[int32](region.Shape())
		var mu sync.Mutex
		ForEach(pool, tiling, func(tile lattice.Box) {
			for p := range tile.All() {
				mu.Lock()
				visits.Set(p, visits.At(p)+1)
				mu.Unlock()
			}
		})
		for v := range visits.All() {
			if v != 1 {
				t.Fatalf("position visited %d times, want 1", v)
			}
		}
		if pool != nil {
			pool.Close()
		}
	}
}

func BenchmarkPool_Run(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(lattice.Pos(n).String(), func(b *testing.B) {
			pool := NewPool(0)
			defer pool.Close()
			var sink atomic.Int64
			b.ResetTimer()
			for range b.N {
				pool.Run(n, func(i int) { sink.Add(int64(i)) })
			}
		})
	}
}
