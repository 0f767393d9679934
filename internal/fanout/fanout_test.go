package fanout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestMap_PreservesOrder(t *testing.T) {
	items := []int{5, 1, 4, 2, 3}

	got, err := Map(context.Background(), items, 2, func(ctx context.Context, n int) (int, error) {
		// later items finish first
		time.Sleep(time.Duration(n) * time.Millisecond)
		return n * 10, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	want := []int{50, 10, 40, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMap_Empty(t *testing.T) {
	got, err := Map(context.Background(), []string(nil), 4, func(ctx context.Context, s string) (string, error) {
		t.Fatal("fn called for empty input")
		return "", nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestMap_RespectsLimit(t *testing.T) {
	const limit = 3
	var inFlight, peak atomic.Int32

	items := make([]int, 20)
	_, err := Map(context.Background(), items, limit, func(ctx context.Context, _ int) (struct{}, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if p := peak.Load(); p > limit {
		t.Errorf("peak concurrency = %d, want <= %d", p, limit)
	}
}

func TestMap_FailsFast(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32

	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	got, err := Map(context.Background(), items, 1, func(ctx context.Context, n int) (int, error) {
		calls.Add(1)
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Map() error = %v, want %v", err, boom)
	}
	if got != nil {
		t.Errorf("Map() results = %v, want nil on failure", got)
	}
	if c := calls.Load(); c == int32(len(items)) {
		t.Errorf("fn called %d times, want fewer after failure", c)
	}
}

func TestMap_ParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Map(ctx, []int{1, 2, 3}, 0, func(ctx context.Context, n int) (int, error) {
		return n, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Map() error = %v, want context.Canceled", err)
	}
}
