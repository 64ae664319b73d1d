package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"
)

func TestDebouncer_RunsOnceAfterQuietPeriod(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := New(300 * time.Millisecond)

		var calls atomic.Int32
		d.Trigger(func() { calls.Add(1) })

		time.Sleep(299 * time.Millisecond)
		synctest.Wait()
		if got := calls.Load(); got != 0 {
			t.Fatalf("calls before delay = %d, want 0", got)
		}

		time.Sleep(2 * time.Millisecond)
		synctest.Wait()
		if got := calls.Load(); got != 1 {
			t.Errorf("calls after delay = %d, want 1", got)
		}
	})
}

func TestDebouncer_RapidTriggersUseLastValue(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := New(300 * time.Millisecond)

		var mu sync.Mutex
		var got []string
		for _, q := range []string{"r", "ro", "roc", "rock"} {
			d.Trigger(func() {
				mu.Lock()
				got = append(got, q)
				mu.Unlock()
			})
			time.Sleep(100 * time.Millisecond)
		}

		time.Sleep(time.Second)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		if len(got) != 1 || got[0] != "rock" {
			t.Errorf("calls = %v, want [rock]", got)
		}
	})
}

func TestDebouncer_OneCallPerQuietPeriod(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := New(300 * time.Millisecond)

		var calls atomic.Int32
		// Two bursts separated by more than the delay.
		for range 3 {
			d.Trigger(func() { calls.Add(1) })
			time.Sleep(50 * time.Millisecond)
		}
		time.Sleep(500 * time.Millisecond)
		for range 3 {
			d.Trigger(func() { calls.Add(1) })
			time.Sleep(50 * time.Millisecond)
		}
		time.Sleep(500 * time.Millisecond)
		synctest.Wait()

		if got := calls.Load(); got != 2 {
			t.Errorf("calls = %d, want 2", got)
		}
	})
}

func TestDebouncer_Cancel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := New(300 * time.Millisecond)

		var calls atomic.Int32
		d.Trigger(func() { calls.Add(1) })
		if !d.Pending() {
			t.Error("Pending() = false after Trigger")
		}

		d.Cancel()
		if d.Pending() {
			t.Error("Pending() = true after Cancel")
		}

		time.Sleep(time.Second)
		synctest.Wait()
		if got := calls.Load(); got != 0 {
			t.Errorf("calls = %d, want 0 after Cancel", got)
		}
	})
}

func TestDebouncer_NotPendingAfterRun(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := New(10 * time.Millisecond)
		d.Trigger(func() {})

		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		if d.Pending() {
			t.Error("Pending() = true after the call ran")
		}
	})
}

func TestSequence(t *testing.T) {
	var s Sequence

	first := s.Next()
	if !s.IsLatest(first) {
		t.Error("first ticket should be latest")
	}

	second := s.Next()
	if s.IsLatest(first) {
		t.Error("first ticket should be stale after Next")
	}
	if !s.IsLatest(second) {
		t.Error("second ticket should be latest")
	}
	if second <= first {
		t.Errorf("tickets not increasing: %d then %d", first, second)
	}
}
