package bdphone_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bdphone/pkg/bdphone"
)

func TestDebouncedSchedule(t *testing.T) {
	t.Parallel()

	t.Run("burst fires once with the last input", func(t *testing.T) {
		t.Parallel()
		d := bdphone.NewDebounced(50 * time.Millisecond)
		defer d.Stop()

		var (
			mu      sync.Mutex
			results []bdphone.Result
		)
		record := func(res bdphone.Result) {
			mu.Lock()
			defer mu.Unlock()
			results = append(results, res)
		}

		d.Schedule("017", record)
		d.Schedule("01712345", record)
		d.Schedule("01712345678", record)

		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(results) == 1
		}, time.Second, 10*time.Millisecond)

		// Give superseded timers a chance to fire if cancellation failed.
		time.Sleep(100 * time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, results, 1, "only the last call in the burst may fire")
		assert.True(t, results[0].Valid)
		assert.Equal(t, "+8801712345678", results[0].NormalizedPhone)
	})

	t.Run("calls outside the window each fire", func(t *testing.T) {
		t.Parallel()
		d := bdphone.NewDebounced(20 * time.Millisecond)
		defer d.Stop()

		fired := make(chan bdphone.Result, 2)
		d.Schedule("01712345678", func(res bdphone.Result) { fired <- res })

		select {
		case res := <-fired:
			assert.True(t, res.Valid)
		case <-time.After(time.Second):
			t.Fatal("first scheduled validation never fired")
		}

		d.Schedule("0212345678", func(res bdphone.Result) { fired <- res })
		select {
		case res := <-fired:
			require.True(t, res.Valid)
			assert.Equal(t, bdphone.TypeLandline, res.Type)
		case <-time.After(time.Second):
			t.Fatal("second scheduled validation never fired")
		}
	})

	t.Run("stop cancels pending validation", func(t *testing.T) {
		t.Parallel()
		d := bdphone.NewDebounced(30 * time.Millisecond)

		fired := make(chan struct{}, 1)
		d.Schedule("01712345678", func(bdphone.Result) { fired <- struct{}{} })
		d.Stop()

		select {
		case <-fired:
			t.Fatal("callback fired after Stop")
		case <-time.After(100 * time.Millisecond):
		}

		// Scheduling on a stopped wrapper is a no-op.
		d.Schedule("01712345678", func(bdphone.Result) { fired <- struct{}{} })
		select {
		case <-fired:
			t.Fatal("stopped wrapper accepted new work")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("nil callback ignored", func(t *testing.T) {
		t.Parallel()
		d := bdphone.NewDebounced(10 * time.Millisecond)
		defer d.Stop()
		assert.NotPanics(t, func() { d.Schedule("01712345678", nil) })
	})

	t.Run("non-positive delay falls back to default", func(t *testing.T) {
		t.Parallel()
		d := bdphone.NewDebounced(0)
		defer d.Stop()

		fired := make(chan struct{}, 1)
		start := time.Now()
		d.Schedule("01712345678", func(bdphone.Result) { fired <- struct{}{} })

		select {
		case <-fired:
			assert.GreaterOrEqual(t, time.Since(start), bdphone.DefaultDebounceDelay)
		case <-time.After(2 * time.Second):
			t.Fatal("validation never fired")
		}
	})

	t.Run("concurrent schedules keep a single pending timer", func(t *testing.T) {
		t.Parallel()
		d := bdphone.NewDebounced(30 * time.Millisecond)
		defer d.Stop()

		var count int32
		var mu sync.Mutex
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				d.Schedule("01712345678", func(bdphone.Result) {
					mu.Lock()
					count++
					mu.Unlock()
				})
			}()
		}
		wg.Wait()

		time.Sleep(150 * time.Millisecond)
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, int32(1), count)
	})
}
