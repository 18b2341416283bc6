package stories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineStartsAndCloses(t *testing.T) {
	e, _, _ := newTestEngine(1)
	var ran bool
	e.Do(func() { ran = true })
	assert.True(t, ran)
	e.Close()
}

func TestEngineOptionsFetchedOnce(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	opts := e.options(nil)
	assert.Equal(t, DefaultTunableOptions(), opts)

	e.invalidateOptions()
	opts2 := e.options(nil)
	assert.Equal(t, opts, opts2)
}

func TestEnginePostRunsAsynchronously(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	done := make(chan struct{})
	e.Post(func() { close(done) })
	<-done
}

func TestGuardDeliversResultOnExecutor(t *testing.T) {
	e, _, _ := newTestEngine(1)
	defer e.Close()

	result := make(chan int, 1)
	e.Do(func() {
		guard(e, context.Background(), func(ctx context.Context) (int, error) {
			return 42, nil
		}, func(v int, err error) {
			require.NoError(t, err)
			result <- v
		})
	})
	assert.Equal(t, 42, <-result)
}

func TestGuardSkipsOnResultAfterClose(t *testing.T) {
	e, _, _ := newTestEngine(1)

	called := make(chan struct{}, 1)
	block := make(chan struct{})
	e.Do(func() {
		guard(e, context.Background(), func(ctx context.Context) (int, error) {
			<-block
			return 1, nil
		}, func(int, error) {
			called <- struct{}{}
		})
	})
	e.Close()
	close(block)
	time.Sleep(50 * time.Millisecond)

	select {
	case <-called:
		t.Fatal("onResult must not run once the engine is closed")
	default:
	}
}

func TestCloseAfterCompletedDoSetsClosedFlag(t *testing.T) {
	e, _, _ := newTestEngine(1)
	e.Do(func() {})
	e.Close()
	require.True(t, e.closed.IsSet())
}
