package helpers

import (
	"time"

	"github.com/launchdarkly/webqa-harness/framework/opt"
)

// NonBlockingSend sends to the channel if there is room, without blocking.
// It reports whether the value was sent.
func NonBlockingSend[V any](ch chan<- V, value V) bool {
	select {
	case ch <- value:
		return true
	default:
		return false
	}
}

// TryReceive waits up to the timeout for a value. The returned Maybe is
// empty if the timeout elapsed first.
func TryReceive[V any](ch <-chan V, timeout time.Duration) opt.Maybe[V] {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	select {
	case value := <-ch:
		return opt.Some(value)
	case <-deadline.C:
		return opt.None[V]()
	}
}

// RequireValue waits up to the timeout for a value and returns it. If none
// arrives, the test fails and terminates immediately.
func RequireValue[V any](t TestContext, ch <-chan V, timeout time.Duration) V {
	t.Helper()
	received := TryReceive(ch, timeout)
	if !received.IsDefined() {
		var empty V
		t.Errorf("timed out waiting for value of type %T", empty)
		t.FailNow()
	}
	return received.Value()
}

// RequireNoMoreValues fails and terminates the test if any value arrives on
// the channel within the timeout.
func RequireNoMoreValues[V any](t TestContext, ch <-chan V, timeout time.Duration) {
	t.Helper()
	if received := TryReceive(ch, timeout); received.IsDefined() {
		var empty V
		t.Errorf("received unexpected extra value of type %T", empty)
		t.FailNow()
	}
}
