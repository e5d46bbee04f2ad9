package helpers

import (
	"time"
)

// PollForSpecificResultValue calls valueFn at intervals until it returns the
// expected value or the timeout elapses. It reports whether the value was
// seen. Polling happens on the calling goroutine; the test frameworks here do
// not tolerate assertions from other goroutines, which rules out
// assert.Eventually.
func PollForSpecificResultValue[V comparable](
	valueFn func() V,
	timeout, interval time.Duration,
	expectedValue V,
) bool {
	poll := time.NewTicker(interval)
	defer poll.Stop()
	giveUp := time.NewTimer(timeout)
	defer giveUp.Stop()
	for {
		select {
		case <-giveUp.C:
			return false
		case <-poll.C:
			if valueFn() == expectedValue {
				return true
			}
		}
	}
}

// AssertEventually polls conditionFn until it returns true or the timeout
// elapses, in which case the test fails with the given message. It reports
// whether the condition was met.
func AssertEventually(
	t TestContext,
	conditionFn func() bool,
	timeout, interval time.Duration,
	msgFormat string,
	msgArgs ...interface{},
) bool {
	if PollForSpecificResultValue(conditionFn, timeout, interval, true) {
		return true
	}
	t.Errorf(msgFormat, msgArgs...)
	return false
}

// RequireEventually is AssertEventually plus immediate termination of the
// test on timeout.
func RequireEventually(
	t TestContext,
	conditionFn func() bool,
	timeout, interval time.Duration,
	msgFormat string,
	msgArgs ...interface{},
) {
	if !AssertEventually(t, conditionFn, timeout, interval, msgFormat, msgArgs...) {
		t.FailNow()
	}
}
