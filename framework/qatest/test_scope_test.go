package qatest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeContextIsInherited(t *testing.T) {
	type harnessState struct{ name string }
	state := &harnessState{name: "shared"}
	config := TestConfiguration{
		Context: state,
	}
	_ = Run(config, func(qt *T) {
		assert.Equal(t, state, qt.Context())

		qt.Run("child", func(qt1 *T) {
			assert.Equal(t, state, qt1.Context())
		})
	})
}

func TestFailNowStopsTheTestButNotItsParent(t *testing.T) {
	reachedChild := false
	reachedAfterFailNow := false
	parentContinued := false
	_ = Run(TestConfiguration{}, func(qt *T) {
		qt.Run("", func(qt *T) {
			reachedChild = true
			qt.FailNow()
			reachedAfterFailNow = true
		})
		parentContinued = true
	})
	assert.True(t, reachedChild)
	assert.False(t, reachedAfterFailNow)
	assert.True(t, parentContinued)
}

func TestSkipStopsTheTestButNotItsParent(t *testing.T) {
	reachedChild := false
	reachedAfterSkip := false
	parentContinued := false
	_ = Run(TestConfiguration{}, func(qt *T) {
		qt.Run("", func(qt *T) {
			reachedChild = true
			qt.Skip()
			reachedAfterSkip = true
		})
		parentContinued = true
	})
	assert.True(t, reachedChild)
	assert.False(t, reachedAfterSkip)
	assert.True(t, parentContinued)
}

func TestResultsForPassingTests(t *testing.T) {
	result := Run(TestConfiguration{}, func(qt *T) {
		qt.Run("users", func(qt0 *T) {
			qt0.Run("list", func(qt1 *T) {
				// passes
			})
			qt0.Run("create", func(qt2 *T) {
				// passes
			})
		})
	})

	assert.True(t, result.OK())
	assert.Len(t, result.Tests, 4)
	assert.Len(t, result.Failures, 0)

	assert.Equal(t, TestID{"users", "list"}, result.Tests[0].TestID)
	assert.Len(t, result.Tests[0].Errors, 0)

	assert.Equal(t, TestID{"users", "create"}, result.Tests[1].TestID)
	assert.Len(t, result.Tests[1].Errors, 0)

	assert.Equal(t, TestID{"users"}, result.Tests[2].TestID)
	assert.Len(t, result.Tests[2].Errors, 0)

	// the last entry is the top-level scope that Run itself creates
	assert.Nil(t, result.Tests[3].TestID)
	assert.Len(t, result.Tests[3].Errors, 0)
}

func TestResultsForFailingTests(t *testing.T) {
	result := Run(TestConfiguration{}, func(qt *T) {
		qt.Run("users", func(qt0 *T) {
			qt0.Run("list", func(qt1 *T) {
				// passes
			})
			qt0.Run("create", func(qt2 *T) {
				qt2.Errorf("expected status %d", 201)
				qt2.Errorf("response had no body")
			})
			qt0.Errorf("suite-level check failed")
		})
	})

	assert.False(t, result.OK())
	assert.Len(t, result.Tests, 4)
	assert.Len(t, result.Failures, 2)

	assert.Equal(t, TestID{"users", "list"}, result.Tests[0].TestID)
	assert.Len(t, result.Tests[0].Errors, 0)

	assert.Equal(t, TestID{"users", "create"}, result.Tests[1].TestID)
	assert.Len(t, result.Tests[1].Errors, 2)
	assert.Equal(t, "expected status 201", result.Tests[1].Errors[0].Error())
	assert.Equal(t, "response had no body", result.Tests[1].Errors[1].Error())

	assert.Equal(t, TestID{"users"}, result.Tests[2].TestID)
	assert.Len(t, result.Tests[2].Errors, 1)
	assert.Equal(t, "suite-level check failed", result.Tests[2].Errors[0].Error())

	assert.Nil(t, result.Tests[3].TestID)
	assert.Len(t, result.Tests[3].Errors, 0)
}

func TestResultsForNonCriticalFailure(t *testing.T) {
	result := Run(TestConfiguration{}, func(qt *T) {
		qt.Run("flaky", func(qt0 *T) {
			qt0.NonCritical("depends on external network conditions")
			qt0.Errorf("it failed")
		})
	})

	assert.True(t, result.OK())
	assert.Len(t, result.Failures, 0)
	assert.Len(t, result.NonCriticalFailures, 1)
	assert.Equal(t, TestID{"flaky"}, result.NonCriticalFailures[0].TestID)
	assert.Equal(t, "depends on external network conditions", result.NonCriticalFailures[0].Explanation)
	assert.True(t, result.NonCriticalFailures[0].NonCritical)
}

func TestResultsOmitSkippedTests(t *testing.T) {
	result := Run(TestConfiguration{}, func(qt *T) {
		qt.Run("users", func(qt0 *T) {
			qt0.Run("list", func(qt1 *T) {
				qt1.Skip()
			})
			qt0.Run("create", func(qt2 *T) {
				qt2.SkipWithReason("endpoint not deployed yet")
			})
		})
	})

	assert.True(t, result.OK())
	assert.Len(t, result.Tests, 2)
	assert.Len(t, result.Failures, 0)

	assert.Equal(t, TestID{"users"}, result.Tests[0].TestID)
	assert.Len(t, result.Tests[0].Errors, 0)

	assert.Nil(t, result.Tests[1].TestID)
	assert.Len(t, result.Tests[1].Errors, 0)
}

func TestCleanupsRunInReverseOrderOnAnyExit(t *testing.T) {
	var order []string
	_ = Run(TestConfiguration{}, func(qt *T) {
		qt.Run("passing", func(qt0 *T) {
			qt0.Defer(func() { order = append(order, "p1") })
			qt0.Defer(func() { order = append(order, "p2") })
		})
		qt.Run("failing", func(qt0 *T) {
			qt0.Defer(func() { order = append(order, "f1") })
			qt0.Defer(func() { order = append(order, "f2") })
			qt0.FailNow()
		})
		qt.Run("panicking", func(qt0 *T) {
			qt0.Defer(func() { order = append(order, "x1") })
			panic("boom")
		})
	})
	assert.Equal(t, []string{"p2", "p1", "f2", "f1", "x1"}, order)
}

func TestRunRecoversFromPanicInTest(t *testing.T) {
	result := Run(TestConfiguration{}, func(qt *T) {
		qt.Run("panics", func(qt0 *T) {
			panic("something broke")
		})
		qt.Run("still runs", func(qt0 *T) {})
	})

	assert.False(t, result.OK())
	assert.Len(t, result.Failures, 1)
	assert.Equal(t, TestID{"panics"}, result.Failures[0].TestID)
	if assert.Len(t, result.Failures[0].Errors, 1) {
		assert.Contains(t, result.Failures[0].Errors[0].Error(), "unexpected panic in test")
		assert.Contains(t, result.Failures[0].Errors[0].Error(), "something broke")
	}
}

func TestRunAppliesFilterToSubtests(t *testing.T) {
	filter := func(id TestID) bool {
		return len(id) == 0 || id[0] == "posts"
	}

	result := Run(TestConfiguration{Filter: filter}, func(qt *T) {
		qt.Run("users", func(qt0 *T) {
			qt0.Run("list", func(qt1 *T) {})
			qt0.Run("create", func(qt1 *T) {})
		})
		qt.Run("posts", func(qt0 *T) {
			qt0.Run("list", func(qt1 *T) {})
			qt0.Run("create", func(qt1 *T) {})
		})
	})

	assert.True(t, result.OK())
	assert.Len(t, result.Tests, 4)
	assert.Len(t, result.Failures, 0)

	assert.Equal(t, TestID{"posts", "list"}, result.Tests[0].TestID)
	assert.Equal(t, TestID{"posts", "create"}, result.Tests[1].TestID)
	assert.Equal(t, TestID{"posts"}, result.Tests[2].TestID)
	assert.Equal(t, TestID(nil), result.Tests[3].TestID)
}
