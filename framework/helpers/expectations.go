package helpers

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// Expectation is a reusable, self-describing check against a value. A failed
// check reports both the condition and the value it was given.
type Expectation struct {
	check       func(assert.TestingT, interface{}) bool
	condition   string
	formatValue func(interface{}) string
}

// NewExpectation builds an Expectation from a condition description and a
// check function. The function receives an assert.TestingT, so testify
// assertions can be used inside it; it must also report failure through its
// return value. formatValue may be nil, in which case a failing value formats
// with its own String method if it has one, or %+v otherwise.
func NewExpectation(
	condition string,
	formatValue func(interface{}) string,
	check func(assert.TestingT, interface{}) bool,
) Expectation {
	return Expectation{check: check, condition: condition, formatValue: formatValue}
}

// Check runs the expectation against a value, reporting any failure through t.
func (ex Expectation) Check(t assert.TestingT, value interface{}) bool {
	if ex.check == nil || ex.check(t, value) {
		return true
	}
	assert.Fail(t, fmt.Sprintf("failed condition was: %s\nactual value was: %s",
		ex.condition, ex.describe(value)))
	return false
}

func (ex Expectation) describe(value interface{}) string {
	if ex.formatValue != nil {
		return ex.formatValue(value)
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%+v", value)
}
