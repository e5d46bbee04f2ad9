package webtests

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/webqa-harness/framework/qatest"
)

func doCalculatorTests(t *qatest.T) {
	var calc Calculator

	t.Run("add", func(t *qatest.T) {
		for _, c := range []struct{ a, b, expected float64 }{
			{1, 2, 3},
			{-1, 1, 0},
			{2.5, 0.5, 3},
			{0, 0, 0},
		} {
			assert.Equal(t, c.expected, calc.Add(c.a, c.b), "%v + %v", c.a, c.b)
		}
	})

	t.Run("subtract", func(t *qatest.T) {
		for _, c := range []struct{ a, b, expected float64 }{
			{5, 3, 2},
			{3, 5, -2},
			{-1, -1, 0},
			{0.75, 0.5, 0.25},
		} {
			assert.Equal(t, c.expected, calc.Subtract(c.a, c.b), "%v - %v", c.a, c.b)
		}
	})

	t.Run("multiply", func(t *qatest.T) {
		for _, c := range []struct{ a, b, expected float64 }{
			{3, 4, 12},
			{-3, 4, -12},
			{2.5, 4, 10},
			{100, 0, 0},
		} {
			assert.Equal(t, c.expected, calc.Multiply(c.a, c.b), "%v * %v", c.a, c.b)
		}
	})

	t.Run("divide", func(t *qatest.T) {
		for _, c := range []struct{ a, b, expected float64 }{
			{10, 2, 5},
			{-9, 3, -3},
			{1, 4, 0.25},
			{0, 7, 0},
		} {
			t.Run(fmt.Sprintf("%v by %v", c.a, c.b), func(t *qatest.T) {
				result, err := calc.Divide(c.a, c.b)
				require.NoError(t, err)
				assert.Equal(t, c.expected, result)
			})
		}
	})

	t.Run("divide by zero", func(t *qatest.T) {
		_, err := calc.Divide(5, 0)
		require.Error(t, err)
		assert.EqualError(t, err, "Division by zero is not allowed")
	})

	t.Run("power", func(t *qatest.T) {
		for _, c := range []struct{ base, exponent, expected float64 }{
			{2, 10, 1024},
			{9, 0.5, 3},
			{5, 0, 1},
			{10, -1, 0.1},
		} {
			assert.Equal(t, c.expected, calc.Power(c.base, c.exponent), "%v ** %v", c.base, c.exponent)
		}
	})
}
