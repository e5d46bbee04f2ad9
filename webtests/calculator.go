package webtests

import (
	"errors"
	"math"
)

// ErrDivisionByZero is the exact error the calculator reports for a zero divisor.
var ErrDivisionByZero = errors.New("Division by zero is not allowed")

// Calculator is the arithmetic component the unit suite exercises. It exists to
// give the harness a suite with no external collaborators at all.
type Calculator struct{}

func (c Calculator) Add(a, b float64) float64 { return a + b }

func (c Calculator) Subtract(a, b float64) float64 { return a - b }

func (c Calculator) Multiply(a, b float64) float64 { return a * b }

func (c Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func (c Calculator) Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}
