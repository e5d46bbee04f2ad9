package helpers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestRecorder(t *testing.T) {
	t.Run("Errorf accumulates formatted messages", func(t *testing.T) {
		var tr TestRecorder
		tr.Errorf("expected %d rows", 10)
		tr.Errorf("store was empty")
		assert.Equal(t, []string{"expected 10 rows", "store was empty"}, tr.Errors)
		assert.False(t, tr.Terminated)
	})

	t.Run("FailNow terminates and optionally panics", func(t *testing.T) {
		var quiet TestRecorder
		quiet.FailNow()
		assert.True(t, quiet.Terminated)

		strict := TestRecorder{PanicOnTerminate: true}
		assert.PanicsWithValue(t, &strict, func() { strict.FailNow() })
		assert.True(t, strict.Terminated)
	})

	t.Run("Err combines all messages", func(t *testing.T) {
		var tr TestRecorder
		assert.Nil(t, tr.Err())

		tr.Errorf("expected %d rows", 10)
		tr.Errorf("store was empty")
		assert.Equal(t, errors.New("expected 10 rows, store was empty"), tr.Err())
	})
}
