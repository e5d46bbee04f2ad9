package data

import (
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformAddsTotal(t *testing.T) {
	rows := []Row{
		{"price": ldvalue.Float64(2.5), "quantity": ldvalue.Int(4)},
		{"price": ldvalue.Float64(10)},
		{"note": ldvalue.String("no numbers here")},
	}
	out := Transform(rows)
	require.Len(t, out, 3)

	assert.Equal(t, ldvalue.Float64(10), out[0]["total"])

	_, hasTotal := out[1]["total"]
	assert.False(t, hasTotal)
	_, hasTotal = out[2]["total"]
	assert.False(t, hasTotal)

	// the input rows are not modified
	_, hasTotal = rows[0]["total"]
	assert.False(t, hasTotal)
}

func TestTransformAddsFullName(t *testing.T) {
	rows := []Row{
		{"first_name": ldvalue.String("Ada"), "last_name": ldvalue.String("Lovelace")},
		{"first_name": ldvalue.String("Prince")},
		{"first_name": ldvalue.Int(1), "last_name": ldvalue.String("Lovelace")},
	}
	out := Transform(rows)

	assert.Equal(t, ldvalue.String("Ada Lovelace"), out[0]["full_name"])

	_, hasName := out[1]["full_name"]
	assert.False(t, hasName)
	_, hasName = out[2]["full_name"]
	assert.False(t, hasName)
}

func TestFilter(t *testing.T) {
	rows := []Row{
		{"category": ldvalue.String("books"), "stock": ldvalue.Int(3)},
		{"category": ldvalue.String("books"), "stock": ldvalue.Int(0)},
		{"category": ldvalue.String("games"), "stock": ldvalue.Int(3)},
	}

	t.Run("single criterion", func(t *testing.T) {
		out := Filter(rows, Row{"category": ldvalue.String("books")})
		assert.Len(t, out, 2)
	})

	t.Run("multiple criteria must all match", func(t *testing.T) {
		out := Filter(rows, Row{"category": ldvalue.String("books"), "stock": ldvalue.Int(3)})
		require.Len(t, out, 1)
		assert.Equal(t, rows[0], out[0])
	})

	t.Run("no criteria matches everything", func(t *testing.T) {
		assert.Len(t, Filter(rows, nil), 3)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Filter(rows, Row{"category": ldvalue.String("tools")}))
	})
}
