package webtests

import (
	"fmt"
	"os"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/webqa-harness/data"
	"github.com/launchdarkly/webqa-harness/framework/qatest"
)

func doDataStoreTests(t *qatest.T) {
	t.Run("json round trip", func(t *qatest.T) {
		store := dataStore(t)
		factory := data.NewProductFactory(sharedFaker(t), "datastore")
		products := []data.Product{factory.NextUnique(), factory.NextUnique(), factory.NextUnique()}

		path, err := store.SaveJSON("products_roundtrip.json", products)
		require.NoError(t, err)
		t.Debug("wrote %s", path)

		var loaded []data.Product
		require.NoError(t, store.LoadJSON("products_roundtrip.json", &loaded))
		assert.Equal(t, products, loaded)
	})

	t.Run("unicode text survives the round trip", func(t *qatest.T) {
		store := dataStore(t)
		original := map[string]string{
			"ascii":    "hello world",
			"cyrillic": "Привет мир",
			"japanese": "こんにちは世界",
			"emoji":    "🚀 ✨",
			"markup":   "a<b & c>d",
		}
		_, err := store.SaveJSON("unicode_roundtrip.json", original)
		require.NoError(t, err)

		var loaded map[string]string
		require.NoError(t, store.LoadJSON("unicode_roundtrip.json", &loaded))
		assert.Equal(t, original, loaded)
	})

	t.Run("csv round trip", func(t *qatest.T) {
		store := dataStore(t)
		factory := data.NewPersonFactory(sharedFaker(t), "datastore")
		var rows []map[string]string
		for i := 0; i < 3; i++ {
			person := factory.NextUnique()
			rows = append(rows, map[string]string{
				"username": person.Username,
				"email":    person.Email,
				"city":     person.Address.City,
			})
		}
		_, err := store.SaveCSV("people_roundtrip.csv", rows)
		require.NoError(t, err)

		loaded, err := store.LoadCSV("people_roundtrip.csv")
		require.NoError(t, err)
		assert.Equal(t, rows, loaded)
	})

	t.Run("transform adds computed fields", func(t *qatest.T) {
		rows := []data.Row{
			{
				"first_name": ldvalue.String("Ada"),
				"last_name":  ldvalue.String("Lovelace"),
				"price":      ldvalue.Float64(19.5),
				"quantity":   ldvalue.Int(2),
			},
			{
				"note": ldvalue.String("no sources here"),
			},
		}
		out := data.Transform(rows)
		require.Len(t, out, 2)
		assert.Equal(t, ldvalue.Float64(39), out[0]["total"])
		assert.Equal(t, ldvalue.String("Ada Lovelace"), out[0]["full_name"])
		_, hasTotal := out[1]["total"]
		assert.False(t, hasTotal, "a row without price and quantity should not get a total")
	})

	t.Run("filter", func(t *qatest.T) {
		rows := []data.Row{
			{"category": ldvalue.String("books"), "in_stock": ldvalue.Bool(true)},
			{"category": ldvalue.String("books"), "in_stock": ldvalue.Bool(false)},
			{"category": ldvalue.String("games"), "in_stock": ldvalue.Bool(true)},
		}
		byCategory := data.Filter(rows, data.Row{"category": ldvalue.String("books")})
		assert.Len(t, byCategory, 2)

		byBoth := data.Filter(rows, data.Row{
			"category": ldvalue.String("books"),
			"in_stock": ldvalue.Bool(true),
		})
		require.Len(t, byBoth, 1)
		assert.Equal(t, rows[0], byBoth[0])
	})

	t.Run("full pipeline", func(t *qatest.T) {
		store := dataStore(t)
		f := sharedFaker(t)

		var rows []data.Row
		for i := 0; i < 6; i++ {
			category := "books"
			if i%2 == 1 {
				category = "games"
			}
			rows = append(rows, data.Row{
				"first_name": ldvalue.String(f.FirstName()),
				"last_name":  ldvalue.String(f.LastName()),
				"price":      ldvalue.Float64(float64(10 + i)),
				"quantity":   ldvalue.Int(i + 1),
				"category":   ldvalue.String(category),
			})
		}

		transformed := data.Transform(rows)
		filtered := data.Filter(transformed, data.Row{"category": ldvalue.String("books")})
		require.Len(t, filtered, 3)

		_, err := store.SaveJSON("pipeline.json", filtered)
		require.NoError(t, err)

		var csvRows []map[string]string
		for _, row := range filtered {
			csvRows = append(csvRows, map[string]string{
				"full_name": row["full_name"].StringValue(),
				"total":     fmt.Sprintf("%.2f", row["total"].Float64Value()),
			})
		}
		_, err = store.SaveCSV("pipeline.csv", csvRows)
		require.NoError(t, err)

		var loadedJSON []data.Row
		require.NoError(t, store.LoadJSON("pipeline.json", &loadedJSON))
		loadedCSV, err := store.LoadCSV("pipeline.csv")
		require.NoError(t, err)

		require.Len(t, loadedJSON, len(loadedCSV))
		for i := range loadedJSON {
			assert.Equal(t, loadedJSON[i]["full_name"].StringValue(), loadedCSV[i]["full_name"])
			assert.Equal(t, fmt.Sprintf("%.2f", loadedJSON[i]["total"].Float64Value()), loadedCSV[i]["total"])
		}
	})

	t.Run("empty input", func(t *qatest.T) {
		assert.Empty(t, data.Transform(nil))
		assert.Empty(t, data.Filter(nil, data.Row{"any": ldvalue.String("x")}))

		_, err := dataStore(t).SaveCSV("empty.csv", nil)
		require.Error(t, err)
	})

	t.Run("malformed json file", func(t *qatest.T) {
		store := dataStore(t)
		require.NoError(t, os.WriteFile(store.Path("broken.json"), []byte("{ invalid json }"), 0600))

		var target map[string]interface{}
		err := store.LoadJSON("broken.json", &target)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed JSON")
		assert.Nil(t, target, "a malformed file should not modify the target")
	})
}
