package data

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// Row is one record of loosely typed data, as loaded from a JSON file.
type Row = map[string]ldvalue.Value

// Transform returns a copy of rows with computed fields added where their
// sources are present: "total" is price times quantity when both are numbers,
// and "full_name" joins first_name and last_name when both are strings. Rows
// missing the source fields are copied unchanged.
func Transform(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		copied := make(Row, len(row)+2)
		for k, v := range row {
			copied[k] = v
		}
		if row["price"].IsNumber() && row["quantity"].IsNumber() {
			copied["total"] = ldvalue.Float64(row["price"].Float64Value() * row["quantity"].Float64Value())
		}
		if row["first_name"].Type() == ldvalue.StringType && row["last_name"].Type() == ldvalue.StringType {
			copied["full_name"] = ldvalue.String(row["first_name"].StringValue() + " " + row["last_name"].StringValue())
		}
		out = append(out, copied)
	}
	return out
}

// Filter returns the rows whose values are equal to every criterion.
func Filter(rows []Row, criteria Row) []Row {
	var out []Row
	for _, row := range rows {
		matches := true
		for key, want := range criteria {
			if !row[key].Equal(want) {
				matches = false
				break
			}
		}
		if matches {
			out = append(out, row)
		}
	}
	return out
}
