// Package data provides the fake data generators and the file-backed data
// store that the suites exercise.
//
// Faker is a seeded source of fake values; the factories layer the harness's
// uniqueness convention (prefix plus counter) on top of it so concurrent or
// repeated runs can tell their own records apart. Store handles JSON and CSV
// files under the workspace data directory, and the Transform/Filter
// functions are the row-level operations the integration suite verifies.
package data
