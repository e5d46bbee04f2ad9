// Package qatest is a test runner framework in the shape of Go's testing
// package, driven as regular application code instead of by go test. Beyond
// the testing.T basics it adds test filtering, pluggable result logging, and
// an accumulated results summary for the whole run.
package qatest
