// Package webtests contains the test suites that the harness runs against the
// web services and pages under test.
//
// Suites in this package use other packages as follows:
//
// qatest: the basic test scope framework
//
// fixtures: scoped construction and teardown of shared test resources
//
// services: typed REST clients for the placeholder and IP echo services
//
// browser: Chrome automation and the page wrapper
//
// data: fake data generators, transformations, and the file-backed data store
package webtests
