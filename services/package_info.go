// Package services contains clients for the external HTTP services that the
// test suites exercise.
//
// RESTClient is the low-level piece: one shared http.Client with the
// configured timeout and base URL, JSON default headers, and per-request
// logging. PlaceholderAPI and IPEcho are typed surfaces built on top of it
// for the two services the suites talk to.
package services
