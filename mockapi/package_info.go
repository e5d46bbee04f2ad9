// Package mockapi contains in-process implementations of the external
// services that the suites talk to: the placeholder REST API and the IP echo
// service.
//
// They serve two purposes. The package tests of webtests run the suites
// against them so suite logic can be verified hermetically, and the
// -mock-services command line flag starts them on loopback listeners so a
// whole run can work without network access. The placeholder dataset mirrors
// the well-known records of the public service, so assertions hold against
// either one.
package mockapi
