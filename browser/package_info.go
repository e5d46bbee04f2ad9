// Package browser drives a Chrome instance through the DevTools protocol for
// the UI test suites.
//
// Browser is the per-test fixture: one browser process whose every operation
// is bounded by the configured timeout. Page layers artifact capture on top,
// writing screenshots into the workspace reports directory. Only Chrome can
// be launched; configurations naming another browser are rejected at launch
// time rather than at configuration load time, so non-UI suites can still run
// with such a configuration.
package browser
