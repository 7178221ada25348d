// Package form holds the controllers behind the client's input screens.
//
// A controller owns the submission [State] of one form and performs its
// submit against the client services. Controllers know nothing about the
// terminal: screens snapshot their inputs into plain values and call Submit
// off the UI loop. A second Submit while one is in flight fails with
// [ErrSubmitting].
package form
