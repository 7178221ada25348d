// Package server runs the REST service of the job-alerts backend: it starts
// the HTTP listener and shuts it down gracefully on SIGINT, SIGTERM or
// SIGQUIT.
package server
