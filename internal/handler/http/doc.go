// Package http is the REST surface of the job-alerts server.
//
// It wires chi routes for signup, login, notifications and the user profile
// and the middleware chain in front of them: trace ids, access logging,
// gzip and bearer token authentication. Handlers decode requests, call the
// service layer and translate its errors into {"message": "..."} bodies.
package http
