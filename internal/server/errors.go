package server

import "errors"

var errNoHTTPHandler = errors.New("server needs an HTTP handler and a listen address")
