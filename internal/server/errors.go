package server

import "errors"

// errNoHTTPHandler is returned by NewServer when handlers carry no HTTP
// router to serve.
var errNoHTTPHandler = errors.New("server needs an http handler")
