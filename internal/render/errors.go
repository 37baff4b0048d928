package render

import "errors"

var (
	ErrParseTemplate = errors.New("invalid template")
	ErrRender        = errors.New("template rendering failed")
)
