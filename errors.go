package gapi

import "errors"

var (
	ErrNilWindow      = errors.New("gapi: window is nil")
	ErrNotInitialized = errors.New("gapi: api not initialized")
	ErrEmptyLayout    = errors.New("gapi: vertex buffer has no layout")
	ErrBufferOverflow = errors.New("gapi: data exceeds buffer size")

	ErrNoStages       = errors.New("gapi: shader source has no #type directive")
	ErrUnknownStage   = errors.New("gapi: unknown shader stage")
	ErrDuplicateStage = errors.New("gapi: shader stage declared twice")
	ErrMissingNewline = errors.New("gapi: #type directive is not terminated by a newline")

	ErrNilShader      = errors.New("gapi: shader is nil")
	ErrUnnamedShader  = errors.New("gapi: shader has no name")
	ErrShaderExists   = errors.New("gapi: shader already exists")
	ErrShaderNotFound = errors.New("gapi: shader not found")
)
