package model

import "github.com/m-mizutani/goerr/v2"

// Decoding and validation errors
var (
	ErrMissingField         = goerr.New("required field is missing")
	ErrNotObject            = goerr.New("payload is not a JSON object")
	ErrUnknownResponseShape = goerr.New("response matches no known shape")
	ErrNoFieldsToUpdate     = goerr.New("at least one field must be provided")
)

// Context keys for error values
const (
	TypeKey     = "type"
	FieldKey    = "field"
	ShapeKey    = "shape"
	EndpointKey = "endpoint"
)
