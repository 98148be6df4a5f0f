package model

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

var jsonNull = []byte("null")

// requireFields fails when data is not a JSON object or when any of keys is
// absent or null. encoding/json silently zero-fills missing fields, so strict
// response types call this before decoding.
func requireFields(data []byte, typeName string, keys ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return goerr.Wrap(ErrNotObject, err.Error(), goerr.V(TypeKey, typeName))
	}
	if raw == nil {
		return goerr.Wrap(ErrNotObject, "payload is null", goerr.V(TypeKey, typeName))
	}

	for _, key := range keys {
		v, ok := raw[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), jsonNull) {
			return goerr.Wrap(ErrMissingField, "required field not provided",
				goerr.V(TypeKey, typeName),
				goerr.V(FieldKey, key))
		}
	}
	return nil
}

// decodeStrict checks required keys and then decodes data into dst, which
// must be a pointer to a type without its own UnmarshalJSON method.
func decodeStrict(data []byte, dst any, typeName string, keys ...string) error {
	if err := requireFields(data, typeName, keys...); err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return goerr.Wrap(err, "failed to decode", goerr.V(TypeKey, typeName))
	}
	return nil
}
