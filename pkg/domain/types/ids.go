package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// AgentID identifies an agent (memory bank). All memory, document and
// operation queries are scoped by it.
type AgentID string

// Validate checks if the AgentID is usable as a path component
func (x AgentID) Validate() error {
	return validateID("agent ID", string(x))
}

// String returns the string representation of AgentID
func (x AgentID) String() string {
	return string(x)
}

// DocumentID identifies a stored document within an agent
type DocumentID string

// Validate checks if the DocumentID is usable as a path component
func (x DocumentID) Validate() error {
	return validateID("document ID", string(x))
}

// String returns the string representation of DocumentID
func (x DocumentID) String() string {
	return string(x)
}

// OperationID identifies an asynchronous operation tracked by the server
type OperationID string

// Validate checks if the OperationID is usable as a path component
func (x OperationID) Validate() error {
	return validateID("operation ID", string(x))
}

// String returns the string representation of OperationID
func (x OperationID) String() string {
	return string(x)
}

// UnitID identifies a single memory unit (fact)
type UnitID string

// Validate checks if the UnitID is usable as a path component
func (x UnitID) Validate() error {
	return validateID("memory unit ID", string(x))
}

// String returns the string representation of UnitID
func (x UnitID) String() string {
	return string(x)
}

// DirectiveID identifies a directive within an agent
type DirectiveID string

// Validate checks if the DirectiveID is usable as a path component
func (x DirectiveID) Validate() error {
	return validateID("directive ID", string(x))
}

// String returns the string representation of DirectiveID
func (x DirectiveID) String() string {
	return string(x)
}

// ReflectionID identifies a reflection within an agent
type ReflectionID string

// Validate checks if the ReflectionID is usable as a path component
func (x ReflectionID) Validate() error {
	return validateID("reflection ID", string(x))
}

// String returns the string representation of ReflectionID
func (x ReflectionID) String() string {
	return string(x)
}

// validateID rejects blank identifiers and the dot segments "." and "..".
// Percent-encoding leaves dot segments untouched, so they would move the
// request to another path. Any other character is encoded before it reaches
// the URL path.
func validateID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return goerr.New(kind+" cannot be empty", goerr.V("id", id))
	}
	if id == "." || id == ".." {
		return goerr.New(kind+" cannot be a dot segment", goerr.V("id", id))
	}
	return nil
}
