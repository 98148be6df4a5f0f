package types

// OperationStatus is the lifecycle state of a server-side operation. It is an
// open set: the client never rejects a status it does not recognize.
type OperationStatus string

const (
	OperationStatusPending   OperationStatus = "pending"
	OperationStatusCompleted OperationStatus = "completed"
	OperationStatusFailed    OperationStatus = "failed"
)

// IsTerminal reports whether the status is known to be final
func (s OperationStatus) IsTerminal() bool {
	switch s {
	case OperationStatusCompleted, OperationStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the operation status
func (s OperationStatus) String() string {
	return string(s)
}
