package memora

import (
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
)

// ErrorKind classifies how a call failed
type ErrorKind int

const (
	// KindTransport: the request was not sent or no response arrived
	// (DNS, connection, timeout). No status or body is available.
	KindTransport ErrorKind = iota + 1
	// KindStatus: a response arrived with a status outside 200-299
	KindStatus
	// KindDecode: the status was a success but the body does not match the
	// expected shape, including discriminated payloads matching no variant
	KindDecode
	// KindRemote: the body decoded into a payload that reports a failure,
	// such as the error variant of the agents listing
	KindRemote
	// KindValidation: the caller's input was rejected before any request
	KindValidation
)

// String returns the string representation of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindRemote:
		return "remote"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Sentinel errors matched by errors.Is against an *APIError of the same kind
var (
	ErrTransport  = goerr.New("failed to reach memory service")
	ErrStatus     = goerr.New("memory service returned error status")
	ErrDecode     = goerr.New("failed to parse memory service response")
	ErrRemote     = goerr.New("memory service reported failure")
	ErrValidation = goerr.New("invalid request")
)

var kindSentinels = map[ErrorKind]error{
	KindTransport:  ErrTransport,
	KindStatus:     ErrStatus,
	KindDecode:     ErrDecode,
	KindRemote:     ErrRemote,
	KindValidation: ErrValidation,
}

// Context keys for error values
const (
	OperationKey    = "operation"
	MethodKey       = "method"
	URLKey          = "url"
	RequestBodyKey  = "request_body"
	RequestIDKey    = "request_id"
	StatusKey       = "status"
	ResponseBodyKey = "response_body"
)

// APIError is the diagnostic value returned by every failing client call. It
// keeps enough context to debug the call without re-running it. Status and
// ResponseBody are nil when no response was received.
type APIError struct {
	Kind         ErrorKind
	Operation    Operation
	Method       string
	URL          string
	RequestBody  string
	RequestID    string
	Status       *int
	ResponseBody *string
	// Message is the failure text reported by the server, for KindRemote
	Message string

	cause error
}

// Error returns a one line description with the operation and cause chain
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, e.causeText())
}

func (e *APIError) causeText() string {
	if e.cause == nil {
		return e.Kind.String() + " error"
	}
	return e.cause.Error()
}

// Unwrap returns the cause chain
func (e *APIError) Unwrap() error {
	return e.cause
}

// Is matches the sentinel of the error's kind
func (e *APIError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// StatusCode returns the response status if a response was received
func (e *APIError) StatusCode() (int, bool) {
	if e.Status == nil {
		return 0, false
	}
	return *e.Status, true
}

// Body returns the raw response body if a response was received
func (e *APIError) Body() (string, bool) {
	if e.ResponseBody == nil {
		return "", false
	}
	return *e.ResponseBody, true
}

// LogValue implements slog.LogValuer
func (e *APIError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", e.Kind.String()),
		slog.String(OperationKey, e.Operation.String()),
		slog.String(MethodKey, e.Method),
		slog.String(URLKey, e.URL),
		slog.String(RequestIDKey, e.RequestID),
	}
	if e.RequestBody != "" {
		attrs = append(attrs, slog.String(RequestBodyKey, e.RequestBody))
	}
	if e.Status != nil {
		attrs = append(attrs, slog.Int(StatusKey, *e.Status))
	}
	if e.ResponseBody != nil {
		attrs = append(attrs, slog.String(ResponseBodyKey, *e.ResponseBody))
	}
	if e.Message != "" {
		attrs = append(attrs, slog.String("message", e.Message))
	}
	attrs = append(attrs, slog.String("cause", e.causeText()))
	return slog.GroupValue(attrs...)
}
