package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/service/memora"
)

// errorReport is the JSON form of a failed command
type errorReport struct {
	Error        string         `json:"error"`
	Kind         string         `json:"kind,omitempty"`
	Operation    string         `json:"operation,omitempty"`
	Method       string         `json:"method,omitempty"`
	URL          string         `json:"url,omitempty"`
	RequestID    string         `json:"request_id,omitempty"`
	RequestBody  string         `json:"request_body,omitempty"`
	Status       *int           `json:"status,omitempty"`
	ResponseBody *string        `json:"response_body,omitempty"`
	Message      string         `json:"message,omitempty"`
	Values       map[string]any `json:"values,omitempty"`
}

func newErrorReport(err error) errorReport {
	report := errorReport{Error: err.Error()}

	var apiErr *memora.APIError
	if errors.As(err, &apiErr) {
		report.Kind = apiErr.Kind.String()
		report.Operation = apiErr.Operation.String()
		report.Method = apiErr.Method
		report.URL = apiErr.URL
		report.RequestID = apiErr.RequestID
		report.RequestBody = apiErr.RequestBody
		report.Status = apiErr.Status
		report.ResponseBody = apiErr.ResponseBody
		report.Message = apiErr.Message
		return report
	}

	if ge := goerr.Unwrap(err); ge != nil {
		if values := ge.Values(); len(values) > 0 {
			report.Values = values
		}
	}
	return report
}

// Error writes a failed command's diagnostics. Request bodies are shown in
// pretty mode only when verbose is set.
func (r *Renderer) Error(err error, verbose bool) error {
	if err == nil {
		return nil
	}
	report := newErrorReport(err)

	if r.IsJSON() {
		return r.JSON(report)
	}

	p := r.printer()
	p.printf("%s %s\n", errColor.Sprint("Error:"), report.Error)

	if report.Operation != "" {
		p.field("operation", fmt.Sprintf("%s (%s)", report.Operation, report.Kind))
		p.field("request", report.Method+" "+report.URL)
		p.field("request id", report.RequestID)
		if verbose && report.RequestBody != "" {
			p.field("request body", "\n"+indent(report.RequestBody, "    "))
		}
		if report.Status != nil {
			p.field("status", *report.Status)
		}
		if report.ResponseBody != nil {
			p.field("response body", *report.ResponseBody)
		}
		if report.Message != "" {
			p.field("message", report.Message)
		}
	}

	for _, k := range sortedKeys(report.Values) {
		p.field(k, report.Values[k])
	}

	return p.done()
}

// Writer returns the destination of the renderer
func (r *Renderer) Writer() io.Writer {
	return r.w
}
