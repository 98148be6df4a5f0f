package memora

import (
	"context"
	"fmt"
	"strings"
)

// writeTrace emits one trace block. Blocks from concurrent calls never
// interleave.
func (c *Client) writeTrace(ctx context.Context, text string) {
	c.trace.WriteString(ctx, text)
}

func (c *Client) traceRequest(ctx context.Context, x *exchange) {
	var b strings.Builder
	fmt.Fprintf(&b, "Request URL: %s %s\n", x.method, x.url)
	if x.prettyBody != "" {
		fmt.Fprintf(&b, "Request body:\n%s\n", x.prettyBody)
	}
	c.writeTrace(ctx, b.String())
}

func (c *Client) traceResponse(ctx context.Context, status, body string, success bool) {
	var b strings.Builder
	fmt.Fprintf(&b, "Response status: %s\n", status)
	if success {
		fmt.Fprintf(&b, "Response body:\n%s\n", body)
	} else {
		fmt.Fprintf(&b, "Error response body:\n%s\n", body)
	}
	c.writeTrace(ctx, b.String())
}

func (c *Client) traceFailure(ctx context.Context, verbose bool, err *APIError) {
	if !verbose {
		return
	}
	c.writeTrace(ctx, fmt.Sprintf("Request failed: %s\n", err.cause.Error()))
}

func (c *Client) traceRejection(ctx context.Context, err *APIError) {
	c.writeTrace(ctx, fmt.Sprintf("Request rejected: %s\n", err.cause.Error()))
}
