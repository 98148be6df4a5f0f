package memora

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/utils/logging"
	"github.com/secmon-lab/memora/pkg/utils/safe"
)

// call describes one request before it is built
type call struct {
	op       Operation
	segments []string
	query    url.Values
	body     any
}

// exchange records what was sent and received during one call. It is the
// single place diagnostic errors are built from.
type exchange struct {
	op           Operation
	method       string
	url          string
	requestID    string
	requestBody  []byte
	prettyBody   string
	status       *int
	responseBody *string
}

// fail builds an *APIError from the exchange. When cause is nil a new root
// error is created with msg.
func (x *exchange) fail(kind ErrorKind, cause error, msg string) *APIError {
	opts := []goerr.Option{
		goerr.V(OperationKey, x.op.String()),
		goerr.V(MethodKey, x.method),
		goerr.V(URLKey, x.url),
		goerr.V(RequestIDKey, x.requestID),
	}
	if len(x.requestBody) > 0 {
		opts = append(opts, goerr.V(RequestBodyKey, string(x.requestBody)))
	}
	if x.status != nil {
		opts = append(opts, goerr.V(StatusKey, *x.status))
	}
	if x.responseBody != nil {
		opts = append(opts, goerr.V(ResponseBodyKey, *x.responseBody))
	}

	var wrapped error
	if cause == nil {
		wrapped = goerr.New(msg, opts...)
	} else {
		wrapped = goerr.Wrap(cause, msg, opts...)
	}

	return &APIError{
		Kind:         kind,
		Operation:    x.op,
		Method:       x.method,
		URL:          x.url,
		RequestBody:  string(x.requestBody),
		RequestID:    x.requestID,
		Status:       x.status,
		ResponseBody: x.responseBody,
		cause:        wrapped,
	}
}

// prepare resolves the URL and serializes the body without touching the
// network.
func (c *Client) prepare(rc call) (*exchange, error) {
	x := &exchange{
		op:        rc.op,
		method:    rc.op.Method(),
		url:       c.resolve(rc.segments, rc.query),
		requestID: uuid.NewString(),
	}

	if rc.body == nil {
		return x, nil
	}

	data, err := json.Marshal(rc.body)
	if err != nil {
		return x, x.fail(KindValidation, err, "failed to serialize request body")
	}
	x.requestBody = data

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err == nil {
		x.prettyBody = pretty.String()
	} else {
		x.prettyBody = string(data)
	}

	return x, nil
}

// do sends one request and classifies the outcome as transport failure, non
// success status, or success. On success the raw body is returned for the
// caller to decode. When verbose, the exchange is echoed to the trace writer
// on every path.
func (c *Client) do(ctx context.Context, rc call, verbose bool) (*exchange, []byte, error) {
	x, err := c.prepare(rc)
	if err != nil {
		return x, nil, err
	}
	return c.send(ctx, x, verbose)
}

func (c *Client) send(ctx context.Context, x *exchange, verbose bool) (*exchange, []byte, error) {
	if verbose {
		c.traceRequest(ctx, x)
	}

	budget := c.timeout(x.op)
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	var body io.Reader
	if x.requestBody != nil {
		body = bytes.NewReader(x.requestBody)
	}

	req, err := http.NewRequestWithContext(ctx, x.method, x.url, body)
	if err != nil {
		apiErr := x.fail(KindTransport, err, "failed to build request")
		c.traceFailure(ctx, verbose, apiErr)
		return x, nil, apiErr
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", x.requestID)
	if x.requestBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	logging.From(ctx).Debug("sending request",
		"operation", x.op,
		"method", x.method,
		"url", x.url,
		"request_id", x.requestID,
		"timeout", budget,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		msg := "request failed"
		if errors.Is(err, context.DeadlineExceeded) {
			msg = fmt.Sprintf("request timed out after %s", budget)
		}
		apiErr := x.fail(KindTransport, err, msg)
		c.traceFailure(ctx, verbose, apiErr)
		return x, nil, apiErr
	}
	defer safe.Close(ctx, resp.Body)

	status := resp.StatusCode
	x.status = &status

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := x.fail(KindTransport, err, "failed to read response body")
		c.traceFailure(ctx, verbose, apiErr)
		return x, nil, apiErr
	}
	text := string(data)
	x.responseBody = &text

	success := status >= 200 && status < 300
	if verbose {
		c.traceResponse(ctx, resp.Status, text, success)
	}

	if !success {
		return x, nil, x.fail(KindStatus, nil, fmt.Sprintf("API returned error status %d: %s", status, text))
	}

	return x, data, nil
}

// decodeInto unmarshals data into a new T, reporting a decode failure with
// the exchange's context.
func decodeInto[T any](x *exchange, data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, x.fail(KindDecode, err, "failed to parse API response")
	}
	return &out, nil
}

// invoke runs a call and decodes its response into T
func invoke[T any](ctx context.Context, c *Client, rc call, verbose bool) (*T, error) {
	x, data, err := c.do(ctx, rc, verbose)
	if err != nil {
		return nil, err
	}
	return decodeInto[T](x, data)
}

// reject reports invalid caller input without sending anything. When
// verbose, the request that would have been sent is echoed with the reason.
func (c *Client) reject(ctx context.Context, rc call, verbose bool, cause error, msg string) error {
	x, err := c.prepare(rc)
	if err != nil {
		return err
	}
	apiErr := x.fail(KindValidation, cause, msg)
	if verbose {
		c.traceRequest(ctx, x)
		c.traceRejection(ctx, apiErr)
	}
	return apiErr
}
