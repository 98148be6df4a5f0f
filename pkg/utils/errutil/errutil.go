package errutil

import (
	"context"
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/utils/logging"
)

type options struct {
	attrs    []any
	scopes   []func(*sentry.Scope)
	noReport bool
}

// Option customizes how Handle logs and reports one error
type Option func(*options)

// WithAttrs adds key-value pairs to the diagnostic log line
func WithAttrs(args ...any) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, args...)
	}
}

// WithScope decorates the Sentry scope the error is captured in
func WithScope(f func(*sentry.Scope)) Option {
	return func(o *options) {
		o.scopes = append(o.scopes, f)
	}
}

// WithoutReport logs the error but keeps it out of Sentry
func WithoutReport() Option {
	return func(o *options) {
		o.noReport = true
	}
}

// Handle logs the error's diagnostics at debug level and reports it to Sentry
// when a client is configured. The user-facing message is rendered by the
// caller. The error is returned as-is.
func Handle(ctx context.Context, err error, msg string, opts ...Option) error {
	if err == nil {
		return nil
	}

	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	args := []any{"error", err.Error()}
	var ge *goerr.Error
	if errors.As(err, &ge) {
		args = append(args, "values", ge.Values(), "stack", ge.Stacks())
	}
	args = append(args, cfg.attrs...)
	logging.From(ctx).Debug(msg, args...)

	if !cfg.noReport {
		report(err, cfg.scopes)
	}
	return err
}

func report(err error, scopes []func(*sentry.Scope)) {
	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		for _, f := range scopes {
			f(scope)
		}
		hub.CaptureException(err)
	})
}
