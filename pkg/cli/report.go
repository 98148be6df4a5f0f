package cli

import (
	"context"
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/secmon-lab/memora/pkg/cli/render"
	"github.com/secmon-lab/memora/pkg/service/memora"
	"github.com/secmon-lab/memora/pkg/utils/errutil"
	"github.com/secmon-lab/memora/pkg/utils/logging"
)

func (a *app) report(ctx context.Context, err error) {
	_ = errutil.Handle(ctx, err, "failed to run memora", reportOptions(err)...)

	r := render.New(a.stderr, render.Format(a.clientCfg.Output()))
	if rerr := r.Error(err, a.clientCfg.Verbose()); rerr != nil {
		logging.Default().Warn("failed to render error", "error", rerr)
	}
}

// reportOptions attaches the request context of an *memora.APIError to the
// log line and the Sentry event. Input validation failures are logged only.
func reportOptions(err error) []errutil.Option {
	var apiErr *memora.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	opts := []errutil.Option{
		errutil.WithAttrs("api", apiErr),
		errutil.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("operation", apiErr.Operation.String())
			scope.SetTag("kind", apiErr.Kind.String())
			detail := sentry.Context{
				"method":     apiErr.Method,
				"url":        apiErr.URL,
				"request_id": apiErr.RequestID,
			}
			if status, ok := apiErr.StatusCode(); ok {
				detail["status"] = status
			}
			scope.SetContext("memora", detail)
		}),
	}
	if apiErr.Kind == memora.KindValidation {
		opts = append(opts, errutil.WithoutReport())
	}
	return opts
}
