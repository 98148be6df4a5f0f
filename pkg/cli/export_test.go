package cli

import (
	"context"
	"io"
)

// RunForTest runs the command line with the given streams
func RunForTest(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	return newApp("test", stdin, stdout, stderr).run(ctx, args)
}

// ReportOptions exposes the error reporting options for testing
var ReportOptions = reportOptions
