// Command assetgen downloads the free/open source textures, generates the
// hero-transition runtime assets and verifies the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// exitCode is returned by commands that must end the process with a specific
// status.
type exitCode int

func (c exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(c))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()

	var code exitCode
	switch {
	case err == nil:
	case errors.As(err, &code):
		os.Exit(int(code))
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
