// Command ordinatorctl sorts and inspects a game's plugin load order.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ordinator-tools/ordinator/internal/cli"
	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := cli.NewRootCommand()
	root.SetContext(ctx)

	if err := root.Execute(); err != nil {
		ordinatorerrors.Exit(err)
	}
}
