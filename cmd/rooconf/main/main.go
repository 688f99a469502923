package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/rooconf/cmd/rooconf"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/style"
)

func main() {
	// Ctrl-C cancels a running clone or editor
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := rooconf.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render("Error: "+errors.UserMessage(err)))
		stop()
		os.Exit(1)
	}
}
