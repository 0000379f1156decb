// Package main provides a CLI that bakes, samples, stores and plays
// animations defined in TOML files.
//
// Usage:
//
//	animate css    [-name N] file.toml          print the @keyframes rule and element binding
//	animate sample [-duration D] [-step S] [-at P -method M] file.toml
//	animate export [-name N] [-duration D] [-step S] file.toml
//	animate play   file.toml                    stream live matrix3d() frames
//	animate list                                list exported tables
//	animate easings                             list easing names
//
// Process settings come from ANIMATE_* environment variables (see
// internal/config).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
)

var errUsage = errors.New("usage: animate <css|sample|export|play|list|easings> [flags] [file.toml]")

func main() {
	log.SetFlags(0)
	log.SetPrefix("animate: ")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "css":
		return cmdCSS(ctx, rest, out)
	case "sample":
		return cmdSample(rest, out)
	case "export":
		return cmdExport(ctx, rest, out)
	case "play":
		return cmdPlay(ctx, rest, out)
	case "list":
		return cmdList(ctx, out)
	case "easings":
		return cmdEasings(out)
	}
	return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
}
