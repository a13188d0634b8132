// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chessground builds the node tree of a chess board from a
// configuration and writes it out as a standalone HTML document.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"cogentcore.org/chessground/logx"
)

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "chessground:", err)
		os.Exit(2)
	}
	logx.UserLevel = logx.LevelFromFlags(opts.vv, opts.verbose, opts.quiet)
	logx.SetDefaultLogger()
	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "chessground:", err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	p, err := newPreviewer(opts)
	if err != nil {
		return err
	}
	if err := p.render(); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return p.watchFiles(ctx)
}
