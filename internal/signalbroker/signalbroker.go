// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker listens for OS termination signals. Dispatched
// subprocesses are detached and never cancelled from here; the watchdog
// only stops the tool's own registry work.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/adhoc/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New creates a channel notified on signals that should terminate the process.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Watch cancels the context on the first termination signal received.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	sig, ok := <-sigCh
	if !ok {
		return
	}

	ctxlog.Logger(ctx).Info("watchdog", "detail", "received signal, stopping", "signal", sig.String())
	cancel()
}
