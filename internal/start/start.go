// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package start

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// StartFunc is a long-running task: it blocks until ctx is canceled or it
// fails on its own, returning the error (if any) that ended it.
type StartFunc func(ctx context.Context) error

// Start runs run until interrupted (SIGINT), then cancels run's context and
// waits up to stopTimeout for it to return before giving up regardless. If
// reload is non-nil, a SIGHUP delivered while run is active invokes reload
// without stopping run — cmd/avrorecordctl's serve subcommand wires this to
// service/config.Run, so an operator can push a new TOML config file onto a
// running process without a restart.
func Start(ctx context.Context, stopTimeout time.Duration, run StartFunc, reload func()) error {
	notifyStop := make(chan os.Signal, 3)
	signal.Notify(notifyStop, os.Interrupt)
	defer signal.Stop(notifyStop)

	var notifyReload chan os.Signal
	if reload != nil {
		notifyReload = make(chan os.Signal, 3)
		signal.Notify(notifyReload, syscall.SIGHUP)
		defer signal.Stop(notifyReload)
	}

	ctx, cancel := context.WithCancel(ctx)
	once := &sync.Once{}
	fin := make(chan bool)
	unlockOnce := func() {
		once.Do(func() { close(fin) })
	}
	runErr := atomic.Value{}
	go func() {
		err := run(ctx)
		if err != nil {
			runErr.Store(err)
		}
		unlockOnce()
	}()

waitForStop:
	for {
		select {
		case <-notifyStop:
			break waitForStop
		case <-fin:
			break waitForStop
		case <-notifyReload:
			reload()
		}
	}

	cancel()
	go func() {
		<-time.After(stopTimeout)
		unlockOnce()
	}()
	<-fin
	if err, ok := runErr.Load().(error); ok {
		return err
	}
	return nil
}

// RunAll runs every run concurrently under one cancellation scope: if any
// fails, the rest observe ctx canceled via their own context argument.
func RunAll(ctx context.Context, runs ...func(ctx context.Context) error) error {
	group, ctx := errgroup.WithContext(ctx)
	for _, run := range runs {
		run := run
		group.Go(func() error { return run(ctx) })
	}

	return group.Wait()
}
