// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fiber mounts declarative scene documents into a retained
// scene graph and shows the resulting tree.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/fiber/cmd/fiber/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.NewRoot().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
