// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package mapper

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of elements per work unit when
// Options.ChunkSize is not set.
const DefaultChunkSize = 4096

// Options controls MapConcurrent.
type Options struct {
	// Workers bounds the number of goroutines. Values <= 1 map the chunks
	// sequentially on the calling goroutine.
	Workers int

	// ChunkSize is the number of contiguous elements handed to a worker.
	// Defaults to DefaultChunkSize.
	ChunkSize int

	// Progress, if set, is called with the element count of each finished
	// chunk. It may be called from several goroutines at once.
	Progress func(done int)
}

// MapConcurrent is the parallel form of Map. The index range is split into
// contiguous chunks, and each chunk is mapped by exactly one worker, so
// every destination index is written once with no locking.
//
// Validation matches Map and happens before any write. Cancellation is
// checked between chunks; when ctx is done the context error is returned
// and destination contents are unspecified.
func MapConcurrent(ctx context.Context, source, destination []int, fn Transformer, opts Options) error {
	start := time.Now()
	if err := validate(source, destination, fn); err != nil {
		return err
	}

	chunk := opts.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}

	if opts.Workers <= 1 {
		for lo := 0; lo < len(source); lo += chunk {
			if err := ctx.Err(); err != nil {
				recordError(reasonCanceled)
				return err
			}
			hi := min(lo+chunk, len(source))
			mapRange(source, destination, fn, lo, hi)
			report(opts.Progress, hi-lo)
		}
		recordCall(len(source), time.Since(start))
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for lo := 0; lo < len(source); lo += chunk {
		if gctx.Err() != nil {
			break
		}
		lo, hi := lo, min(lo+chunk, len(source))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			mapRange(source, destination, fn, lo, hi)
			report(opts.Progress, hi-lo)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		recordError(reasonCanceled)
		return err
	}
	// The dispatch loop may stop early without any worker observing the
	// cancellation.
	if err := ctx.Err(); err != nil {
		recordError(reasonCanceled)
		return err
	}

	recordCall(len(source), time.Since(start))
	return nil
}

func mapRange(source, destination []int, fn Transformer, lo, hi int) {
	for i := lo; i < hi; i++ {
		destination[i] = fn.Transform(source[i])
	}
}

func report(progress func(int), n int) {
	if progress != nil && n > 0 {
		progress(n)
	}
}
