// slotcache-demo: fans out concurrent readers and a writer against a
// Cache and prints its statistics once the run ends.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agilira/slotcache"
)

type snapshot struct {
	Generation int
	UpdatedAt  time.Time
}

func (s snapshot) Clone() snapshot { return s }

func main() {
	var (
		slots      int
		readers    int
		duration   time.Duration
		configPath string
	)

	flags := flag.NewFlagSet("slotcache-demo", flag.ContinueOnError)
	flags.IntVar(&slots, "slots", 4, "slot count, must be a power of two")
	flags.IntVar(&readers, "readers", 8, "number of concurrent reader goroutines")
	flags.DurationVar(&duration, "duration", 2*time.Second, "how long to run")
	flags.StringVar(&configPath, "config", "", "path to a JSONC config file (overrides --slots)")

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "slotcache-demo: building logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	var opts []slotcache.Option
	if configPath != "" {
		cfg, err := slotcache.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "slotcache-demo:", err)
			os.Exit(1)
		}
		slots = cfg.Slots
		opts, err = cfg.Options()
		if err != nil {
			fmt.Fprintln(os.Stderr, "slotcache-demo:", err)
			os.Exit(1)
		}
	}
	opts = append(opts, slotcache.WithLogger(slotcache.NewZapLogger(logger)))

	cache, err := slotcache.New(slots, snapshot{Generation: 0, UpdatedAt: time.Now()}, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "slotcache-demo:", err)
		os.Exit(1)
	}
	defer cache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)

	for i := 0; i < readers; i++ {
		group.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
					_ = cache.Get()
				}
			}
		})
	}

	group.Go(func() error {
		gen := 1
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				cache.Update(snapshot{Generation: gen, UpdatedAt: time.Now()})
				gen++
			}
		}
	})

	_ = group.Wait()

	stats := cache.Stats()
	fmt.Printf("slots=%d writes=%d search_retries=%d published_slot=%d last_generation=%d\n",
		stats.Slots, stats.Writes, stats.SearchRetries, stats.PublishedSlot, cache.Get().Generation)
}
