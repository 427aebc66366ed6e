// slotcache-repl: an interactive readline-style shell for poking at a
// Cache[string] from a terminal: read, write, and inspect stats.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/agilira/slotcache"
)

type stringValue string

func (s stringValue) Clone() stringValue { return s }

type repl struct {
	cache *slotcache.Cache[stringValue]
	liner *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slotcache_repl_history")
}

func (r *repl) run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f) //nolint:errcheck
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile()); err == nil {
			r.liner.WriteHistory(f) //nolint:errcheck
			f.Close()
		}
	}()

	fmt.Println("slotcache-repl - type 'help' for commands")

	for {
		line, err := r.liner.Prompt("slotcache> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			fmt.Println("get                show the current value")
			fmt.Println("set <value>        publish a new value")
			fmt.Println("stats              show cache statistics")
			fmt.Println("exit, quit, q      leave the shell")
		case "get":
			fmt.Println(string(r.cache.Get()))
		case "set":
			if len(args) == 0 {
				fmt.Println("usage: set <value>")
				continue
			}
			r.cache.Update(stringValue(strings.Join(args, " ")))
		case "stats":
			s := r.cache.Stats()
			fmt.Printf("slots=%d writes=%d search_retries=%d published_slot=%d\n",
				s.Slots, s.Writes, s.SearchRetries, s.PublishedSlot)
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			return nil
		default:
			fmt.Printf("unknown command %q, type 'help'\n", cmd)
		}
	}
}

func main() {
	var (
		slots      int
		configPath string
	)

	flags := flag.NewFlagSet("slotcache-repl", flag.ContinueOnError)
	flags.IntVar(&slots, "slots", 4, "slot count, must be a power of two")
	flags.StringVar(&configPath, "config", "", "path to a JSONC config file (overrides --slots)")
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	var opts []slotcache.Option
	if configPath != "" {
		cfg, err := slotcache.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "slotcache-repl:", err)
			os.Exit(1)
		}
		slots = cfg.Slots
		opts, err = cfg.Options()
		if err != nil {
			fmt.Fprintln(os.Stderr, "slotcache-repl:", err)
			os.Exit(1)
		}
	}

	cache, err := slotcache.New(slots, stringValue("empty"), opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "slotcache-repl:", err)
		os.Exit(1)
	}
	defer cache.Close()

	r := &repl{cache: cache}
	if err := r.run(); err != nil {
		fmt.Fprintln(os.Stderr, "slotcache-repl:", err)
		os.Exit(1)
	}
}
