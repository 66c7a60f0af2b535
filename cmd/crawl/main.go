// Crawl is a turn-based text dungeon crawler.
// Usage: crawl [--version] [--plain] [--script <file>] [--trace] [--seed <n>] [dungeon]
//
// The dungeon is a DUNGEON_LOAD_FINAL_PROJECT text file, a .lua script or a
// directory of .lua scripts. Without one the built-in dungeon is played.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"golang.org/x/term"

	"github.com/nathoo/crawlcore/cli"
	"github.com/nathoo/crawlcore/config"
	"github.com/nathoo/crawlcore/engine"
	"github.com/nathoo/crawlcore/locale"
	"github.com/nathoo/crawlcore/logger"
	"github.com/nathoo/crawlcore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: crawl [--version] [--plain] [--script <file>] [--trace] [--seed <n>] [dungeon]"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := locale.Load(cfg.Language); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	plain := cfg.Plain
	trace := false
	seed := cfg.Seed
	dungeonPath := cfg.Dungeon
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("crawl %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script", "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a value\n%s\n", args[i], usage)
				os.Exit(1)
			}
			i++
			if args[i-1] == "--script" {
				scriptFile = args[i]
				continue
			}
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid --seed %q: %v\n", args[i], err)
				os.Exit(1)
			}
			seed = n
		case "-h", "--help":
			fmt.Println(usage)
			return
		default:
			dungeonPath = args[i]
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logCfg := logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: logger.DefaultServiceName,
		Version:     version,
	}
	log, closeLog, err := logger.Open(logCfg, cfg.LogFile, logger.NewSessionID())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	player, rooms, err := loadDungeon(dungeonPath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dungeon: %v\n", err)
		os.Exit(1)
	}

	eng, err := engine.New(player, rooms, engine.WithSeed(seed), engine.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Info("session started", "dungeon", dungeonPath, "rooms", len(rooms), "seed", seed)

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := newCLI(eng, log, trace)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if asked to or stdout is not a terminal.
	if plain || !isTerminal() {
		newCLI(eng, log, trace).Run()
		return
	}

	if err := tui.Run(eng, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCLI(eng *engine.Engine, log *slog.Logger, trace bool) *cli.CLI {
	c := cli.New(eng)
	c.Log = log
	c.Trace = trace
	c.Color = isTerminal()
	return c
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
