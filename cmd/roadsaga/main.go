// Road Saga is a turn-based trucking game driven by Lua content.
// Usage: roadsaga [--version] [--plain] [--script <file>] [--trace] [--seed <n>] [game_directory]
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/nathoo/roadsaga/cli"
	"github.com/nathoo/roadsaga/config"
	"github.com/nathoo/roadsaga/engine"
	"github.com/nathoo/roadsaga/engine/dice"
	"github.com/nathoo/roadsaga/engine/state"
	"github.com/nathoo/roadsaga/loader"
	"github.com/nathoo/roadsaga/logging"
	"github.com/nathoo/roadsaga/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultGameDir = "games/roadsaga"

func main() {
	plain := false
	trace := false
	var gameDir string
	var scriptFile string
	var seedFlag string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("roadsaga %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script", "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a value\n", args[i])
				os.Exit(1)
			}
			if args[i] == "--script" {
				scriptFile = args[i+1]
			} else {
				seedFlag = args[i+1]
			}
			i++
		default:
			if gameDir == "" {
				gameDir = args[i]
			}
		}
	}
	if gameDir == "" {
		gameDir = defaultGameDir
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading settings: %v\n", err)
		os.Exit(1)
	}
	if seedFlag != "" {
		n, err := strconv.ParseInt(seedFlag, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "--seed must be an integer, got %q\n", seedFlag)
			os.Exit(1)
		}
		settings.Seed = n
	}

	tuning, err := config.LoadTuning(settings.Tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading tuning: %v\n", err)
		os.Exit(1)
	}

	usePlain := plain || scriptFile != "" || !isTerminal()

	// The TUI owns the screen, so its logs go to the log file or nowhere.
	var logOut io.Writer
	if usePlain {
		logOut = os.Stderr
	}
	log, closeLog, err := logging.Setup(settings, logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = run(session{
		gameDir:    gameDir,
		scriptFile: scriptFile,
		plain:      usePlain,
		trace:      trace,
		seed:       settings.Seed,
		tuning:     tuning,
	}, log, os.Stdout)
	if err != nil {
		log.Error("exiting", "error", err)
	}
	if cerr := closeLog(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Error closing log: %v\n", cerr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// session is everything run needs once settings and logging are in place.
type session struct {
	gameDir    string
	scriptFile string
	plain      bool
	trace      bool
	seed       int64
	tuning     config.Tuning
}

// run loads the game and plays it until the player quits or input ends.
// Plain and script output goes to out.
func run(sess session, log *slog.Logger, out io.Writer) error {
	graph, err := loader.Load(sess.gameDir, log)
	if err != nil {
		return fmt.Errorf("loading game: %w", err)
	}

	seed := sess.seed
	if seed == 0 {
		if seed, err = dice.NewSeed(); err != nil {
			return err
		}
	}
	log.Info("game started", "title", graph.Game.Title, "seed", seed, "version", version)

	eng := engine.New(graph, state.NewState(sess.tuning.Options()), dice.NewRNG(seed), engine.WithLogger(log))

	if !sess.plain && sess.scriptFile == "" {
		return tui.Run(eng, graph, sess.trace)
	}

	c := cli.New(eng, graph)
	c.Out = out
	c.Trace = sess.trace

	// Script mode: read commands from the file and echo them.
	if sess.scriptFile != "" {
		f, err := os.Open(sess.scriptFile)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c.In = f
		c.EchoInput = true
	}

	fmt.Fprintf(out, "%s v%s by %s\n\n", graph.Game.Title, graph.Game.Version, graph.Game.Author)
	c.Run()
	return nil
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
