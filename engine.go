// Package ghostq contains a CLI-driven engine for getting commands and
// advancing a haunted-house adventure until the player quits.
package ghostq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/rosed"
	"go.uber.org/zap"

	"github.com/dekarrin/ghostq/internal/command"
	"github.com/dekarrin/ghostq/internal/config"
	"github.com/dekarrin/ghostq/internal/handlers"
	"github.com/dekarrin/ghostq/internal/input"
	"github.com/dekarrin/ghostq/internal/interp"
	"github.com/dekarrin/ghostq/internal/match"
	"github.com/dekarrin/ghostq/internal/sound"
	"github.com/dekarrin/ghostq/internal/version"
	"github.com/dekarrin/ghostq/internal/worldfile"
)

// Engine contains the things needed to run a game from an interactive shell
// attached to an input stream and an output stream.
type Engine struct {
	interp  *interp.Interpreter
	in      command.Reader
	out     *bufio.Writer
	width   int
	log     *zap.Logger
	running bool
}

// New creates a new engine that plays the world named in cfg on the given
// streams. If nil is given for the input stream, stdin is used; if nil is
// given for the output stream, stdout is used. Readline is used for input only
// when both streams are the terminal's and forceDirect is false. log may be
// nil.
func New(inputStream io.Reader, outputStream io.Writer, cfg config.Config, log *zap.Logger, forceDirect bool) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}
	if log == nil {
		log = zap.NewNop()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	world, err := worldfile.Load(cfg.World)
	if err != nil {
		return nil, err
	}
	log.Info("world loaded", zap.String("path", cfg.World), zap.Int("rooms", len(world.Rooms())))
	if sealed := world.Unreachable(world.Start); len(sealed) > 0 {
		log.Info("rooms with no walking route from the start", zap.Strings("rooms", sealed))
	}

	it, err := interp.New(world, interp.Options{
		Matcher: match.Options{
			ReverseThreshold:  cfg.Matcher.ReverseThreshold,
			ClearWinnerMargin: cfg.Matcher.ClearWinnerMargin,
			MaxCandidates:     cfg.Matcher.MaxCandidates,
		},
		Settings: handlers.Settings{
			Verbose: cfg.Verbose,
			Sound:   cfg.Sound,
			Debug:   cfg.Debug,
		},
		Messages: handlers.Messages{
			Welcome:  cfg.Messages.Welcome,
			Quit:     cfg.Messages.Quit,
			Restart:  cfg.Messages.Restart,
			Continue: cfg.Messages.Continue,
		},
		Title:           cfg.Title,
		Version:         version.Current,
		VersionFallback: cfg.Messages.VersionFallback,
		Width:           cfg.Width,
		Sound:           sound.NewLogPlayer(log.Named("sound")),
		Log:             log,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing interpreter: %w", err)
	}

	eng := &Engine{
		interp: it,
		out:    bufio.NewWriter(outputStream),
		width:  cfg.Width,
		log:    log,
	}

	useReadline := !forceDirect && inputStream == os.Stdin && outputStream == os.Stdout
	if useReadline {
		eng.in, err = input.NewInteractiveReader(input.DefaultPrompt)
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running game engine")
	}

	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}
	return nil
}

// RunUntilQuit prints the welcome text and then reads commands and applies
// them to the game until the player confirms QUIT or input runs out.
func (eng *Engine) RunUntilQuit() error {
	eng.running = true
	defer func() {
		eng.running = false
	}()

	if err := eng.write(eng.interp.Start()); err != nil {
		return err
	}

	for eng.interp.Running() {
		line, err := eng.in.ReadCommand()
		if err != nil {
			if errors.Is(err, io.EOF) {
				eng.log.Info("input ended before quit")
				return nil
			}
			return fmt.Errorf("get user command: %w", err)
		}

		if err := eng.write(eng.interp.Process(line)); err != nil {
			return err
		}
	}

	return nil
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(wrap(s, eng.width)); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}

// wrap wraps each line of s to width on its own so that the line structure
// of the game's output is kept.
func wrap(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if len(lines[i]) > width {
			lines[i] = rosed.Edit(lines[i]).Wrap(width).String()
		}
	}
	return strings.Join(lines, "\n")
}
