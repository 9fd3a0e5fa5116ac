/*
Ghostq starts an interactive haunted-adventure session.

It reads in a GQW world file and starts the game in the world's starting room.
The interpreter then prints what happens in the game to stdout and reads player
input from stdin until the player quits or input ends.

Usage:

	ghostq [flags]

The flags are:

	-v/--version
		Give the current version of ghostq and then exit.

	-c/--config [FILE]
		Read settings from the given TOML file. Settings not in the file keep
		their defaults.

	-w/--world [FILE]
		Use the provided GQW data or manifest file for the world. Overrides the
		config file and the GHOSTQ_WORLD environment variable.

	-d/--direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input even if launched in a
		tty with stdin and stdout.

	--debug
		Enable debug commands such as GOTO.

	--log-file [FILE]
		Write diagnostic logs to the given file. Logs are off by default.

	--log-level [LEVEL]
		Set the log level to one of debug, info, warn, or error.

Once a session has started, type "HELP" for an explanation of the commands. To
exit the interpreter, type "QUIT".
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dekarrin/ghostq"
	"github.com/dekarrin/ghostq/internal/config"
	"github.com/dekarrin/ghostq/internal/logging"
	"github.com/dekarrin/ghostq/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an issue
	// initializing the engine.
	ExitInitError
)

var (
	returnCode int = ExitSuccess

	flagVersion  = pflag.BoolP("version", "v", false, "Give the current version of ghostq and then exit.")
	flagConfig   = pflag.StringP("config", "c", "", "Read settings from the given TOML file.")
	flagWorld    = pflag.StringP("world", "w", "", "Use the given GQW data or manifest file for the world.")
	flagDirect   = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline.")
	flagDebug    = pflag.Bool("debug", false, "Enable debug commands.")
	flagLogFile  = pflag.String("log-file", "", "Write logs to the given file.")
	flagLogLevel = pflag.String("log-level", "", "Set the log level (debug, info, warn, or error).")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			fmt.Fprintf(os.Stderr, "FATAL: %v\n", panicErr)
			os.Exit(ExitGameError)
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		v := version.Current
		if v == "" {
			v = "(development build)"
		}
		fmt.Printf("%s %s\n", version.Title, v)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		returnCode = ExitInitError
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer logger.Close()

	gameEng, initErr := ghostq.New(os.Stdin, os.Stdout, cfg, logger.Logger, *flagDirect)
	if initErr != nil {
		logger.Error("engine init failed", zap.Error(initErr))
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer gameEng.Close()

	if err := gameEng.RunUntilQuit(); err != nil {
		logger.Error("game stopped", zap.Error(err))
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}
}

// loadConfig layers the config file, the environment, and the command line
// flags over the defaults, in that order.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if pflag.Lookup("world").Changed {
		cfg.World = *flagWorld
	}
	if pflag.Lookup("debug").Changed {
		cfg.Debug = *flagDebug
	}
	if pflag.Lookup("log-file").Changed {
		cfg.Log.File = *flagLogFile
	}
	if pflag.Lookup("log-level").Changed {
		cfg.Log.Level = *flagLogLevel
	}

	return cfg, cfg.Validate()
}
