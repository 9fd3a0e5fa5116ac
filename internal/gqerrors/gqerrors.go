// Package gqerrors holds error types shared by the ghostq interpreter. Most
// errors raised while handling a command carry a message meant for the player
// as well as a technical one meant for logs.
package gqerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped by interpreter errors raised when a phrase does
	// not match anything the player can reach.
	ErrNotFound = errors.New("no matching object")

	// ErrAmbiguous is wrapped by interpreter errors raised when a phrase
	// matches more than one object with no clear winner.
	ErrAmbiguous = errors.New("ambiguous object reference")

	// ErrWorld is wrapped by errors found while loading or validating world
	// data.
	ErrWorld = errors.New("invalid world data")
)

// interpreterError is an error caused by attempting to interpret input. Either
// the input could not be understood or it asks for something that is not
// possible right now.
type interpreterError struct {
	msg   string
	human string
	wrap  error
}

func (e *interpreterError) Error() string {
	return e.msg
}

// GameMessage gives the message that should be displayed in-game to describe
// the error.
func (e *interpreterError) GameMessage() string {
	return e.human
}

// Unwrap gives the error that the interpreterError wraps, if it wraps one.
func (e *interpreterError) Unwrap() error {
	return e.wrap
}

// Interpreter returns a new interpreter error that has both the message to
// show the player and the technical description of the error.
func Interpreter(game, technical string) error {
	return WrapInterpreter(nil, game, technical)
}

// Interpreterf returns a new interpreter error with a player message built
// from the format and arguments and an automatically generated description.
func Interpreterf(gameFormat string, a ...interface{}) error {
	return Interpreter(fmt.Sprintf(gameFormat, a...), "")
}

// WrapInterpreter is like Interpreter but the returned error wraps e.
func WrapInterpreter(e error, game, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("interpreter error: %q", game)
		if e != nil {
			technical += ": " + e.Error()
		}
	}
	return &interpreterError{
		msg:   technical,
		human: game,
		wrap:  e,
	}
}

// WrapInterpreterf is like Interpreterf but the returned error wraps e.
func WrapInterpreterf(e error, gameFormat string, a ...interface{}) error {
	return WrapInterpreter(e, fmt.Sprintf(gameFormat, a...), "")
}

// GameMessage gets the message to display to the player for the given error.
// If err is or wraps an interpreter error, its game message is returned.
// Otherwise, err.Error() is returned.
func GameMessage(err error) string {
	var intErr *interpreterError
	if errors.As(err, &intErr) {
		return intErr.GameMessage()
	}
	return err.Error()
}
