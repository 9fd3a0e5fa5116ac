package gqerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GameMessage(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect string
	}{
		{
			name:   "plain error gives Error()",
			err:    errors.New("disk on fire"),
			expect: "disk on fire",
		},
		{
			name:   "interpreter error gives game message",
			err:    Interpreter("You can't go that way.", "no exit"),
			expect: "You can't go that way.",
		},
		{
			name:   "formatted interpreter error",
			err:    Interpreterf("You take the %s.", "lamp"),
			expect: "You take the lamp.",
		},
		{
			name:   "interpreter error wrapped by fmt",
			err:    fmt.Errorf("handle: %w", Interpreter("Go where?", "")),
			expect: "Go where?",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, GameMessage(tc.err))
		})
	}
}

func Test_WrapInterpreter_unwrapsToSentinel(t *testing.T) {
	assert := assert.New(t)

	err := WrapInterpreterf(ErrNotFound, "I don't see %s here.", "that")

	assert.ErrorIs(err, ErrNotFound)
	assert.Equal("I don't see that here.", GameMessage(err))
	assert.Contains(err.Error(), ErrNotFound.Error())
}

func Test_Interpreter_technicalMessage(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("no exit", Interpreter("You can't go that way.", "no exit").Error())
	assert.Contains(Interpreter("Huh?", "").Error(), "Huh?")
}
