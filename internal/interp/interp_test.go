package interp

import (
	"testing"

	"github.com/dekarrin/ghostq/internal/game"
	"github.com/dekarrin/ghostq/internal/handlers"
	"github.com/dekarrin/ghostq/internal/sound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorld(t *testing.T) *game.World {
	w := game.NewWorld()

	foyer := game.NewRoom("FOYER", "Foyer", "A dusty foyer.")
	foyer.SetSound("wind.ogg")
	library := game.NewRoom("5", "Library", "Shelves of rotting books.")
	foyer.AddExitByDirection(game.North, library)
	library.AddExitByDirection(game.South, foyer)
	require.NoError(t, w.AddRoom(foyer))
	require.NoError(t, w.AddRoom(library))

	lamp := game.NewItem(game.ItemDef{Label: "LAMP", Keyword: "lamp", Name: "a brass lamp", Getable: true})
	door := game.NewActionItem(game.ItemDef{Label: "DOOR", Keyword: "door", Name: "a boarded door"}, []game.ActionDef{
		{
			Verbs:       game.ParseVerbs("open"),
			OnceOnly:    true,
			Message:     "The door creaks open.",
			RevealsItem: "KEY",
		},
	})
	key := game.NewItem(game.ItemDef{Label: "KEY", Keyword: "key", Name: "a rusty key", Getable: true})
	require.NoError(t, w.AddItem(lamp))
	require.NoError(t, w.AddItem(door))
	require.NoError(t, w.AddItem(key))
	foyer.AddItem(lamp)
	library.AddItem(door)
	w.Hide(key)

	w.Start = "FOYER"
	return w
}

func newInterp(t *testing.T, opts Options) (*Interpreter, *game.World) {
	w := testWorld(t)
	in, err := New(w, opts)
	require.NoError(t, err)
	return in, w
}

func Test_New_noStartRoom(t *testing.T) {
	assert := assert.New(t)
	w := testWorld(t)
	w.Start = "ATTIC"

	_, err := New(w, Options{})

	assert.ErrorIs(err, game.ErrNoSuchRoom)
}

func Test_Interpreter_Start(t *testing.T) {
	assert := assert.New(t)
	sp := sound.NewLogPlayer(nil)
	in, _ := newInterp(t, Options{
		Messages: handlers.Messages{Welcome: "Welcome, mortal."},
		Settings: handlers.Settings{Sound: true},
		Sound:    sp,
	})

	out := in.Start()

	assert.Equal("Welcome, mortal.\n"+
		"\n"+
		"LOCATION: Foyer\n"+
		"A dusty foyer.\n"+
		"Obvious exits lead north.\n"+
		"You see a brass lamp.\n", out)
	assert.Equal("wind.ogg", sp.Playing())
	assert.True(in.Running())
}

func Test_Interpreter_Process(t *testing.T) {
	testCases := []struct {
		name       string
		lines      []string
		expectOut  string
		expectRoom string
	}{
		{
			name:       "blank line",
			lines:      []string{"   "},
			expectOut:  "I have no idea what you are trying to do.\n",
			expectRoom: "FOYER",
		},
		{
			name:       "unknown verb",
			lines:      []string{"dance"},
			expectOut:  "I have no idea what you are trying to do.\n",
			expectRoom: "FOYER",
		},
		{
			name:  "shortcut moves and shows the new room",
			lines: []string{"n"},
			expectOut: "LOCATION: Library\n" +
				"Shelves of rotting books.\n" +
				"Obvious exits lead south.\n" +
				"You see a boarded door.\n",
			expectRoom: "5",
		},
		{
			name:  "room description only on first visit",
			lines: []string{"n", "s", "n"},
			expectOut: "LOCATION: Library\n" +
				"Obvious exits lead south.\n" +
				"You see a boarded door.\n",
			expectRoom: "5",
		},
		{
			name:  "look redisplays description",
			lines: []string{"n", "look"},
			expectOut: "LOCATION: Library\n" +
				"Shelves of rotting books.\n" +
				"Obvious exits lead south.\n" +
				"You see a boarded door.\n",
			expectRoom: "5",
		},
		{
			name:  "verbose on redisplays",
			lines: []string{"n", "s", "verbose on"},
			expectOut: "Verbose mode ON. Room descriptions will always be shown.\n" +
				"LOCATION: Foyer\n" +
				"A dusty foyer.\n" +
				"Obvious exits lead north.\n" +
				"You see a brass lamp.\n",
			expectRoom: "FOYER",
		},
		{
			name:  "reveal into current room",
			lines: []string{"n", "open door"},
			expectOut: "The door creaks open.\n" +
				"\n" +
				"You notice something you hadn't seen before...\n",
			expectRoom: "5",
		},
		{
			name:       "mixed case input",
			lines:      []string{"GeT LaMp"},
			expectOut:  "You take the brass lamp.\n",
			expectRoom: "FOYER",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			in, w := newInterp(t, Options{})
			in.Start()

			var out string
			for _, line := range tc.lines {
				out = in.Process(line)
			}

			assert.Equal(tc.expectOut, out)
			assert.Equal(tc.expectRoom, w.Player().Location().Label())
		})
	}
}

func Test_Interpreter_quit(t *testing.T) {
	assert := assert.New(t)
	sp := sound.NewLogPlayer(nil)
	in, _ := newInterp(t, Options{
		Messages: handlers.Messages{Quit: "Farewell."},
		Settings: handlers.Settings{Sound: true},
		Sound:    sp,
	})
	in.Start()

	assert.Equal("Are you sure you want to quit? (YES/NO)\n", in.Process("quit"))
	assert.True(in.Running())
	assert.Equal("Farewell.\n", in.Process("yes"))
	assert.False(in.Running())
	assert.Equal("", sp.Playing())
	assert.Equal("", in.Process("look"))
}

func Test_Interpreter_restart(t *testing.T) {
	assert := assert.New(t)
	in, w := newInterp(t, Options{})
	in.Start()

	in.Process("get lamp")
	in.Process("n")
	in.Process("open door")
	require.False(t, w.Hidden("KEY"))

	in.Process("restart")
	out := in.Process("yes")

	assert.Equal("Restarting the haunted adventure...\n"+
		"LOCATION: Foyer\n"+
		"A dusty foyer.\n"+
		"Obvious exits lead north.\n"+
		"You see a brass lamp.\n", out)
	assert.Equal("FOYER", w.Player().Location().Label())
	assert.Empty(w.Player().Items())
	assert.True(w.Hidden("KEY"))

	in.Process("n")
	assert.Equal("The door creaks open.\n\nYou notice something you hadn't seen before...\n", in.Process("open door"), "once-only history is reset")
}
