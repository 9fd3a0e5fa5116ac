// Package command defines game command data types and handles parsing of
// commands from input sources.
package command

// ParsedCommand is a single line of player input split into its verb and the
// noun phrase that follows it. The empty string is used where there is no
// value; for instance, a blank line gives a ParsedCommand with every field
// empty.
//
// A ParsedCommand is built fresh for every line of input and is not modified
// after Parse returns it.
type ParsedCommand struct {
	// Verb is the first whitespace-delimited token of the input, exactly as it
	// was typed.
	Verb string

	// Noun is the last token of the noun phrase. It is kept for handlers that
	// only care about single-word objects such as directions or "ALL".
	Noun string

	// FullNoun is every token after the verb, joined by single spaces.
	FullNoun string

	// Variations holds the full noun phrase, then each individual word, then
	// every other contiguous run of words, with duplicates removed. It is nil
	// when there is no noun phrase.
	Variations []string
}

// Empty returns whether the command has no verb, which only happens for blank
// input.
func (pc ParsedCommand) Empty() bool {
	return pc.Verb == ""
}

// HasNoun returns whether anything followed the verb.
func (pc ParsedCommand) HasNoun() bool {
	return pc.FullNoun != ""
}

// Reader is a type that can be used for getting command input.
type Reader interface {
	// ReadCommand reads a single user command. It will block until one is
	// ready. If there is an error or output is at end (EOF), the returned
	// string will be empty, otherwise it will always be non-empty.
	//
	// When error is io.EOF, string will always be empty. If EOF was encountered
	// on a call but some input was received, the input will be returned and
	// error will be nil, and the next call to ReadCommand will return "",
	// io.EOF.
	ReadCommand() (string, error)

	// Close performs any operations required to clean the resources created by
	// the Reader. It should be called at least once when the Reader is no
	// longer needed.
	Close() error
}
