package command

import (
	"strings"
)

var (
	// VerbAliases maps shorthand verbs to their canonical forms. Both keys and
	// values are upper case. Direction shortcuts are not in here; movement
	// owns those.
	VerbAliases map[string]string = map[string]string{
		"I":        "INVENTORY",
		"INV":      "INVENTORY",
		"INVEN":    "INVENTORY",
		"L":        "LOOK",
		"X":        "EXAMINE",
		"DESCRIBE": "EXAMINE",
		"?":        "HELP",
		"/?":       "HELP",
		"H":        "HELP",
		"Q":        "QUIT",
		"BYE":      "QUIT",
		"Y":        "YES",
	}
)

// Parse splits a line of input into a ParsedCommand. It never fails; blank
// input gives the zero value. Case is preserved so that callers can decide how
// to compare.
func Parse(line string) ParsedCommand {
	var pc ParsedCommand

	tokens := strings.Fields(line)
	if len(tokens) < 1 {
		return pc
	}

	pc.Verb = tokens[0]
	if len(tokens) == 1 {
		return pc
	}

	nounTokens := tokens[1:]
	pc.FullNoun = strings.Join(nounTokens, " ")
	pc.Noun = nounTokens[len(nounTokens)-1]
	pc.Variations = Variations(nounTokens)

	return pc
}

// Variations gives every way of reading the given noun words as a phrase:
// first the whole phrase, then each word on its own, then every contiguous
// window of words from left to right. A string is only ever listed once.
func Variations(words []string) []string {
	if len(words) < 1 {
		return nil
	}

	seen := map[string]bool{}
	var vars []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			vars = append(vars, s)
		}
	}

	add(strings.Join(words, " "))
	for _, w := range words {
		add(w)
	}
	for i := 0; i < len(words); i++ {
		for j := i + 1; j <= len(words); j++ {
			add(strings.Join(words[i:j], " "))
		}
	}

	return vars
}

// ExpandAlias returns the canonical form of the given verb. The result is
// always upper case; verbs with no alias are simply upper-cased.
func ExpandAlias(verb string) string {
	upper := strings.ToUpper(verb)
	if canonical, ok := VerbAliases[upper]; ok {
		return canonical
	}
	return upper
}
