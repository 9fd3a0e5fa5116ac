// Package match finds which object a player meant by a free-text noun phrase.
// It scores every candidate's name and keyword against the phrase, tries the
// phrase's trailing words first so that noise words at the front are ignored,
// and decides whether the best-scoring candidate is a clear enough winner to
// use without asking the player to be more specific.
package match

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ghostq/internal/util"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Named is anything that can be matched by name. Name is the display name
// such as "a rusty brass key"; Keyword is a short extra word or words the
// object also answers to.
type Named interface {
	Name() string
	Keyword() string
}

// Type is the kind of match that produced a score.
type Type int

const (
	NoMatch Type = iota
	Exact
	NamePrefix
	PhrasePrefix
	NameSuffix
	NameContains
	WordSequence
	Partial
)

func (t Type) String() string {
	switch t {
	case NoMatch:
		return "none"
	case Exact:
		return "exact_name"
	case NamePrefix:
		return "name_prefix"
	case PhrasePrefix:
		return "phrase_prefix"
	case NameSuffix:
		return "name_suffix"
	case NameContains:
		return "name_contains"
	case WordSequence:
		return "word_sequence"
	case Partial:
		return "partial"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Scores given for each kind of match.
const (
	ScoreExact        = 100
	ScoreNamePrefix   = 90
	ScorePhrasePrefix = 85
	ScoreNameSuffix   = 80
	ScoreNameContains = 70
	ScoreWordSequence = 85
	ScorePartialWord  = 10
)

// Options are the tunable thresholds used by a Matcher.
type Options struct {
	// ReverseThreshold is the lowest score that counts as a hit while trying
	// suffixes of the phrase.
	ReverseThreshold int

	// ClearWinnerMargin is how many points the top candidate must beat the
	// runner-up by (strictly) to be picked without asking the player.
	ClearWinnerMargin int

	// MaxCandidates is the most candidates named in a "be more specific"
	// prompt.
	MaxCandidates int
}

// DefaultOptions returns the standard thresholds: 90, 20, and 5.
func DefaultOptions() Options {
	return Options{
		ReverseThreshold:  90,
		ClearWinnerMargin: 20,
		MaxCandidates:     5,
	}
}

// Candidate is one object that matched a phrase with a positive score.
type Candidate[T Named] struct {
	Object T
	Score  int
	Type   Type
}

// Result is the outcome of searching a set of candidates for a phrase.
// Matches is ordered best first; Item is the first of Matches if Found.
type Result[T Named] struct {
	Item       T
	Found      bool
	Matches    []Candidate[T]
	Confidence int
}

// Disambiguation is the decision made about a ranked list of matches.
type Disambiguation[T Named] struct {
	// Selected is the chosen object. It is only valid if Found is true.
	Selected T
	Found    bool

	// NeedsDisambiguation is true when the top matches are too close to call.
	// Message then holds the prompt to show the player and Candidates holds
	// the matches it names.
	NeedsDisambiguation bool
	Message             string
	Candidates          []Candidate[T]
}

// Matcher scores and resolves noun phrases. It holds no per-search state and
// may be reused for every command.
type Matcher struct {
	opts  Options
	log   *zap.Logger
	lower cases.Caser
}

// New creates a Matcher with the given options. Any option that is not
// positive is replaced with its default. If log is nil, nothing is logged.
func New(opts Options, log *zap.Logger) *Matcher {
	def := DefaultOptions()
	if opts.ReverseThreshold <= 0 {
		opts.ReverseThreshold = def.ReverseThreshold
	}
	if opts.ClearWinnerMargin <= 0 {
		opts.ClearWinnerMargin = def.ClearWinnerMargin
	}
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = def.MaxCandidates
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Matcher{
		opts:  opts,
		log:   log,
		lower: cases.Lower(language.Und),
	}
}

// Options returns the thresholds the Matcher is using.
func (m *Matcher) Options() Options {
	return m.opts
}

func (m *Matcher) fold(s string) string {
	return strings.TrimSpace(m.lower.String(s))
}

// Score rates how well phrase refers to obj. Zero means no match at all.
func (m *Matcher) Score(phrase string, obj Named) (int, Type) {
	p := m.fold(phrase)
	if p == "" {
		return 0, NoMatch
	}

	name := m.fold(obj.Name())
	clean := util.StripArticle(name)

	score := 0
	typ := NoMatch

	switch {
	case name == "":
	case p == name || p == clean:
		score, typ = ScoreExact, Exact
	case strings.HasPrefix(name, p) || strings.HasPrefix(clean, p):
		score, typ = ScoreNamePrefix, NamePrefix
	case strings.HasPrefix(p, name) || (clean != "" && strings.HasPrefix(p, clean)):
		score, typ = ScorePhrasePrefix, PhrasePrefix
	case strings.HasSuffix(name, p) || strings.HasSuffix(clean, p):
		score, typ = ScoreNameSuffix, NameSuffix
	case strings.Contains(name, p) || strings.Contains(clean, p):
		score, typ = ScoreNameContains, NameContains
	}

	phraseWords := strings.Fields(p)
	nameWords := strings.Fields(clean)

	if len(phraseWords) > 1 && containsSequence(nameWords, phraseWords) {
		score += ScoreWordSequence
		if typ == NoMatch {
			typ = WordSequence
		}
	}

	targets := append(nameWords, strings.Fields(m.fold(obj.Keyword()))...)
	partial := countPartial(phraseWords, targets)
	if partial > 0 {
		score += partial * ScorePartialWord
		if typ == NoMatch {
			typ = Partial
		}
	}

	return score, typ
}

// containsSequence returns whether seq appears as a contiguous run in words.
func containsSequence(words, seq []string) bool {
	for i := 0; i+len(seq) <= len(words); i++ {
		matched := true
		for j := range seq {
			if words[i+j] != seq[j] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// countPartial counts the phrase words that are a substring of some target
// word or have some target word as a substring. Each phrase word counts once.
func countPartial(phraseWords, targets []string) int {
	count := 0
	for _, pw := range phraseWords {
		for _, tw := range targets {
			if tw == "" {
				continue
			}
			if strings.Contains(tw, pw) || strings.Contains(pw, tw) {
				count++
				break
			}
		}
	}
	return count
}
