package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/ghostq/internal/util"
	"go.uber.org/zap"
)

// FindBestMatch searches candidates for the object phrase refers to.
//
// The trailing words of phrase are tried first: the last word alone, then the
// last two, and so on up to the whole phrase. As soon as exactly one candidate
// scores at least the reverse threshold for one of those suffixes, it is
// returned. A suffix that more than one candidate hits is skipped in favor of
// a longer one.
//
// If no suffix gives a single hit, every candidate is scored against the whole
// phrase and all those with a positive score are returned best first, with
// ties kept in candidate order.
func FindBestMatch[T Named](m *Matcher, phrase string, candidates []T) Result[T] {
	var res Result[T]

	p := m.fold(phrase)
	if p == "" || len(candidates) < 1 {
		return res
	}

	if rev := findReverse(m, p, candidates); rev.Found && rev.Confidence >= m.opts.ReverseThreshold {
		return rev
	}

	for _, c := range candidates {
		score, typ := m.Score(p, c)
		if score > 0 {
			res.Matches = append(res.Matches, Candidate[T]{Object: c, Score: score, Type: typ})
		}
	}

	sort.SliceStable(res.Matches, func(i, j int) bool {
		return res.Matches[i].Score > res.Matches[j].Score
	})

	if len(res.Matches) > 0 {
		res.Item = res.Matches[0].Object
		res.Found = true
		res.Confidence = res.Matches[0].Score
	}

	m.log.Debug("whole-phrase match",
		zap.String("phrase", p),
		zap.Int("matches", len(res.Matches)),
		zap.Int("confidence", res.Confidence),
	)

	return res
}

func findReverse[T Named](m *Matcher, p string, candidates []T) Result[T] {
	words := strings.Fields(p)

	for i := len(words) - 1; i >= 0; i-- {
		suffix := strings.Join(words[i:], " ")

		var hits []Candidate[T]
		for _, c := range candidates {
			score, typ := m.Score(suffix, c)
			if score >= m.opts.ReverseThreshold {
				hits = append(hits, Candidate[T]{Object: c, Score: score, Type: typ})
			}
		}

		m.log.Debug("reverse match attempt", zap.String("suffix", suffix), zap.Int("hits", len(hits)))

		if len(hits) == 1 {
			return Result[T]{
				Item:       hits[0].Object,
				Found:      true,
				Matches:    hits,
				Confidence: hits[0].Score,
			}
		}
	}

	return Result[T]{}
}

// Disambiguate decides whether the best of a ranked list of matches can be
// used. With zero or one match there is nothing to decide. Otherwise the top
// match is selected only if it beats the runner-up by more than the clear
// winner margin; if not, the player is asked to be more specific and nothing
// is selected.
func Disambiguate[T Named](m *Matcher, matches []Candidate[T]) Disambiguation[T] {
	var d Disambiguation[T]

	if len(matches) < 1 {
		return d
	}

	if len(matches) == 1 || matches[0].Score > matches[1].Score+m.opts.ClearWinnerMargin {
		d.Selected = matches[0].Object
		d.Found = true
		return d
	}

	limit := len(matches)
	if limit > m.opts.MaxCandidates {
		limit = m.opts.MaxCandidates
	}

	d.NeedsDisambiguation = true
	d.Candidates = matches[:limit]

	names := make([]string, limit)
	for i := range d.Candidates {
		names[i] = d.Candidates[i].Object.Name()
	}
	d.Message = fmt.Sprintf("Please be more specific. I see %s.", util.MakeTextList(names, false))

	m.log.Debug("match needs disambiguation",
		zap.Int("top", matches[0].Score),
		zap.Int("runner_up", matches[1].Score),
		zap.Strings("candidates", names),
	)

	return d
}

// Resolve runs FindBestMatch and then, unless the result is a single match at
// or above the reverse threshold, Disambiguate. It is what handlers use to
// turn a noun phrase into one object.
func Resolve[T Named](m *Matcher, phrase string, candidates []T) Disambiguation[T] {
	res := FindBestMatch(m, phrase, candidates)
	if !res.Found {
		return Disambiguation[T]{}
	}

	if res.Confidence >= m.opts.ReverseThreshold && len(res.Matches) == 1 {
		return Disambiguation[T]{Selected: res.Item, Found: true}
	}

	return Disambiguate(m, res.Matches)
}
