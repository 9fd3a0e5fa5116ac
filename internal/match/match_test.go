package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testObj struct {
	name    string
	keyword string
}

func (o *testObj) Name() string    { return o.name }
func (o *testObj) Keyword() string { return o.keyword }

func Test_Matcher_Score(t *testing.T) {
	testCases := []struct {
		name       string
		phrase     string
		obj        *testObj
		expect     int
		expectType Type
	}{
		{
			name:       "exact match on name without article",
			phrase:     "rusty brass key",
			obj:        &testObj{name: "a rusty brass key"},
			expect:     ScoreExact + ScoreWordSequence + 3*ScorePartialWord,
			expectType: Exact,
		},
		{
			name:       "case is ignored",
			phrase:     "BRASS LAMP",
			obj:        &testObj{name: "a brass lamp"},
			expect:     ScoreExact + ScoreWordSequence + 2*ScorePartialWord,
			expectType: Exact,
		},
		{
			name:       "name starts with phrase",
			phrase:     "rus",
			obj:        &testObj{name: "rusty key"},
			expect:     ScoreNamePrefix + ScorePartialWord,
			expectType: NamePrefix,
		},
		{
			name:       "phrase starts with name",
			phrase:     "lamp oil",
			obj:        &testObj{name: "lamp"},
			expect:     ScorePhrasePrefix + ScorePartialWord,
			expectType: PhrasePrefix,
		},
		{
			name:       "name ends with phrase",
			phrase:     "book",
			obj:        &testObj{name: "a blue book"},
			expect:     ScoreNameSuffix + ScorePartialWord,
			expectType: NameSuffix,
		},
		{
			name:       "name contains phrase",
			phrase:     "lue",
			obj:        &testObj{name: "a blue book"},
			expect:     ScoreNameContains + ScorePartialWord,
			expectType: NameContains,
		},
		{
			name:       "keyword partial only",
			phrase:     "lantern",
			obj:        &testObj{name: "a brass lamp", keyword: "lantern"},
			expect:     ScorePartialWord,
			expectType: Partial,
		},
		{
			name:       "no match",
			phrase:     "sword",
			obj:        &testObj{name: "a brass lamp", keyword: "lamp"},
			expect:     0,
			expectType: NoMatch,
		},
		{
			name:       "empty phrase",
			phrase:     "  ",
			obj:        &testObj{name: "a brass lamp"},
			expect:     0,
			expectType: NoMatch,
		},
		{
			name:       "empty name only matches on keyword",
			phrase:     "lamp",
			obj:        &testObj{name: "", keyword: "lamp"},
			expect:     ScorePartialWord,
			expectType: Partial,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			m := New(DefaultOptions(), nil)

			actual, actualType := m.Score(tc.phrase, tc.obj)

			assert.Equal(tc.expect, actual)
			assert.Equal(tc.expectType, actualType)
		})
	}
}

func Test_FindBestMatch_reverseSuffix(t *testing.T) {
	assert := assert.New(t)
	m := New(DefaultOptions(), nil)

	brass := &testObj{name: "a rusty brass key"}
	silver := &testObj{name: "a silver key"}

	res := FindBestMatch(m, "take the rusty brass key", []*testObj{brass, silver})

	assert.True(res.Found)
	assert.Same(brass, res.Item)
	assert.Len(res.Matches, 1)
	// "key" hits both, so "brass key" is the suffix that decides it
	assert.Equal(ScoreNameSuffix+ScoreWordSequence+2*ScorePartialWord, res.Confidence)
}

func Test_FindBestMatch_noiseWordsIgnored(t *testing.T) {
	assert := assert.New(t)
	m := New(DefaultOptions(), nil)

	painting := &testObj{name: "a faded painting", keyword: "painting"}
	lamp := &testObj{name: "a brass lamp"}

	res := FindBestMatch(m, "at the painting", []*testObj{lamp, painting})

	assert.True(res.Found)
	assert.Same(painting, res.Item)
}

func Test_FindBestMatch_empty(t *testing.T) {
	testCases := []struct {
		name       string
		phrase     string
		candidates []*testObj
	}{
		{name: "empty phrase", phrase: "", candidates: []*testObj{{name: "a key"}}},
		{name: "no candidates", phrase: "key", candidates: nil},
		{name: "nothing scores", phrase: "sword", candidates: []*testObj{{name: "a key"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			m := New(DefaultOptions(), nil)

			res := FindBestMatch(m, tc.phrase, tc.candidates)

			assert.False(res.Found)
			assert.Nil(res.Item)
			assert.Empty(res.Matches)
			assert.Equal(0, res.Confidence)
		})
	}
}

func Test_FindBestMatch_fallbackIsRankedAndStable(t *testing.T) {
	assert := assert.New(t)
	m := New(DefaultOptions(), nil)

	red := &testObj{name: "a red lamp"}
	blue := &testObj{name: "a blue lamp"}
	key := &testObj{name: "a key"}

	res := FindBestMatch(m, "lamp", []*testObj{red, key, blue})

	require.True(t, res.Found)
	require.Len(t, res.Matches, 2)
	assert.Same(red, res.Matches[0].Object)
	assert.Same(blue, res.Matches[1].Object)
	assert.Equal(res.Matches[0].Score, res.Confidence)
}

func Test_Disambiguate(t *testing.T) {
	a := &testObj{name: "a red key"}
	b := &testObj{name: "a blue key"}

	testCases := []struct {
		name          string
		matches       []Candidate[*testObj]
		expectAsk     bool
		expectFound   bool
		expectMessage string
	}{
		{
			name:        "no matches",
			matches:     nil,
			expectFound: false,
		},
		{
			name:        "single match is selected",
			matches:     []Candidate[*testObj]{{Object: a, Score: 10}},
			expectFound: true,
		},
		{
			name:          "close scores need disambiguation",
			matches:       []Candidate[*testObj]{{Object: a, Score: 95}, {Object: b, Score: 92}},
			expectAsk:     true,
			expectMessage: "Please be more specific. I see a red key and a blue key.",
		},
		{
			name:          "delta of exactly the margin is not a clear winner",
			matches:       []Candidate[*testObj]{{Object: a, Score: 110}, {Object: b, Score: 90}},
			expectAsk:     true,
			expectMessage: "Please be more specific. I see a red key and a blue key.",
		},
		{
			name:        "clear winner is selected",
			matches:     []Candidate[*testObj]{{Object: a, Score: 95}, {Object: b, Score: 70}},
			expectFound: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			m := New(DefaultOptions(), nil)

			actual := Disambiguate(m, tc.matches)

			assert.Equal(tc.expectAsk, actual.NeedsDisambiguation)
			assert.Equal(tc.expectFound, actual.Found)
			assert.Equal(tc.expectMessage, actual.Message)
			if tc.expectFound {
				assert.Same(tc.matches[0].Object, actual.Selected)
			}
		})
	}
}

func Test_Disambiguate_limitsCandidates(t *testing.T) {
	assert := assert.New(t)
	m := New(DefaultOptions(), nil)

	var matches []Candidate[*testObj]
	for i := 0; i < 7; i++ {
		matches = append(matches, Candidate[*testObj]{Object: &testObj{name: fmt.Sprintf("key %d", i)}, Score: 50})
	}

	actual := Disambiguate(m, matches)

	assert.True(actual.NeedsDisambiguation)
	assert.Len(actual.Candidates, 5)
	assert.Equal("Please be more specific. I see key 0, key 1, key 2, key 3, and key 4.", actual.Message)
}

func Test_Resolve(t *testing.T) {
	testCases := []struct {
		name        string
		opts        Options
		phrase      string
		expectFound bool
		expectAsk   bool
		expectName  string
	}{
		{
			name:        "exact name and a suffix both hit so player must choose",
			opts:        DefaultOptions(),
			phrase:      "key",
			expectFound: false,
			expectAsk:   true,
		},
		{
			name:        "smaller margin makes the exact name a clear winner",
			opts:        Options{ClearWinnerMargin: 10},
			phrase:      "key",
			expectFound: true,
			expectName:  "key",
		},
		{
			name:        "longer phrase resolves it",
			opts:        DefaultOptions(),
			phrase:      "the red key",
			expectFound: true,
			expectName:  "a red key",
		},
		{
			name:   "nothing matches",
			opts:   DefaultOptions(),
			phrase: "sword",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			m := New(tc.opts, nil)
			candidates := []*testObj{{name: "key"}, {name: "a red key"}}

			actual := Resolve(m, tc.phrase, candidates)

			assert.Equal(tc.expectFound, actual.Found)
			assert.Equal(tc.expectAsk, actual.NeedsDisambiguation)
			if tc.expectFound {
				assert.Equal(tc.expectName, actual.Selected.Name())
			}
		})
	}
}

func Test_New_defaultsNonPositiveOptions(t *testing.T) {
	assert := assert.New(t)

	m := New(Options{ReverseThreshold: -1, MaxCandidates: 3}, nil)

	assert.Equal(Options{ReverseThreshold: 90, ClearWinnerMargin: 20, MaxCandidates: 3}, m.Options())
}
