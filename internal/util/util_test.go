package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MakeTextList(t *testing.T) {
	testCases := []struct {
		name     string
		items    []string
		articles bool
		expect   string
	}{
		{name: "empty", items: nil, expect: ""},
		{name: "one item", items: []string{"a lamp"}, expect: "a lamp"},
		{name: "two items", items: []string{"a lamp", "a key"}, expect: "a lamp and a key"},
		{name: "three items", items: []string{"a", "b", "c"}, expect: "a, b, and c"},
		{name: "with articles", items: []string{"Lamp", "owl"}, articles: true, expect: "a lamp and an owl"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, MakeTextList(tc.items, tc.articles))
		})
	}
}

func Test_MakeSimpleList(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", MakeSimpleList(nil))
	assert.Equal("north", MakeSimpleList([]string{"north"}))
	assert.Equal("north, south and east", MakeSimpleList([]string{"north", "south", "east"}))
}

func Test_StripArticle(t *testing.T) {
	testCases := []struct {
		input  string
		expect string
	}{
		{input: "a rusty key", expect: "rusty key"},
		{input: "An owl", expect: "owl"},
		{input: "THE painting", expect: "painting"},
		{input: "some coins", expect: "coins"},
		{input: "the the", expect: "the"},
		{input: "apple", expect: "apple"},
		{input: "", expect: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, StripArticle(tc.input))
		})
	}
}

func Test_KeySet(t *testing.T) {
	assert := assert.New(t)

	s := NewKeySet("b", "a")
	s.Add("a")
	s.Add("c")

	assert.True(s.Has("c"))
	assert.False(s.Has("d"))
	assert.ElementsMatch([]string{"a", "b", "c"}, s.Elements())
}
