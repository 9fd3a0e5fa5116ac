// Package util holds small text and collection helpers shared by the rest of
// the interpreter.
package util

import (
	"regexp"
	"strings"
	"unicode"
)

var leadingArticleRegexp = regexp.MustCompile(`(?i)^(a|an|the|some)\s+`)

// MakeTextList gives a nice list of things based on their display name, using
// an Oxford comma when there are three or more: "a, b, and c". If articles is
// true, an indefinite article is put in front of every item.
func MakeTextList(items []string, articles bool) string {
	if len(items) < 1 {
		return ""
	}

	withArts := make([]string, len(items))
	for i := range items {
		item := items[i]
		if articles {
			iRunes := []rune(item)
			leadingUpper := unicode.IsUpper(iRunes[0])
			allCaps := leadingUpper
			if leadingUpper && len(iRunes) > 1 {
				allCaps = unicode.IsUpper(iRunes[1])
			}

			if leadingUpper && !allCaps {
				iRunes[0] = unicode.ToLower(iRunes[0])
				item = string(iRunes)
			}

			item = ArticleFor(item, false) + " " + item
		}
		withArts[i] = item
	}

	switch len(withArts) {
	case 1:
		return withArts[0]
	case 2:
		return withArts[0] + " and " + withArts[1]
	default:
		last := len(withArts) - 1
		return strings.Join(withArts[:last], ", ") + ", and " + withArts[last]
	}
}

// MakeSimpleList joins items with commas and puts "and" before the last one,
// with no Oxford comma: "north, south and east". It is used for exit lists.
func MakeSimpleList(items []string) string {
	if len(items) < 1 {
		return ""
	}
	if len(items) == 1 {
		return items[0]
	}
	last := len(items) - 1
	return strings.Join(items[:last], ", ") + " and " + items[last]
}

// StripArticle removes a single leading "a", "an", "the", or "some" from s,
// ignoring case.
func StripArticle(s string) string {
	return strings.TrimSpace(leadingArticleRegexp.ReplaceAllString(s, ""))
}

// ArticleFor returns the article for the given string. It will be capitalized
// the same as the string. If definite is true, the returned value will be "the"
// capitalized as described; otherwise, it will be "a"/"an" capitalized as
// described.
func ArticleFor(s string, definite bool) string {
	sRunes := []rune(s)

	if len(sRunes) < 1 {
		return ""
	}

	leadingUpper := unicode.IsUpper(sRunes[0])
	allCaps := leadingUpper
	if leadingUpper && len(sRunes) > 1 {
		allCaps = unicode.IsUpper(sRunes[1])
	}

	art := ""
	if definite {
		if allCaps {
			art = "THE"
		} else if leadingUpper {
			art = "The"
		} else {
			art = "the"
		}
	} else {
		if allCaps || leadingUpper {
			art = "A"
		} else {
			art = "a"
		}

		first := unicode.ToUpper(sRunes[0])
		if first == 'A' || first == 'E' || first == 'I' || first == 'O' || first == 'U' {
			if allCaps {
				art += "N"
			} else {
				art += "n"
			}
		}
	}

	return art
}
