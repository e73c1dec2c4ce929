// Package fuzzy provides an fzf-backed predicate for the search box, for
// callers that want "gg" to find "George" as well as plain substrings.
package fuzzy

import (
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"autosearch/internal/presenter"
)

var initOnce sync.Once

// Result is a single fuzzy match
type Result struct {
	Score     int
	Positions []int // rune offsets of matched characters in the text
}

// Matched reports whether the pattern was found
func (r Result) Matched() bool {
	return r.Score > 0 || len(r.Positions) > 0
}

// Match runs fzf's V2 algorithm case-insensitively. The pattern is
// trimmed; an empty pattern matches everything with a zero score.
// A nil slab is allowed.
func Match(text, pattern string, slab *util.Slab) (Result, bool) {
	initOnce.Do(func() { algo.Init("default") })

	runes := []rune(strings.ToLower(strings.TrimSpace(pattern)))
	if len(runes) == 0 {
		return Result{}, true
	}

	chars := util.ToChars([]byte(text))
	res, pos := algo.FuzzyMatchV2(false, false, true, &chars, runes, true, slab)
	if res.Start < 0 {
		return Result{}, false
	}

	out := Result{Score: res.Score}
	if pos != nil {
		out.Positions = append(out.Positions, (*pos)...)
	}
	return out, true
}

// Filter returns a predicate that fuzzy-matches the text extracted from
// each item. A nil extractor uses presenter.Text.
func Filter[T any](text func(T) string) presenter.Predicate[T] {
	if text == nil {
		text = presenter.Text[T]
	}
	// The predicate runs on the UI goroutine only, so one slab is enough.
	slab := util.MakeSlab(100*1024, 2048)
	return func(item T, query string) bool {
		s := text(item)
		if s == "" {
			return false
		}
		_, ok := Match(s, query, slab)
		return ok
	}
}
