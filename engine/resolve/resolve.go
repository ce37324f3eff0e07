// Package resolve maps typed player input to an option id among the options
// currently offered.
package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/nathoo/roadsaga/types"
)

// AmbiguityError indicates multiple options matched the input.
type AmbiguityError struct {
	Input      string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	names := strings.Join(e.Candidates, ", ")
	return fmt.Sprintf("which one, %q? (%s)", e.Input, names)
}

// NotFoundError indicates no option matched the input.
type NotFoundError struct {
	Input string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("there is no %q here", e.Input)
}

var articles = map[string]bool{"the": true, "a": true, "an": true, "to": true}

// Resolve returns the id of the option the input refers to. It accepts, in
// order of precedence: a 1-based option number, an exact option id, the
// words of a label, and finally a close misspelling of a label or id.
func Resolve(input string, options []types.OptionView) (string, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return "", &NotFoundError{Input: input}
	}

	// 1. Option number.
	if n, err := strconv.Atoi(in); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1].ID, nil
		}
		return "", &NotFoundError{Input: in}
	}

	// 2. Exact id or label.
	lower := strings.ToLower(in)
	for _, o := range options {
		if strings.ToLower(o.ID) == lower || strings.ToLower(o.Label) == lower {
			return o.ID, nil
		}
	}

	// 3. Every query word appears in the label.
	words := normalize(in)
	if len(words) == 0 {
		return "", &NotFoundError{Input: in}
	}
	var matches []string
	for _, o := range options {
		if containsAll(normalize(o.Label), words) {
			matches = append(matches, o.ID)
		}
	}
	if id, err := pick(in, matches); id != "" || err != nil {
		return id, err
	}

	// 4. Fuzzy match against label and id.
	query := strings.Join(words, " ")
	best := -1
	matches = nil
	for _, o := range options {
		d := distance(query, o)
		if d > limit(len(query)) {
			continue
		}
		switch {
		case best < 0 || d < best:
			best = d
			matches = []string{o.ID}
		case d == best:
			matches = append(matches, o.ID)
		}
	}
	if id, err := pick(in, matches); id != "" || err != nil {
		return id, err
	}

	return "", &NotFoundError{Input: in}
}

func pick(input string, matches []string) (string, error) {
	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguityError{Input: input, Candidates: matches}
	}
}

// normalize lowercases, splits on spaces and underscores and drops articles.
func normalize(s string) []string {
	s = strings.ToLower(strings.ReplaceAll(s, "_", " "))
	var out []string
	for _, w := range strings.Fields(s) {
		w = strings.Trim(w, ".,!?\"'")
		if w == "" || articles[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

func containsAll(haystack, needles []string) bool {
	for _, n := range needles {
		found := false
		for _, h := range haystack {
			if h == n {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func distance(query string, o types.OptionView) int {
	label := strings.Join(normalize(o.Label), " ")
	id := strings.Join(normalize(o.ID), " ")
	d := levenshtein.ComputeDistance(query, label)
	if di := levenshtein.ComputeDistance(query, id); di < d {
		d = di
	}
	return d
}

func limit(length int) int {
	switch {
	case length < 3:
		return 0
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
