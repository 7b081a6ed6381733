package suggest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSuggestions is returned when neither source has a suggestion.
var ErrNoSuggestions = errors.New("no suggestions")

// MaxTopN bounds the number of words requested from each source.
const MaxTopN = 1000

type Source string

const (
	SourceVector  Source = "vector"
	SourceLexical Source = "lexical"
)

var groupHeaders = map[Source]string{
	SourceVector:  "    ==== Word2Vec results:",
	SourceLexical: "    ==== Wordnet results:",
}

type Suggestion struct {
	Word   string `json:"word"`
	Source Source `json:"source"`
	// Rank is the position within the source's own list
	Rank int `json:"rank"`
}

// List holds the merged suggestions and the labels shown to the user, index for index.
type List struct {
	Suggestions []Suggestion
	Labels      []string
}

func (l List) Words() []string {
	words := make([]string, 0, len(l.Suggestions))
	for _, s := range l.Suggestions {
		words = append(words, s.Word)
	}
	return words
}

func (l List) Len() int {
	return len(l.Suggestions)
}

// Merge puts the vector suggestions before the lexical ones, each capped at topn.
// A word already suggested, compared case-insensitively, is skipped.
func Merge(vector, lexical []string, topn int) (List, error) {
	var list List
	seen := map[string]bool{}
	for _, group := range []struct {
		source Source
		words  []string
	}{
		{source: SourceVector, words: vector},
		{source: SourceLexical, words: lexical},
	} {
		words := group.words
		if len(words) > topn {
			words = words[:max(topn, 0)]
		}

		first := true
		for rank, word := range words {
			key := strings.ToLower(word)
			if word == "" || seen[key] {
				continue
			}
			seen[key] = true

			label := fmt.Sprintf("%d: %s", len(list.Suggestions)+1, word)
			if first {
				label += groupHeaders[group.source]
				first = false
			}
			list.Suggestions = append(list.Suggestions, Suggestion{
				Word:   word,
				Source: group.source,
				Rank:   rank,
			})
			list.Labels = append(list.Labels, label)
		}
	}

	if len(list.Suggestions) == 0 {
		return List{}, ErrNoSuggestions
	}
	return list, nil
}
