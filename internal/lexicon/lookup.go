package lexicon

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNoDefinition = errors.New("no definition found")

// LookupRequest is built once per user action and never modified.
type LookupRequest struct {
	word     string
	limit    int
	language string
}

func NewLookupRequest(word string, limit int, language string) LookupRequest {
	if language == "" {
		language = LanguageEnglish
	}
	return LookupRequest{
		word:     strings.ToLower(strings.TrimSpace(word)),
		limit:    limit,
		language: language,
	}
}

func (r LookupRequest) Word() string     { return r.word }
func (r LookupRequest) Limit() int       { return r.limit }
func (r LookupRequest) Language() string { return r.language }

type Lookup struct {
	corpus Corpus
}

func NewLookup(corpus Corpus) *Lookup {
	return &Lookup{corpus: corpus}
}

// SimilarWords returns the names of the word's synsets followed by the names of
// the synsets they are similar to, without duplicates or the word itself.
func (l *Lookup) SimilarWords(ctx context.Context, req LookupRequest) ([]string, error) {
	if req.Limit() <= 0 {
		return []string{}, nil
	}
	synsets, err := l.synsets(ctx, req)
	if err != nil {
		return nil, err
	}

	excluded := map[string]bool{
		req.Word():                 true,
		normalizeLemma(req.Word()): true,
	}
	seen := map[string]bool{}
	words := make([]string, 0, min(req.Limit(), len(synsets)))
	add := func(name string) {
		if name == "" || seen[name] || excluded[name] {
			return
		}
		seen[name] = true
		words = append(words, name)
	}

	for _, synset := range synsets {
		add(synset.ShortName())
	}
	for _, synset := range synsets {
		for _, similar := range synset.SimilarTo {
			add(ShortName(similar))
		}
	}

	if len(words) > req.Limit() {
		words = words[:req.Limit()]
	}
	return words, nil
}

// Definitions returns the gloss of every synset of the word, in corpus order.
func (l *Lookup) Definitions(ctx context.Context, req LookupRequest) ([]Definition, error) {
	synsets, err := l.synsets(ctx, req)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var definitions []Definition
	for _, synset := range synsets {
		if seen[synset.Name] {
			continue
		}
		seen[synset.Name] = true
		definitions = append(definitions, Definition{
			Name:       synset.Name,
			Definition: synset.Definition,
		})
	}
	if len(definitions) == 0 {
		return nil, fmt.Errorf("%s: %w", req.Word(), ErrNoDefinition)
	}
	return definitions, nil
}

// synsets returns the synsets of the word grouped by part of speech (nouns,
// verbs, adjectives, adverbs). Within each part of speech the word and its
// base forms are looked up in order. Synsets of other parts of speech follow.
func (l *Lookup) synsets(ctx context.Context, req LookupRequest) ([]Synset, error) {
	lemma := normalizeLemma(req.Word())
	if lemma == "" {
		return nil, nil
	}

	var result []Synset
	seen := map[string]bool{}
	collect := func(synsets []Synset, pos string) {
		for _, synset := range synsets {
			if seen[synset.Name] {
				continue
			}
			if pos != "" && !synset.matchesPOS(pos) {
				continue
			}
			seen[synset.Name] = true
			result = append(result, synset)
		}
	}

	surface, err := l.corpus.Synsets(ctx, lemma, req.Language())
	if err != nil {
		return nil, fmt.Errorf("corpus.Synsets(%s) > %w", lemma, err)
	}

	// Inflection handling exists only for English
	if req.Language() == LanguageEnglish {
		fetched := map[string][]Synset{lemma: surface}
		for _, pos := range posOrder {
			for _, forms := range morphyPasses(lemma, pos) {
				found := false
				for _, form := range forms {
					synsets, ok := fetched[form]
					if !ok {
						synsets, err = l.corpus.Synsets(ctx, form, req.Language())
						if err != nil {
							return nil, fmt.Errorf("corpus.Synsets(%s) > %w", form, err)
						}
						fetched[form] = synsets
					}
					if hasPOS(synsets, pos) {
						found = true
						collect(synsets, pos)
					}
				}
				if found {
					break
				}
			}
		}
	}
	collect(surface, "")
	return result, nil
}

func hasPOS(synsets []Synset, pos string) bool {
	for _, synset := range synsets {
		if synset.matchesPOS(pos) {
			return true
		}
	}
	return false
}
