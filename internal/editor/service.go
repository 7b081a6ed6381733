package editor

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/fancyword/internal/lexicon"
	"github.com/at-ishikawa/fancyword/internal/suggest"
)

const CancelledIndex = -1

type SimilarityProvider interface {
	MostSimilar(ctx context.Context, word string, n int) ([]string, error)
}

type LexicalProvider interface {
	SimilarWords(ctx context.Context, req lexicon.LookupRequest) ([]string, error)
	Definitions(ctx context.Context, req lexicon.LookupRequest) ([]lexicon.Definition, error)
}

type Options struct {
	TopN     int
	Language string
	// Vector is nil when word2vec is disabled
	Vector SimilarityProvider
	// Lexicon is nil when the lexical corpus is disabled
	Lexicon LexicalProvider
}

// Service runs the fancyword commands against an editor.
type Service struct {
	topN     int
	language string
	vector   SimilarityProvider
	lexicon  LexicalProvider
}

func NewService(opts Options) *Service {
	language := opts.Language
	if language == "" {
		language = lexicon.LanguageEnglish
	}
	return &Service{
		topN:     opts.TopN,
		language: language,
		vector:   opts.Vector,
		lexicon:  opts.Lexicon,
	}
}

// FindSimilar offers the words similar to the selection and replaces the
// selection with the chosen one.
func (s *Service) FindSimilar(ctx context.Context, text TextSource, ui UserInteraction) error {
	original := text.Selection()
	region, word := selectedWord(text, original)
	if word == "" {
		return nil
	}
	text.SetSelection(region)

	list, err := s.SuggestWord(ctx, word, s.topN)
	if errors.Is(err, suggest.ErrNoSuggestions) {
		ui.ShowStatus(fmt.Sprintf("fancyword: can't find similar words for %s!", word))
		text.SetSelection(original)
		return nil
	}
	if err != nil {
		text.SetSelection(original)
		return fmt.Errorf("s.SuggestWord > %w", err)
	}

	index, err := ui.ShowChoiceList(ctx, list.Labels)
	if err != nil {
		text.SetSelection(original)
		return fmt.Errorf("ui.ShowChoiceList > %w", err)
	}
	if index < 0 || index >= list.Len() {
		text.SetSelection(original)
		return nil
	}

	if err := text.Replace(region, list.Suggestions[index].Word); err != nil {
		return fmt.Errorf("text.Replace > %w", err)
	}
	return nil
}

// LookUpDefinition shows the definitions of the selected word in a popup.
// The selection is left as it was.
func (s *Service) LookUpDefinition(ctx context.Context, text TextSource, ui UserInteraction) error {
	original := text.Selection()
	_, word := selectedWord(text, original)
	text.SetSelection(original)
	if word == "" {
		return nil
	}

	definitions, err := s.DefineWord(ctx, word)
	if err != nil {
		if !errors.Is(err, lexicon.ErrNoDefinition) {
			slog.Default().Error("failed to look up definitions", "word", word, "error", err)
		}
		ui.ShowStatus(fmt.Sprintf("fancyword: can't find definition words for %s!", word))
		return nil
	}

	if err := ui.ShowPopup(ctx, FormatDefinitions(definitions)); err != nil {
		return fmt.Errorf("ui.ShowPopup > %w", err)
	}
	return nil
}

// SuggestWord merges the suggestions of every enabled provider for word.
// A failing provider contributes no suggestions.
func (s *Service) SuggestWord(ctx context.Context, word string, topN int) (suggest.List, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if topN <= 0 {
		topN = s.topN
	}
	topN = min(topN, suggest.MaxTopN)
	return suggest.Merge(
		s.vectorSuggestions(ctx, word, topN),
		s.lexicalSuggestions(ctx, word, topN),
		topN,
	)
}

// DefineWord returns the definitions of word, or an error wrapping
// lexicon.ErrNoDefinition when there are none.
func (s *Service) DefineWord(ctx context.Context, word string) ([]lexicon.Definition, error) {
	if s.lexicon == nil {
		return nil, fmt.Errorf("%s: %w", word, lexicon.ErrNoDefinition)
	}
	definitions, err := s.lexicon.Definitions(ctx, lexicon.NewLookupRequest(word, s.topN, s.language))
	if err != nil {
		return nil, fmt.Errorf("lexicon.Definitions > %w", err)
	}
	return definitions, nil
}

func (s *Service) vectorSuggestions(ctx context.Context, word string, n int) []string {
	if s.vector == nil {
		return nil
	}
	words, err := s.vector.MostSimilar(ctx, word, n)
	if err != nil {
		slog.Default().Warn("word2vec-api server can't be reached, will try to start it next time",
			"word", word,
			"error", err,
		)
		return nil
	}
	return words
}

func (s *Service) lexicalSuggestions(ctx context.Context, word string, n int) []string {
	if s.lexicon == nil {
		return nil
	}
	words, err := s.lexicon.SimilarWords(ctx, lexicon.NewLookupRequest(word, n, s.language))
	if err != nil {
		slog.Default().Warn("failed to look up similar words in the corpus",
			"word", word,
			"error", err,
		)
		return nil
	}
	return words
}

// FormatDefinitions renders definitions as the popup body, one per line.
func FormatDefinitions(definitions []lexicon.Definition) string {
	lines := make([]string, 0, len(definitions))
	for _, d := range definitions {
		lines = append(lines, "<u>"+html.EscapeString(d.Name)+"</u>: "+html.EscapeString(d.Definition))
	}
	return strings.Join(lines, "<br>")
}

// selectedWord expands an empty selection to the word under it and returns
// the region and its lowercased text.
func selectedWord(text TextSource, selection Region) (Region, string) {
	region := selection
	if region.Empty() {
		region = text.ExpandToWord(region)
	}
	return region, strings.ToLower(strings.TrimSpace(text.Substr(region)))
}
