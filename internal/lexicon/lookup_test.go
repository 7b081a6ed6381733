package lexicon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCorpus struct {
	err error
}

func (c failingCorpus) Synsets(context.Context, string, string) ([]Synset, error) {
	return nil, c.err
}

func testCorpus() *MemoryCorpus {
	return NewMemoryCorpus([]Synset{
		{
			Name:       "happy.a.01",
			POS:        "a",
			Definition: "enjoying or showing or marked by joy or pleasure",
			Lemmas:     map[string][]string{"eng": {"happy"}, "jpn": {"幸せ"}},
			SimilarTo:  []string{"blessed.s.06", "blissful.s.01", "glad.a.01"},
		},
		{
			Name:       "felicitous.s.02",
			POS:        "s",
			Definition: "marked by good fortune",
			Lemmas:     map[string][]string{"eng": {"felicitous", "happy"}},
			SimilarTo:  []string{"fortunate.a.01"},
		},
		{
			Name:       "glad.s.02",
			POS:        "s",
			Definition: "eagerly disposed to act or to be of service",
			Lemmas:     map[string][]string{"eng": {"glad", "happy"}},
			SimilarTo:  []string{"happy.s.04", "willing.a.01"},
		},
		{
			Name:       "dog.n.01",
			POS:        "n",
			Definition: "a member of the genus Canis",
			Lemmas:     map[string][]string{"eng": {"dog", "domestic_dog"}},
		},
		{
			Name:       "chase.v.01",
			POS:        "v",
			Definition: "go after with the intent to catch",
			Lemmas:     map[string][]string{"eng": {"chase", "dog"}},
		},
		{
			Name:       "hot_dog.n.02",
			POS:        "n",
			Definition: "a frankfurter served hot on a bun",
			Lemmas:     map[string][]string{"eng": {"hotdog", "hot_dog"}},
		},
	})
}

func TestNewLookupRequest(t *testing.T) {
	req := NewLookupRequest("  Happy ", 5, "")
	assert.Equal(t, "happy", req.Word())
	assert.Equal(t, 5, req.Limit())
	assert.Equal(t, LanguageEnglish, req.Language())

	req = NewLookupRequest("幸せ", 3, "jpn")
	assert.Equal(t, "jpn", req.Language())
}

func TestLookup_SimilarWords(t *testing.T) {
	tests := []struct {
		name string
		req  LookupRequest
		want []string
	}{
		{
			name: "synset names first, then similar-to names, without the query word",
			req:  NewLookupRequest("happy", 10, "eng"),
			want: []string{"felicitous", "glad", "blessed", "blissful", "fortunate", "willing"},
		},
		{
			name: "truncated to the limit",
			req:  NewLookupRequest("happy", 3, "eng"),
			want: []string{"felicitous", "glad", "blessed"},
		},
		{
			name: "query word in other case is still excluded",
			req:  NewLookupRequest("HAPPY", 10, "eng"),
			want: []string{"felicitous", "glad", "blessed", "blissful", "fortunate", "willing"},
		},
		{
			name: "inflected form resolves to the base form",
			req:  NewLookupRequest("dogs", 10, "eng"),
			want: []string{"dog", "chase"},
		},
		{
			name: "multi-word phrase",
			req:  NewLookupRequest("hot dog", 10, "eng"),
			want: []string{},
		},
		{
			name: "other language",
			req:  NewLookupRequest("幸せ", 10, "jpn"),
			want: []string{"happy", "blessed", "blissful", "glad"},
		},
		{
			name: "unknown word",
			req:  NewLookupRequest("zzzqx", 10, "eng"),
			want: []string{},
		},
		{
			name: "unknown language",
			req:  NewLookupRequest("happy", 10, "xxx"),
			want: []string{},
		},
		{
			name: "zero limit",
			req:  NewLookupRequest("happy", 0, "eng"),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := NewLookup(testCorpus())
			got, err := lookup.SimilarWords(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), tt.req.Limit())
			assert.NotContains(t, got, tt.req.Word())
		})
	}
}

func TestLookup_SimilarWords_SelfReference(t *testing.T) {
	corpus := NewMemoryCorpus([]Synset{
		{
			Name:      "glad.a.01",
			POS:       "a",
			Lemmas:    map[string][]string{"eng": {"glad"}},
			SimilarTo: []string{"glad.s.02", "gladsome.s.01"},
		},
	})
	got, err := NewLookup(corpus).SimilarWords(context.Background(), NewLookupRequest("glad", 10, "eng"))
	require.NoError(t, err)
	assert.Equal(t, []string{"gladsome"}, got)
}

func TestLookup_Definitions_PartOfSpeechOrder(t *testing.T) {
	corpus := NewMemoryCorpus([]Synset{
		{Name: "saw.v.01", POS: "v", Definition: "cut with a saw", Lemmas: map[string][]string{"eng": {"saw"}}},
		{Name: "see.v.01", POS: "v", Definition: "perceive by sight", Lemmas: map[string][]string{"eng": {"see"}}},
		{Name: "saw.n.02", POS: "n", Definition: "hand tool having a toothed blade", Lemmas: map[string][]string{"eng": {"saw"}}},
		{Name: "leaf.n.01", POS: "n", Definition: "the main organ of photosynthesis", Lemmas: map[string][]string{"eng": {"leaf"}}},
		{Name: "leave.v.01", POS: "v", Definition: "go away from a place", Lemmas: map[string][]string{"eng": {"leave"}}},
		{Name: "good.a.01", POS: "a", Definition: "having desirable qualities", Lemmas: map[string][]string{"eng": {"good"}}},
		{Name: "better.s.01", POS: "s", Definition: "more desirable", Lemmas: map[string][]string{"eng": {"better"}}},
		{Name: "chiefly.r.01", Lemmas: map[string][]string{"eng": {"chiefly"}}},
	})

	tests := []struct {
		word string
		want []string
	}{
		{word: "saw", want: []string{"saw.n.02", "saw.v.01", "see.v.01"}},
		{word: "leaves", want: []string{"leaf.n.01", "leave.v.01"}},
		{word: "better", want: []string{"better.s.01", "good.a.01"}},
		{word: "chiefly", want: []string{"chiefly.r.01"}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			definitions, err := NewLookup(corpus).Definitions(context.Background(), NewLookupRequest(tt.word, 10, "eng"))
			require.NoError(t, err)
			names := make([]string, 0, len(definitions))
			for _, d := range definitions {
				names = append(names, d.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestLookup_SimilarWords_HugeLimit(t *testing.T) {
	got, err := NewLookup(testCorpus()).SimilarWords(context.Background(), NewLookupRequest("happy", 1<<40, "eng"))
	require.NoError(t, err)
	assert.Equal(t, []string{"felicitous", "glad", "blessed", "blissful", "fortunate", "willing"}, got)
}

func TestLookup_SimilarWords_CorpusError(t *testing.T) {
	lookup := NewLookup(failingCorpus{err: errors.New("connection lost")})
	_, err := lookup.SimilarWords(context.Background(), NewLookupRequest("happy", 10, "eng"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
}

func TestLookup_Definitions(t *testing.T) {
	tests := []struct {
		name    string
		req     LookupRequest
		want    []Definition
		wantErr error
	}{
		{
			name: "all synsets of the word",
			req:  NewLookupRequest("dog", 10, "eng"),
			want: []Definition{
				{Name: "dog.n.01", Definition: "a member of the genus Canis"},
				{Name: "chase.v.01", Definition: "go after with the intent to catch"},
			},
		},
		{
			name: "multi-word phrase",
			req:  NewLookupRequest("Hot Dog", 10, "eng"),
			want: []Definition{
				{Name: "hot_dog.n.02", Definition: "a frankfurter served hot on a bun"},
			},
		},
		{
			name:    "no definition",
			req:     NewLookupRequest("zzzqx", 10, "eng"),
			wantErr: ErrNoDefinition,
		},
		{
			name:    "empty word",
			req:     NewLookupRequest("   ", 10, "eng"),
			wantErr: ErrNoDefinition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLookup(testCorpus()).Definitions(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShortName(t *testing.T) {
	assert.Equal(t, "dog", ShortName("dog.n.01"))
	assert.Equal(t, "hot_dog", ShortName("hot_dog.n.02"))
	assert.Equal(t, "plain", ShortName("plain"))
}
