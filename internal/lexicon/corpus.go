package lexicon

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Corpus returns the synsets a lemma belongs to in a language.
// An unknown lemma is not an error; it has no synsets.
type Corpus interface {
	Synsets(ctx context.Context, lemma string, lang string) ([]Synset, error)
}

//go:embed corpus/default.yaml
var defaultCorpus []byte

type corpusFile struct {
	Synsets []Synset `yaml:"synsets" msgpack:"synsets"`
}

// MemoryCorpus keeps every synset in memory with a trie over "lang:lemma" keys.
type MemoryCorpus struct {
	synsets []Synset
	index   *patricia.Trie
}

func NewMemoryCorpus(synsets []Synset) *MemoryCorpus {
	c := &MemoryCorpus{
		synsets: synsets,
		index:   patricia.NewTrie(),
	}
	for i, synset := range synsets {
		for lang, lemmas := range synset.Lemmas {
			for _, lemma := range lemmas {
				c.add(indexKey(lang, normalizeLemma(lemma)), i)
			}
		}
	}
	return c
}

func indexKey(lang, lemma string) patricia.Prefix {
	return patricia.Prefix(lang + ":" + lemma)
}

func (c *MemoryCorpus) add(key patricia.Prefix, position int) {
	item := c.index.Get(key)
	if item == nil {
		c.index.Insert(key, []int{position})
		return
	}
	positions := item.([]int)
	if positions[len(positions)-1] == position {
		return
	}
	c.index.Set(key, append(positions, position))
}

func (c *MemoryCorpus) Synsets(_ context.Context, lemma string, lang string) ([]Synset, error) {
	item := c.index.Get(indexKey(lang, lemma))
	if item == nil {
		return nil, nil
	}
	positions := item.([]int)
	result := make([]Synset, 0, len(positions))
	for _, p := range positions {
		result = append(result, c.synsets[p])
	}
	return result, nil
}

// Complete returns up to n lemmas of lang starting with prefix, sorted.
func (c *MemoryCorpus) Complete(lang, prefix string, n int) []string {
	if n <= 0 {
		return nil
	}
	keyPrefix := lang + ":"
	var lemmas []string
	_ = c.index.VisitSubtree(indexKey(lang, normalizeLemma(prefix)), func(p patricia.Prefix, _ patricia.Item) error {
		lemmas = append(lemmas, strings.TrimPrefix(string(p), keyPrefix))
		return nil
	})
	sort.Strings(lemmas)
	if len(lemmas) > n {
		lemmas = lemmas[:n]
	}
	return lemmas
}

func (c *MemoryCorpus) Len() int {
	return len(c.synsets)
}

// DefaultCorpus returns the corpus embedded in the binary.
func DefaultCorpus() (*MemoryCorpus, error) {
	synsets, err := decodeYAML(defaultCorpus)
	if err != nil {
		return nil, fmt.Errorf("decodeYAML(embedded) > %w", err)
	}
	return NewMemoryCorpus(synsets), nil
}

// LoadCorpus reads a YAML corpus or a compiled msgpack snapshot, chosen by extension.
func LoadCorpus(path string) (*MemoryCorpus, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}

	var synsets []Synset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		synsets, err = decodeYAML(contents)
	case ".msgpack", ".bin":
		synsets, err = decodeSnapshot(contents)
	default:
		return nil, fmt.Errorf("unsupported corpus format: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("corpus %s > %w", path, err)
	}
	return NewMemoryCorpus(synsets), nil
}

// Compile converts a YAML corpus into a msgpack snapshot.
func Compile(src, dst string) (int, error) {
	contents, err := os.ReadFile(src)
	if err != nil {
		return 0, fmt.Errorf("os.ReadFile > %w", err)
	}
	synsets, err := decodeYAML(contents)
	if err != nil {
		return 0, fmt.Errorf("decodeYAML > %w", err)
	}
	snapshot, err := encodeSnapshot(synsets)
	if err != nil {
		return 0, fmt.Errorf("encodeSnapshot > %w", err)
	}
	if err := os.WriteFile(dst, snapshot, 0644); err != nil {
		return 0, fmt.Errorf("os.WriteFile > %w", err)
	}
	return len(synsets), nil
}

func decodeYAML(contents []byte) ([]Synset, error) {
	var file corpusFile
	if err := yaml.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	return file.Synsets, nil
}

func decodeSnapshot(contents []byte) ([]Synset, error) {
	var file corpusFile
	if err := msgpack.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("msgpack.Unmarshal > %w", err)
	}
	return file.Synsets, nil
}

func encodeSnapshot(synsets []Synset) ([]byte, error) {
	contents, err := msgpack.Marshal(corpusFile{Synsets: synsets})
	if err != nil {
		return nil, fmt.Errorf("msgpack.Marshal > %w", err)
	}
	return contents, nil
}
