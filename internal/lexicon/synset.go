package lexicon

import "strings"

const LanguageEnglish = "eng"

// Synset is one sense shared by a group of lemmas.
type Synset struct {
	// Name is the canonical id, e.g. dog.n.01
	Name       string              `yaml:"name" msgpack:"name" db:"name"`
	POS        string              `yaml:"pos" msgpack:"pos" db:"pos"`
	Definition string              `yaml:"definition" msgpack:"definition" db:"definition"`
	Lemmas     map[string][]string `yaml:"lemmas" msgpack:"lemmas" db:"-"`
	SimilarTo  []string            `yaml:"similar_to,omitempty" msgpack:"similar_to,omitempty" db:"-"`
}

// ShortName returns the lemma part of the synset name.
func (s Synset) ShortName() string {
	return ShortName(s.Name)
}

// ShortName returns the part of a synset name before the first dot.
func ShortName(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// matchesPOS treats adjective satellites as adjectives.
func (s Synset) matchesPOS(pos string) bool {
	if s.POS == pos {
		return true
	}
	return pos == "a" && s.POS == "s"
}

// Definition is the gloss of one synset.
type Definition struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

// normalizeLemma turns a selected phrase into the form lemmas are indexed by.
func normalizeLemma(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	return strings.Join(strings.Fields(word), "_")
}
