package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMorphyPasses(t *testing.T) {
	tests := []struct {
		name string
		word string
		pos  string
		want [][]string
	}{
		{
			name: "noun plural",
			word: "churches",
			pos:  "n",
			want: [][]string{{"churches", "churche", "church"}},
		},
		{
			name: "verb third person",
			word: "churches",
			pos:  "v",
			want: [][]string{{"churches", "churche", "church"}},
		},
		{
			name: "men to man",
			word: "women",
			pos:  "n",
			want: [][]string{{"women", "woman"}},
		},
		{
			name: "superlative",
			word: "happiest",
			pos:  "a",
			want: [][]string{{"happiest", "happi", "happie"}},
		},
		{
			name: "later passes detach again",
			word: "glasses",
			pos:  "n",
			want: [][]string{{"glasses", "glasse", "glass"}, {"glas"}, {"gla"}},
		},
		{
			name: "irregular verb skips the rules",
			word: "running",
			pos:  "v",
			want: [][]string{{"running", "run"}},
		},
		{
			name: "irregular adjective",
			word: "better",
			pos:  "a",
			want: [][]string{{"better", "good"}},
		},
		{
			name: "no rule applies",
			word: "glad",
			pos:  "a",
			want: [][]string{{"glad"}},
		},
		{
			name: "adverbs have no rules",
			word: "quickly",
			pos:  "r",
			want: [][]string{{"quickly"}},
		},
		{
			name: "empty word",
			word: "",
			pos:  "n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, morphyPasses(tt.word, tt.pos))
		})
	}
}
