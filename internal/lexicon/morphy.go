package lexicon

import "strings"

// posOrder is the order synsets of different parts of speech are returned in.
var posOrder = []string{"n", "v", "a", "r"}

type detachment struct {
	suffix      string
	replacement string
}

// Detachment rules of the WordNet morphological processor, by part of speech.
var detachmentRules = map[string][]detachment{
	"n": {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	"v": {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	"a": {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

// Irregular forms the detachment rules cannot reach. A word listed here is
// never passed through the rules for that part of speech.
var morphyExceptions = map[string]map[string][]string{
	"n": {
		"children": {"child"}, "mice": {"mouse"}, "geese": {"goose"},
		"feet": {"foot"}, "teeth": {"tooth"}, "people": {"person"},
		"oxen": {"ox"}, "leaves": {"leaf"}, "lives": {"life"},
		"knives": {"knife"}, "wives": {"wife"}, "halves": {"half"},
		"criteria": {"criterion"}, "phenomena": {"phenomenon"},
		"analyses": {"analysis"}, "crises": {"crisis"},
	},
	"v": {
		"was": {"be"}, "were": {"be"}, "been": {"be"}, "is": {"be"}, "are": {"be"},
		"had": {"have"}, "did": {"do"}, "done": {"do"},
		"went": {"go"}, "gone": {"go"}, "ran": {"run"}, "running": {"run"},
		"made": {"make"}, "said": {"say"}, "took": {"take"}, "taken": {"take"},
		"saw": {"see"}, "seen": {"see"}, "came": {"come"}, "got": {"get"},
		"gave": {"give"}, "given": {"give"}, "knew": {"know"}, "known": {"know"},
		"thought": {"think"}, "found": {"find"}, "told": {"tell"},
		"became": {"become"}, "left": {"leave"}, "felt": {"feel"},
		"brought": {"bring"}, "began": {"begin"}, "begun": {"begin"},
		"kept": {"keep"}, "held": {"hold"}, "wrote": {"write"}, "written": {"write"},
		"stood": {"stand"}, "heard": {"hear"}, "meant": {"mean"}, "met": {"meet"},
		"sat": {"sit"}, "sitting": {"sit"}, "spoke": {"speak"}, "spoken": {"speak"},
		"led": {"lead"}, "grew": {"grow"}, "grown": {"grow"}, "lost": {"lose"},
		"fell": {"fall"}, "fallen": {"fall"}, "sent": {"send"}, "built": {"build"},
		"chose": {"choose"}, "chosen": {"choose"}, "ate": {"eat"}, "eaten": {"eat"},
		"swimming": {"swim"}, "getting": {"get"}, "putting": {"put"},
		"stopping": {"stop"}, "planning": {"plan"},
	},
	"a": {
		"better": {"good"}, "best": {"good"}, "worse": {"bad"}, "worst": {"bad"},
		"further": {"far"}, "farther": {"far"}, "furthest": {"far"}, "farthest": {"far"},
		"elder": {"old"}, "eldest": {"old"},
	},
	"r": {
		"better": {"well"}, "best": {"well"}, "worse": {"badly"}, "worst": {"badly"},
	},
}

// morphyPasses returns the forms to look word up by for pos, grouped in passes.
// The first pass holds word itself, then either its listed irregular base forms
// or the forms one detachment away. Each later pass detaches once more from the
// previous one. Callers stop at the first pass the corpus knows any form of.
func morphyPasses(word, pos string) [][]string {
	if word == "" {
		return nil
	}
	if exceptions, ok := morphyExceptions[pos][word]; ok {
		return [][]string{append([]string{word}, exceptions...)}
	}

	seen := map[string]bool{word: true}
	passes := [][]string{append([]string{word}, detach([]string{word}, pos, seen)...)}
	forms := passes[0][1:]
	for len(forms) > 0 {
		forms = detach(forms, pos, seen)
		if len(forms) > 0 {
			passes = append(passes, forms)
		}
	}
	return passes
}

// detach applies every rule of pos to forms, skipping forms already produced.
func detach(forms []string, pos string, seen map[string]bool) []string {
	var result []string
	for _, form := range forms {
		for _, rule := range detachmentRules[pos] {
			if !strings.HasSuffix(form, rule.suffix) {
				continue
			}
			base := strings.TrimSuffix(form, rule.suffix) + rule.replacement
			if base == "" || seen[base] {
				continue
			}
			seen[base] = true
			result = append(result, base)
		}
	}
	return result
}
