package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/fancyword/internal/bootstrap"
)

type Source string

func (s *Source) Set(val string) error {
	for _, candidate := range allSources {
		if val == string(candidate) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("invalid source: %s", val)
}

func (s Source) String() string {
	return string(s)
}

func (s *Source) Type() string {
	return "Source"
}

const (
	SourceAll     Source = "all"
	SourceVector  Source = "vector"
	SourceLexical Source = "lexical"
)

var (
	_          pflag.Value = (*Source)(nil)
	allSources             = []Source{SourceAll, SourceVector, SourceLexical}
)

func (s Source) providerOptions() bootstrap.ProviderOptions {
	return bootstrap.ProviderOptions{
		DisableVector:  s == SourceLexical,
		DisableLexical: s == SourceVector,
	}
}
