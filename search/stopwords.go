package search

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultStopwords are the filler words dropped by the fallback tokenizer.
// Deliberately small: product attributes like "everyday" or "use" still carry
// search signal and must survive tokenization.
var defaultStopwords = map[string]bool{
	"a":    true,
	"an":   true,
	"the":  true,
	"and":  true,
	"or":   true,
	"for":  true,
	"of":   true,
	"to":   true,
	"in":   true,
	"on":   true,
	"at":   true,
	"with": true,
	"from": true,
	"by":   true,
	"is":   true,
	"are":  true,
	"was":  true,
	"be":   true,
	"i":    true,
	"me":   true,
	"my":   true,
	"we":   true,
	"you":  true,
	"it":   true,
	"that": true,
	"this": true,
	"as":   true,
	"want": true,
	"need": true,
	"some": true,
}

type stopwordsFile struct {
	Stopwords []string `yaml:"stopwords"`
}

// LoadStopwords reads a stopword list from a YAML file. An empty path returns
// the built-in set.
func LoadStopwords(path string) (map[string]bool, error) {
	if path == "" {
		return defaultStopwords, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	var file stopwordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse stopwords: %w", err)
	}
	if len(file.Stopwords) == 0 {
		return nil, fmt.Errorf("stopwords file %s lists no words", path)
	}
	set := make(map[string]bool, len(file.Stopwords))
	for _, w := range file.Stopwords {
		set[w] = true
	}
	return set, nil
}
