package dialect

import (
	_ "embed"
	"strings"
	"sync"
)

// Sourced from https://docs.aws.amazon.com/redshift/latest/dg/r_pg_keywords.html
//
//go:embed redshift_reserved_words.txt
var reservedWordsRaw string

var reservedWords = sync.OnceValue(func() map[string]struct{} {
	words := make(map[string]struct{})
	for _, line := range strings.Split(reservedWordsRaw, "\n") {
		if word := strings.TrimSpace(line); word != "" {
			words[strings.ToLower(word)] = struct{}{}
		}
	}

	return words
})

func (RedshiftDialect) IsReservedWord(word string) bool {
	_, isOk := reservedWords()[strings.ToLower(word)]
	return isOk
}
