package ulf

import (
	"strings"

	"ulfdata.com/udl/types"
)

// Decompose extracts the optional leading tense tag and optional trailing
// semantic class from one token. Both splits take only the first delimiter
// occurrence; extra spaces or dots stay verbatim in the trailing field.
// Total over all inputs: the empty string degenerates to an empty word with
// both sentinels.
func Decompose(token string) types.AnnotatedToken {
	tense := types.NoTenseToken
	rest := token
	if parts := strings.SplitN(token, " ", 2); len(parts) == 2 {
		tense = parts[0]
		rest = parts[1]
	}

	word := rest
	class := types.NoClassToken
	if parts := strings.SplitN(rest, ".", 2); len(parts) == 2 {
		word = parts[0]
		class = parts[1]
	}

	return types.AnnotatedToken{
		Word:  word,
		Tense: tense,
		Class: class,
	}
}
