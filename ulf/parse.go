package ulf

import "ulfdata.com/udl/types"

// Parse runs the full decomposition of one raw ULF annotation: segmentation,
// multi-sentence marker handling, token expansion and tense/class
// decomposition. The returned sequences are always aligned
// (len(Words) == len(Tenses) == len(Classes)) and the multi-sentence flag is
// local to this call; records never observe each other.
func Parse(raw string) types.ParsedAnnotation {
	segs, multiSent := StripMultiSentMarker(Segments(raw))
	tokens := Expand(segs)

	ann := types.ParsedAnnotation{
		Tokens:          tokens,
		Words:           make([]string, len(tokens)),
		Tenses:          make([]string, len(tokens)),
		Classes:         make([]string, len(tokens)),
		IsMultiSentence: multiSent,
	}
	for i, token := range tokens {
		decomposed := Decompose(token)
		ann.Words[i] = decomposed.Word
		ann.Tenses[i] = decomposed.Tense
		ann.Classes[i] = decomposed.Class
	}
	return ann
}
