package ulf

import "strings"

// Some ULF constructs pack several semantic units into one parenthesized
// group: an infinitival TO marker, or a token carrying two dotted suffixes.
// Segments matching any expansion rule are flattened on single spaces so the
// output stays one flat per-word sequence.
type expansionRule struct {
	name  string
	match func(seg string) bool
}

// The rule list is the single place the expansion predicate lives.
// TO is matched as a substring, not a whole token; corpus entries embedding
// TO in a longer word expand too, and that behavior is load-bearing.
var expansionRules = []expansionRule{
	{
		name:  "multiple_class_suffixes",
		match: func(seg string) bool { return strings.Count(seg, ".") > 1 },
	},
	{
		name:  "infinitive_marker",
		match: func(seg string) bool { return strings.Contains(seg, "TO") },
	},
}

func shouldExpand(seg string) bool {
	for _, rule := range expansionRules {
		if rule.match(seg) {
			return true
		}
	}
	return false
}

// Expand turns segments into the final token sequence, splitting the ones
// the rule table selects and passing the rest through unchanged.
func Expand(segs []string) []string {
	tokens := make([]string, 0, len(segs))
	for _, seg := range segs {
		if shouldExpand(seg) {
			tokens = append(tokens, strings.Split(seg, " ")...)
			continue
		}
		tokens = append(tokens, seg)
	}
	return tokens
}
