package ulf

// MultiSentMarker is the literal leading segment flagging that an annotation
// spans more than one sentence. It is only recognized at position 0.
const MultiSentMarker = "MULTI-SENT"

// Segments splits a raw ULF annotation into its parenthesis-delimited
// segments. Whitespace adjacent to a delimiter (or to the string boundary)
// belongs to the delimiter; whitespace between two content runs stays inside
// the segment. Empty segments are never materialized, so any string is
// accepted: no parentheses yields the whole string as one segment, and a
// blank string yields nothing.
func Segments(raw string) []string {
	segs := make([]string, 0, 8)
	start := -1
	end := -1
	flush := func() {
		if start >= 0 {
			segs = append(segs, raw[start:end])
		}
		start, end = -1, -1
	}
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '(', ')':
			flush()
		case ' ', '\t', '\n', '\r':
			// delimiter-adjacent until more content follows
		default:
			if start < 0 {
				start = i
			}
			end = i + 1
		}
	}
	flush()
	return segs
}

// StripMultiSentMarker consumes a leading MultiSentMarker segment if present
// and reports whether it was there. The marker never matches at any later
// position.
func StripMultiSentMarker(segs []string) ([]string, bool) {
	if len(segs) > 0 && segs[0] == MultiSentMarker {
		return segs[1:], true
	}
	return segs, false
}
