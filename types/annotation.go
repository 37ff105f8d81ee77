package types

// Sentinel labels for absent tense / semantic class values. Downstream
// consumers match these byte-for-byte, so they are part of the contract.
const (
	NoTenseToken = "@@<NO_TENSE>@@"
	NoClassToken = "@@<NO_CLASS>@@"
)

type AnnotatedToken struct {
	Word  string
	Tense string
	Class string
}

// ParsedAnnotation holds the aligned sequences decomposed from one raw ULF
// annotation. Index i across Words, Tenses and Classes describes one
// post-expansion token; Tokens keeps those tokens before decomposition.
type ParsedAnnotation struct {
	Tokens          []string
	Words           []string
	Tenses          []string
	Classes         []string
	IsMultiSentence bool
}
