package types

// Record is one corpus entry decoded from a [sid, sentence, ulf, amr] tuple.
// Index is the position within the dataset file; pipeline stages run
// unordered, so the result builders sort by it.
type Record struct {
	Index    int
	Sid      string
	Sentence string
	ULF      string
	AMR      string
}

type Metadata struct {
	Sid       string   `json:"sid"`
	Sentence  string   `json:"sentence"`
	RawULF    string   `json:"raw_ulf"`
	AMR       string   `json:"amr"`
	ParsedULF []string `json:"parsed_ulf"`
}

type ParsedRecord struct {
	Index           int      `json:"-"`
	Words           []string `json:"words"`
	Tenses          []string `json:"tenses"`
	Classes         []string `json:"classes"`
	IsMultiSentence bool     `json:"isMultiSentence"`
	Metadata        Metadata `json:"metadata"`
}
