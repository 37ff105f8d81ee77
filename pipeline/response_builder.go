package pipeline

import (
	"sort"

	"ulfdata.com/udl/types"
	"ulfdata.com/udl/vocab"
)

type Result struct {
	ConfigName string
	Data       interface{}
}

// NewParsedResult collects the parsed records of one ulf_parse configuration
// and reassembles them in dataset order. The parser stage is unordered, so
// the sort on Index is what upholds the output ordering contract.
func NewParsedResult() func(in <-chan types.ParsedRecord, cfg types.Configuration, request Request) <-chan Result {

	return func(in <-chan types.ParsedRecord, cfg types.Configuration, request Request) <-chan Result {
		out := make(chan Result)
		go func() {
			defer close(out)

			records := make([]types.ParsedRecord, 0)
			for rec := range in {
				records = append(records, rec)
			}
			sort.Slice(records, func(i, j int) bool {
				return records[i].Index < records[j].Index
			})

			out <- Result{
				ConfigName: cfg.Name,
				Data:       records,
			}
		}()
		return out
	}
}

// NewVocabResult folds the parsed records of a label_vocab configuration
// into a label inventory. The configuration's features name the namespaces
// to count.
func NewVocabResult() func(in <-chan types.ParsedRecord, cfg types.Configuration, request Request) <-chan Result {

	return func(in <-chan types.ParsedRecord, cfg types.Configuration, request Request) <-chan Result {
		out := make(chan Result)
		go func() {
			defer close(out)

			inv := vocab.NewInventory(namespaces(cfg))
			for rec := range in {
				inv.Add(rec)
			}

			out <- Result{
				ConfigName: cfg.Name,
				Data:       inv.Summarize(),
			}
		}()
		return out
	}
}

func namespaces(cfg types.Configuration) []string {
	known := []string{types.WordsNamespace, types.TensesNamespace, types.ClassesNamespace}
	selected := make([]string, 0, len(known))
	for _, ns := range known {
		if cfg.CheckFeature(ns) {
			selected = append(selected, ns)
		}
	}
	return selected
}
