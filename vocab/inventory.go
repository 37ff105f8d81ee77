package vocab

import (
	"ulfdata.com/udl/types"
	"ulfdata.com/udl/utils"
)

// Inventory accumulates the distinct labels seen in parsed records, per
// namespace. Labels are keyed by murmur3 hash with the string itself interned
// in the global store, so a large corpus carries each label once. Not safe
// for concurrent Add calls; the pipeline feeds an Inventory from a single
// result-builder goroutine.
type Inventory struct {
	namespaces []string
	counts     map[string]map[uint64]*labelCount
	records    int
}

type labelCount struct {
	label *string
	count int
}

// Summary is the JSON shape reported for a label_vocab configuration.
type Summary struct {
	Records    int                       `json:"records"`
	Namespaces map[string]map[string]int `json:"namespaces"`
}

func NewInventory(namespaces []string) *Inventory {
	counts := make(map[string]map[uint64]*labelCount, len(namespaces))
	for _, ns := range namespaces {
		counts[ns] = make(map[uint64]*labelCount)
	}
	return &Inventory{
		namespaces: namespaces,
		counts:     counts,
	}
}

func (inv *Inventory) Add(rec types.ParsedRecord) {
	inv.records++
	for _, ns := range inv.namespaces {
		switch ns {
		case types.WordsNamespace:
			inv.addLabels(ns, rec.Words)
		case types.TensesNamespace:
			inv.addLabels(ns, rec.Tenses)
		case types.ClassesNamespace:
			inv.addLabels(ns, rec.Classes)
		}
	}
}

func (inv *Inventory) addLabels(namespace string, labels []string) {
	store := utils.GlobalStringStore()
	counts := inv.counts[namespace]
	for _, label := range labels {
		key := utils.HashString(label)
		entry, ok := counts[key]
		if !ok {
			entry = &labelCount{label: store.GetPointer(label)}
			counts[key] = entry
		}
		entry.count++
	}
}

func (inv *Inventory) Summarize() Summary {
	summary := Summary{
		Records:    inv.records,
		Namespaces: make(map[string]map[string]int, len(inv.counts)),
	}
	for ns, counts := range inv.counts {
		labels := make(map[string]int, len(counts))
		for _, entry := range counts {
			labels[*entry.label] = entry.count
		}
		summary.Namespaces[ns] = labels
	}
	return summary
}
