package loader

import (
	"encoding/json"
	"fmt"

	"ulfdata.com/udl/types"
)

// MalformedRecordError marks one undecodable dataset entry. The batch keeps
// going; the caller decides whether to log or fail.
type MalformedRecordError struct {
	Index  int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("record %d is malformed: %s", e.Index, e.Reason)
}

// Decode parses a dataset file: a JSON array whose elements are
// [sid, sentence, ulf, amr] tuples. Tuples with extra trailing elements are
// accepted; the extras are ignored. A non-array input fails the whole batch,
// anything else only the affected record.
func Decode(data []byte) ([]types.Record, []*MalformedRecordError, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil, fmt.Errorf("dataset is not a JSON array: %w", err)
	}

	records := make([]types.Record, 0, len(items))
	var malformed []*MalformedRecordError
	for i, item := range items {
		var fields []string
		if err := json.Unmarshal(item, &fields); err != nil {
			malformed = append(malformed, &MalformedRecordError{
				Index:  i,
				Reason: fmt.Sprintf("not a string tuple: %v", err),
			})
			continue
		}
		if len(fields) < 4 {
			malformed = append(malformed, &MalformedRecordError{
				Index:  i,
				Reason: fmt.Sprintf("expected 4 fields, got %d", len(fields)),
			})
			continue
		}
		records = append(records, types.Record{
			Index:    i,
			Sid:      fields[0],
			Sentence: fields[1],
			ULF:      fields[2],
			AMR:      fields[3],
		})
	}
	return records, malformed, nil
}
