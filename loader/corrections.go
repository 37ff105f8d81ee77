package loader

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	jsonpatch "github.com/evanphx/json-patch"

	"ulfdata.com/udl/types"
)

// Corrections are sid-keyed JSON merge patches fixing up corpus entries
// without editing the dataset file itself. A patch applies to the object
// form of a record, e.g. {"ulf": "(PRES run.v)"} replaces the annotation
// and leaves the other fields alone.
type Corrections map[string]json.RawMessage

type recordObject struct {
	Sid      string `json:"sid"`
	Sentence string `json:"sentence"`
	ULF      string `json:"ulf"`
	AMR      string `json:"amr"`
}

func LoadCorrections(filePath string) (Corrections, error) {
	buf, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var corrections Corrections
	if err := json.Unmarshal(buf, &corrections); err != nil {
		return nil, fmt.Errorf("corrections file %s: %w", filePath, err)
	}
	return corrections, nil
}

// Apply merges the record's patch, if any. Records without a correction pass
// through untouched. Index is never patched.
func (c Corrections) Apply(rec types.Record) (types.Record, error) {
	patch, ok := c[rec.Sid]
	if !ok {
		return rec, nil
	}
	original, err := json.Marshal(recordObject{
		Sid:      rec.Sid,
		Sentence: rec.Sentence,
		ULF:      rec.ULF,
		AMR:      rec.AMR,
	})
	if err != nil {
		return rec, err
	}
	merged, err := jsonpatch.MergePatch(original, patch)
	if err != nil {
		return rec, fmt.Errorf("correction for sid %s: %w", rec.Sid, err)
	}
	var patched recordObject
	if err := json.Unmarshal(merged, &patched); err != nil {
		return rec, fmt.Errorf("correction for sid %s: %w", rec.Sid, err)
	}
	rec.Sentence = patched.Sentence
	rec.ULF = patched.ULF
	rec.AMR = patched.AMR
	return rec, nil
}
