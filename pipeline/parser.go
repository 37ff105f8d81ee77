package pipeline

import (
	"sync"

	"ulfdata.com/udl/logger"
	"ulfdata.com/udl/types"
	"ulfdata.com/udl/ulf"
)

type Parser func(in <-chan types.Record) <-chan types.ParsedRecord

// NewParser builds the stage decomposing each record's ULF annotation into
// aligned sequences. Records are independent, so each one is parsed on its
// own goroutine; order is restored later by the result builders.
func NewParser() (Parser, error) {
	udlLogger := logger.NewLogger("ULF Parser")

	return func(in <-chan types.Record) <-chan types.ParsedRecord {
		out := make(chan types.ParsedRecord)

		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for rec := range in {
				wg.Add(1)
				go func(rec types.Record) {
					defer wg.Done()
					ann := ulf.Parse(rec.ULF)
					udlLogger.Debug().
						Str("sid", rec.Sid).
						Int("tokens", len(ann.Words)).
						Bool("multi_sentence", ann.IsMultiSentence).
						Msg("Parsed ULF annotation")

					out <- types.ParsedRecord{
						Index:           rec.Index,
						Words:           ann.Words,
						Tenses:          ann.Tenses,
						Classes:         ann.Classes,
						IsMultiSentence: ann.IsMultiSentence,
						Metadata: types.Metadata{
							Sid:       rec.Sid,
							Sentence:  rec.Sentence,
							RawULF:    rec.ULF,
							AMR:       rec.AMR,
							ParsedULF: ann.Tokens,
						},
					}
				}(rec)

			}

			wg.Wait()
		}()

		return out
	}, nil
}
