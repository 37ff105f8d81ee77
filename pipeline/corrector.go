package pipeline

import (
	"sync"

	"ulfdata.com/udl/loader"
	"ulfdata.com/udl/logger"
	"ulfdata.com/udl/types"
)

type Corrector func(in <-chan types.Record) <-chan types.Record

// NewCorrector builds the stage overlaying sid-keyed merge patches onto
// records before parsing. A record whose patch fails to apply passes through
// uncorrected; the dataset must keep flowing.
func NewCorrector(corrections loader.Corrections) Corrector {
	udlLogger := logger.NewLogger("Corrector")

	return func(in <-chan types.Record) <-chan types.Record {
		out := make(chan types.Record)

		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for rec := range in {
				wg.Add(1)
				go func(rec types.Record) {
					defer wg.Done()
					patched, err := corrections.Apply(rec)
					if err != nil {
						udlLogger.Error().Err(err).Str("sid", rec.Sid).Msg("Failed to apply correction")
						out <- rec
						return
					}
					out <- patched
				}(rec)

			}

			wg.Wait()
		}()

		return out
	}
}
