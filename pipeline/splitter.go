package pipeline

import (
	"sync"

	"ulfdata.com/udl/types"
)

func NewRecordChannelSplitter(n int) func(in <-chan types.Record) []chan types.Record {

	return func(in <-chan types.Record) []chan types.Record {
		outs := make([]chan types.Record, n)
		// init channels
		for i := 0; i < n; i++ {
			outs[i] = make(chan types.Record)
		}

		go func() {
			defer closeAllChannels(outs)
			var wg sync.WaitGroup

			for rec := range in {
				wg.Add(1)
				go func(rec types.Record) {
					defer wg.Done()
					for _, out := range outs {
						out <- rec
					}
				}(rec)

			}

			wg.Wait()
		}()
		return outs
	}
}

func closeAllChannels(outs []chan types.Record) {
	for _, out := range outs {
		close(out)
	}
}
