package pipeline

// Request carries one dataset through the pipeline. Body is the raw JSON
// array of [sid, sentence, ulf, amr] tuples; Tid tags every log line of the
// run.
type Request struct {
	Body string `json:"body"`
	Tid  string `json:"tid"`
}

// Pipeline runs one request and delivers the response JSON on the returned
// channel.
type Pipeline func(request Request) <-chan string
