package pipeline

import (
	"encoding/json"

	"ulfdata.com/udl/loader"
	"ulfdata.com/udl/logger"
	"ulfdata.com/udl/types"
)

type DefaultULFParams struct {
	Configurations []types.Configuration `json:"configurations"`
}

func GetDefaultULFParams(cfgs []types.Configuration) DefaultULFParams {
	return DefaultULFParams{
		Configurations: cfgs,
	}
}

// DefaultULF assembles the dataset pipeline: decode the request body into
// records, fan them out to one branch per configuration, and gather each
// branch's result into the response object keyed by configuration name.
func DefaultULF(params DefaultULFParams) (Pipeline, error) {
	udlLogger := logger.NewLogger("Default ULF pipeline")
	errLogger := udlLogger.With().Caller().Logger()
	udlLogger.Info().
		Interface("params", params).
		Msg("Starting default ULF pipeline (see parameters in 'params' field)")

	parser, err := NewParser()
	if err != nil {
		errLogger.Err(err).Msg("Failed to create parser")
		return nil, err
	}

	splitter := NewRecordChannelSplitter(len(params.Configurations))

	correctors := make(map[string]Corrector)
	for _, cfg := range params.Configurations {
		if !cfg.CheckFeature(types.CorrectionsFeature) {
			continue
		}
		corrections, err := loader.LoadCorrections(cfg.Params.UDL.CorrectionsFile)
		if err != nil {
			errLogger.Err(err).
				Str("corrections_file", cfg.Params.UDL.CorrectionsFile).
				Str("config_name", cfg.Name).
				Msg("Failed to load corrections")
			return nil, err
		}
		correctors[cfg.Name] = NewCorrector(corrections)
	}

	parsedResult := NewParsedResult()

	vocabResult := NewVocabResult()

	return func(request Request) <-chan string {
		responseChan := make(chan string)
		pplnLog := udlLogger.With().Str("tid", request.Tid).Logger()
		pplnLog.Info().Msg("Started default ULF pipeline")
		errLogger = pplnLog.With().Caller().Logger()

		go func() {
			var in = make(chan types.Record)

			split := splitter(in)

			resultChannel := make(chan Result)
			defer close(resultChannel)

			for i, cfg := range params.Configurations {
				records := (<-chan types.Record)(split[i])
				if corrector, hasCorrector := correctors[cfg.Name]; hasCorrector {
					records = corrector(records)
				}

				switch cfg.Pipeline {
				case types.ULFParsePipeline:
					{
						parsed := parser(records)
						defRes := parsedResult(parsed, cfg, request)
						connect(defRes, resultChannel)
					}
				case types.LabelVocabPipeline:
					{
						parsed := parser(records)
						vocRes := vocabResult(parsed, cfg, request)
						connect(vocRes, resultChannel)
					}
				}
			}

			records, malformed, err := loader.Decode([]byte(request.Body))
			if err != nil {
				errLogger.Err(err).Str("tid", request.Tid).Msg("Failed to decode dataset")
			}
			for _, recErr := range malformed {
				pplnLog.Warn().
					Int("record_index", recErr.Index).
					Str("reason", recErr.Reason).
					Msg("Skipping malformed record")
			}
			for _, rec := range records {
				in <- rec
			}
			close(in)

			response := make(map[string]interface{})

			for i := 0; i < len(params.Configurations); i++ {
				res := <-resultChannel
				pplnLog.Info().
					Str("config_name", res.ConfigName).
					Msg("Finished pipeline for configuration")
				response[res.ConfigName] = res.Data
			}

			buf, err := json.Marshal(response)
			if err != nil {
				errLogger.Err(err).Str("tid", request.Tid).Msg("Failed to marshall response")
			}
			pplnLog.Info().Msg("Finished default ULF pipeline")
			txt := string(buf)
			responseChan <- txt
		}()

		return responseChan
	}, nil

}

func connect(from <-chan Result, to chan<- Result) {
	go func() {
		for v := range from {
			to <- v
		}
	}()
}
