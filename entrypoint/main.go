package main

import (
	"ulfdata.com/udl/api"
	"ulfdata.com/udl/logger"
	"ulfdata.com/udl/pipeline"
	"ulfdata.com/udl/types"
	"ulfdata.com/udl/worker"
	"flag"
	"fmt"
	"github.com/kelseyhightower/envconfig"
	"net/http"
	"os"
	"time"
)

type Config struct {
	ConfigPath    string `envconfig:"UDL_CONFIG_PATH" required:"true"`
	RestAPIActive bool   `envconfig:"UDL_REST_API_ACTIVE" default:"false"`
	RestAPIPort   string `envconfig:"UDL_REST_API_PORT" default:"10000"`
}

const pipelineStartMaxRetries = 5

func main() {
	logger.SetupLogging()
	udlLogger := logger.NewLogger("Main")
	fatalErrLogger := udlLogger.Fatal().Caller()
	wrapLogs := flag.String("wrap-logs", "", "executable whose stderr gets collected as structured logs")
	flag.Parse()

	// relaunch as a logs wrapper around another process
	if *wrapLogs != "" {
		logger.WrapProcess(*wrapLogs, flag.Args()...)
		return
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}

	//Load Pipeline
	pipelineChannel := make(chan pipeline.Pipeline)
	go func() {
		for retry := 0; retry < pipelineStartMaxRetries; retry++ {
			cfgs, err := types.LoadConfigurations(config.ConfigPath)
			if err != nil {
				udlLogger.Err(err).Msg("Failed to load configurations. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			udlLogger.Info().Msgf("Loaded %d configurations", len(cfgs))
			udlLogger.Info().Msg("Starting pipelines loading")

			pipelineParams := pipeline.GetDefaultULFParams(cfgs)
			ppln, err := pipeline.DefaultULF(pipelineParams)
			if err != nil {
				udlLogger.Err(err).Msg("Failed to start default ULF pipeline. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			udlLogger.Info().Msg("Pipelines loaded")
			pipelineChannel <- ppln
			return
		}
		fatalErrLogger.Msg("Could not start pipelines after 5 retries, exiting")
		os.Exit(1)
	}()

	// block until pipeline loads
	ppln := <-pipelineChannel

	if config.RestAPIActive {
		go func() {
			udlLogger.Info().Msg("Starting API service")
			apiRequest := &api.Request{
				Pipeline: ppln,
			}
			http.HandleFunc("/", apiRequest.ProcessData)
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			udlLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, nil)
			fatalErrLogger.Err(err).Msg("REST API stopped with error")
		}()
	}

	udlLogger.Info().Msg("Start UDL Worker")
	for {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			udlLogger.Fatal().Err(err).Msg("Could not initialize RMQ worker")
			os.Exit(1)
		}
		err = rmqWorker.StartWorker()
		if err != nil {
			udlLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}
