package types

import (
	"ulfdata.com/udl/logger"
	"errors"
	"gopkg.in/yaml.v3"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"sync"
)

const (
	// pipeline type
	ULFParsePipeline   = "ulf_parse"
	LabelVocabPipeline = "label_vocab"

	// features
	CorrectionsFeature = "corrections"
	WordsNamespace     = "words"
	TensesNamespace    = "tenses"
	ClassesNamespace   = "classes"
)

type ULFConfig struct {
	CorrectionsFile string `yaml:"corrections_file" json:"corrections_file"`
}

type ParamsConfig struct {
	UDL ULFConfig `yaml:"UDL" json:"udl"`
}

type Configuration struct {
	Name     string       `json:"name"`
	FilePath string       `json:"file_path"`
	Params   ParamsConfig `yaml:"params" json:"params"`
	Pipeline string       `yaml:"pipeline" json:"pipeline"`
	Features []string     `yaml:"features" json:"features"`
}

func (cfg Configuration) CheckFeature(featureName string) bool {
	for _, feat := range cfg.Features {
		if feat == featureName {
			return true
		}
	}

	return false
}

func LoadConfigurations(dirPath string) ([]Configuration, error) {
	udlLogger := logger.NewLogger("LoadConfigurations")

	files, err := ioutil.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	configChan := make(chan Configuration, len(files))
	for _, f := range files {
		// Skip dirs and non-yaml files
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}

		wg.Add(1)
		go func(file os.FileInfo) {
			defer wg.Done()
			cfg := Configuration{
				Name:     strings.Split(file.Name(), ".yaml")[0],
				FilePath: path.Join(dirPath, file.Name()),
			}
			buf, err := ioutil.ReadFile(cfg.FilePath)
			if err != nil {
				udlLogger.Err(err)
				return
			}
			if err := yaml.Unmarshal(buf, &cfg); err != nil {
				udlLogger.Err(err)
				return
			}

			// check pipeline type
			if cfg.Pipeline != ULFParsePipeline && cfg.Pipeline != LabelVocabPipeline {
				udlLogger.Err(errors.New("wrong pipeline type"))
				return
			}

			configChan <- cfg
		}(f)
	}

	go func() {
		wg.Wait()
		close(configChan)
	}()

	configs := make([]Configuration, 0, len(configChan))
	for cfg := range configChan {
		configs = append(configs, cfg)
	}
	return configs, nil
}
