package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeremycanales01/gutenberg/internal/config"
	"github.com/jeremycanales01/gutenberg/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cliCfg, err := getCLIConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.NewLogger("wp-env", cliCfg.Debug)

	reader, err := config.NewReader(cliCfg.ConfigPath, config.Options{Logger: log})
	if err != nil {
		log.Fatal().Err(err).Msg("error preparing config reader")
	}

	cfg, err := reader.Read()
	if err != nil {
		log.Fatal().Err(err).Msg("error reading config")
	}

	log.Debug().Any("config", cfg).Msg("resolved config")

	out, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding config")
	}

	fmt.Println(string(out))
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
