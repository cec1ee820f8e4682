// Command extract runs one extraction over a .txt or .pdf invoice file and
// prints the result as indented JSON.
// Usage: go run ./cmd/extract -file invoice.pdf [-profiles profiles.yaml]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"invoscan/internal/config"
	"invoscan/internal/doctext"
	"invoscan/internal/profile"
	"invoscan/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		filePath     = flag.String("file", "", "invoice file to extract (.txt or .pdf)")
		profilesPath = flag.String("profiles", "", "optional YAML file of supplementary supplier profiles")
	)
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		return fmt.Errorf("-file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *profilesPath == "" {
		*profilesPath = cfg.Extraction.ProfilesFile
	}

	registry, err := profile.NewDefaultRegistry(*profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load supplier profiles: %w", err)
	}

	text, err := doctext.Read(*filePath)
	if err != nil {
		return err
	}

	svc := service.NewExtractionService(registry, cfg.Extraction.CoverageTolerance)
	result := svc.Extract(text)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
