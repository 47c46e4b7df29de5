package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/alexanderciuffreda/mannheim-planner/internal/catalog"
	"github.com/alexanderciuffreda/mannheim-planner/internal/config"
	"github.com/alexanderciuffreda/mannheim-planner/internal/logger"
	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
	"github.com/alexanderciuffreda/mannheim-planner/internal/service"
)

// export-plan renders a selections file against the catalog in DATA_DIR
// without going through the HTTP server. Useful for checking what a client
// would receive and for generating documents in CI.
func main() {
	var (
		format    string
		selFile   string
		outFile   string
		dataDir   string
		rulesPath string
	)
	flag.StringVar(&format, "format", "markdown", "Export format: markdown, csv, json")
	flag.StringVar(&selFile, "selections", "", "Path to a selections JSON file ({\"selections\": [...]})")
	flag.StringVar(&outFile, "out", "", "Output file (defaults to the suggested export filename)")
	flag.StringVar(&dataDir, "data", "", "Data directory (defaults to DATA_DIR)")
	flag.StringVar(&rulesPath, "rules", "", "Program rules YAML (defaults to PROGRAM_RULES_YAML)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if selFile == "" {
		fmt.Println("Usage: export-plan -selections plan.json [-format markdown|csv|json] [-out file]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if dataDir == "" {
		dataDir = cfg.DataDir
	}
	if rulesPath == "" {
		rulesPath = cfg.ProgramRulesPath
	}

	data, err := os.ReadFile(selFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", selFile).Msg("Failed to read selections file")
	}
	var req model.ExportRequest
	if err := json.Unmarshal(data, &req); err != nil {
		log.Fatal().Err(err).Str("file", selFile).Msg("Selections file is not valid JSON")
	}

	rules := program.Load(rulesPath, log)
	source := catalog.NewSource(dataDir, log)
	catalogService := service.NewCatalogService(source, rules, log)
	exportService := service.NewExportService(catalogService, rules, log)

	fmt.Printf("=== Exporting %d selection(s) as %s ===\n", len(req.Selections), format)

	doc, err := exportService.Export(context.Background(), format, req.Selections)
	if err != nil {
		log.Fatal().Err(err).Msg("Export failed")
	}

	if outFile == "" {
		outFile = doc.Filename
	}
	if err := os.WriteFile(outFile, doc.Content, 0o644); err != nil {
		log.Fatal().Err(err).Str("file", outFile).Msg("Failed to write output")
	}

	fmt.Printf("Wrote %s (%d bytes, %s)\n", outFile, len(doc.Content), doc.ContentType)
}
