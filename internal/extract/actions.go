package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/docstack/docfield/internal/common"
	"github.com/docstack/docfield/models"
	"github.com/docstack/docfield/pkg/analytics"
	"github.com/docstack/docfield/pkg/artifacts"
	"github.com/docstack/docfield/pkg/db"
	"github.com/docstack/docfield/pkg/fields"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func ExtractAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	var maxAge time.Duration
	var err error
	if c.Bool("force") {
		maxAge = 0
	} else {
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	manager, err := artifacts.NewManager(c.String("output-dir"), maxAge)
	if err != nil {
		logger.Error("failed to initialize artifact manager", "error", err)
		os.Exit(2)
	}

	// Open database for run and result storage
	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	config := &models.ExtractConfig{
		Fields:      common.ParseListFlag(c.String("fields")),
		WorkerCount: c.Int("workers"),
	}
	if config.WorkerCount < 1 {
		config.WorkerCount = 1
	}

	extractor, err := buildExtractor(c)
	if err != nil {
		logger.Error("failed to build extractor", "error", err)
		os.Exit(2)
	}

	if len(config.Fields) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No fields requested")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  docfield extract --files offer.txt --fields "name,ssn,salary"`)
		fmt.Fprintln(os.Stderr, `  docfield extract --dir ./documents --fields "policy_number,amount"`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run 'docfield fields' to list known field names and aliases")
		os.Exit(1)
	}

	config.Paths, err = common.CollectInputFiles(common.ParseListFlag(c.String("files")), c.String("dir"))
	if err != nil {
		logger.Error("failed to collect input files", "error", err)
		os.Exit(1)
	}
	if len(config.Paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No input documents provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  docfield extract --files "offer.txt,policy.md" --fields "name,ssn"`)
		fmt.Fprintln(os.Stderr, `  docfield extract --dir ./documents --fields "name,ssn"`)
		os.Exit(1)
	}

	runID, err := database.CreateRun(len(config.Paths), strings.Join(config.Fields, ","), manager.BaseDir())
	if err != nil {
		logger.Error("failed to create run", "error", err)
		os.Exit(2)
	}
	logger.Info("Run created", "run_id", runID)

	allResults, finalWordCounts, runErr := run(logger, config, extractor, manager, c.Bool("force"), database, runID)

	stats := Stats{
		TotalDocuments:   len(config.Paths),
		TotalTimeSeconds: time.Since(startTime).Seconds(),
		TopKeywords:      analytics.TopKeywords(finalWordCounts, 25),
	}

	finalOutput := &FinalOutput{RunID: runID}
	for _, r := range allResults {
		finalOutput.Results = append(finalOutput.Results, BuildSummary(r))
		if r.Error != nil {
			stats.Failed++
		} else {
			stats.Successful++
		}
	}
	finalOutput.Stats = stats
	if runErr != nil {
		finalOutput.Status = "partial_failure"
	} else {
		finalOutput.Status = "success"
	}

	if err := database.FinishRun(runID, stats.Successful, stats.Failed, formatKeywordsAsJSON(finalWordCounts, 25)); err != nil {
		logger.Warn("Failed to update run stats in DB", "error", err)
	}

	var outputData []byte
	var marshalErr error
	if strings.ToLower(c.String("format")) == "yaml" {
		outputData, marshalErr = yaml.Marshal(finalOutput)
	} else {
		outputData, marshalErr = json.MarshalIndent(finalOutput, "", "  ")
	}
	if marshalErr != nil {
		logger.Error("failed to marshal final output", "error", marshalErr)
		os.Exit(2)
	}
	fmt.Println(string(outputData))

	if stats.Failed == stats.TotalDocuments {
		os.Exit(2)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}

	return nil
}

// buildExtractor assembles the field extractor, folding in a --fields-file
// definition when one is given.
func buildExtractor(c *cli.Context) (*fields.Extractor, error) {
	if !c.IsSet("fields-file") {
		return fields.New(), nil
	}

	ff, err := models.LoadFieldsFile(c.String("fields-file"))
	if err != nil {
		return nil, err
	}
	return fields.FromFieldsFile(ff)
}
