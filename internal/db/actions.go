package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/docstack/docfield/pkg/artifacts"
	dbpkg "github.com/docstack/docfield/pkg/db"
	"github.com/urfave/cli/v2"
)

func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-6s %-8s %-8s %-30s\n",
		"ID", "Created", "Docs", "Success", "Failed", "Fields")
	fmt.Println(strings.Repeat("-", 90))

	for _, r := range runs {
		fields := r.Fields.String
		if !r.Fields.Valid {
			fields = "(none)"
		}
		fmt.Printf("%-6d %-20s %-6d %-8d %-8d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.DocumentCount,
			r.SuccessCount,
			r.FailedCount,
			fields,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'docfield db run <id>' to see details\n")

	return nil
}

// RunAction shows details for a specific run
func RunAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRun(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	results, err := database.GetRunResults(runID)
	if err != nil {
		return fmt.Errorf("failed to get run results: %w", err)
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Output dir:  %s\n", run.OutputDir)
	fmt.Printf("Documents:   %d total (%d success, %d failed)\n",
		run.DocumentCount, run.SuccessCount, run.FailedCount)
	if run.Fields.Valid {
		fmt.Printf("Fields:      %s\n", run.Fields.String)
	}
	if run.TopKeywords.Valid {
		fmt.Printf("Keywords:    %s\n", run.TopKeywords.String)
	}

	if len(results) > 0 {
		fmt.Printf("\nResults (%d):\n", len(results))
		fmt.Println(strings.Repeat("-", 60))
		for i, r := range results {
			fmt.Printf("%2d. [%s] #%d %s\n", i+1, r.Status, r.DocumentID, r.Path)
			if r.Status == "failed" {
				fmt.Printf("    Error: %s\n", r.ErrorMessage.String)
			} else {
				review := ""
				if r.ManualReview {
					review = " | NEEDS REVIEW"
				}
				fmt.Printf("    Confidence: %.2f | Quality: %.2f (%s)%s\n",
					r.Confidence, r.OverallScore, r.Grade.String, review)
			}
		}
	}

	fmt.Printf("\nTip: Use 'docfield db show <document-id>' to see extracted fields\n")

	return nil
}

// ShowAction prints the stored fields artifact for a document
func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("document ID required. Usage: docfield db show <document-id>")
	}

	var docID int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &docID); err != nil {
		return fmt.Errorf("invalid document ID: %s", c.Args().First())
	}

	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	doc, err := database.GetDocument(docID)
	if err != nil {
		return err
	}

	// maxAge 0: stored results never expire for display purposes
	manager, err := artifacts.NewManager(c.String("output-dir"), time.Duration(0))
	if err != nil {
		return fmt.Errorf("failed to initialize artifact manager: %w", err)
	}

	data, ok, err := manager.Get(docID, artifacts.FieldsArtifact)
	if err != nil {
		return fmt.Errorf("failed to read fields artifact: %w", err)
	}
	if !ok {
		return fmt.Errorf("no fields artifact for document %d (%s); run extract first", docID, doc.Path)
	}

	fmt.Print(string(data))
	return nil
}

// TextAction prints the stored extracted text for a document
func TextAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("document ID required. Usage: docfield db text <document-id>")
	}

	var docID int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &docID); err != nil {
		return fmt.Errorf("invalid document ID: %s", c.Args().First())
	}

	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	doc, err := database.GetDocument(docID)
	if err != nil {
		return err
	}

	manager, err := artifacts.NewManager(c.String("output-dir"), time.Duration(0))
	if err != nil {
		return fmt.Errorf("failed to initialize artifact manager: %w", err)
	}

	data, ok, err := manager.Get(docID, artifacts.TextArtifact)
	if err != nil {
		return fmt.Errorf("failed to read text artifact: %w", err)
	}
	if !ok {
		return fmt.Errorf("no text artifact for document %d (%s); run extract first", docID, doc.Path)
	}

	fmt.Print(string(data))
	return nil
}
