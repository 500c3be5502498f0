package main

import (
	"fmt"
	"log"
	"os"

	dbactions "github.com/docstack/docfield/internal/db"
	"github.com/docstack/docfield/internal/extract"
	"github.com/docstack/docfield/internal/reference"
	"github.com/docstack/docfield/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "docfield",
		Usage: "extract structured fields from document files",
		Commands: []*cli.Command{
			{
				Name:   "extract",
				Usage:  "Extract requested fields from documents",
				Action: extract.ExtractAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "files",
						Usage: "Comma-separated document paths (.txt, .md, .html)",
					},
					&cli.StringFlag{
						Name:  "dir",
						Usage: "Directory of documents to process (non-recursive)",
					},
					&cli.StringFlag{
						Name:  "fields",
						Usage: "Comma-separated field names to extract",
					},
					&cli.StringFlag{
						Name:  "fields-file",
						Usage: "YAML file defining custom fields and aliases",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 4,
						Usage: "Number of concurrent workers",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format: json or yaml",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "Artifact directory (default: docfield-results)",
					},
					&cli.StringFlag{
						Name:  "max-age",
						Value: "24h",
						Usage: "Reuse stored results younger than this",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Re-extract even when stored results are fresh",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:  "db",
				Usage: "Inspect stored runs and results",
				Subcommands: []*cli.Command{
					{
						Name:   "runs",
						Usage:  "List recent extraction runs",
						Action: dbactions.RunsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "Maximum runs to list",
							},
						},
					},
					{
						Name:      "run",
						Usage:     "Show details for a run (latest if omitted)",
						ArgsUsage: "[run-id]",
						Action:    dbactions.RunAction,
					},
					{
						Name:      "show",
						Usage:     "Print stored field values for a document",
						ArgsUsage: "<document-id>",
						Action:    dbactions.ShowAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "output-dir",
								Usage: "Artifact directory (default: docfield-results)",
							},
						},
					},
					{
						Name:      "text",
						Usage:     "Print the stored extracted text for a document",
						ArgsUsage: "<document-id>",
						Action:    dbactions.TextAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "output-dir",
								Usage: "Artifact directory (default: docfield-results)",
							},
						},
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print a YAML quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:   "fields",
				Usage:  "List known field names and aliases",
				Action: reference.FieldsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "fields-file",
						Usage: "YAML file defining custom fields and aliases",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
