package config

import (
	"context"
	"log/slog"

	"github.com/pfd-lab/meshirec/pkg/adapter/notion"
	"github.com/pfd-lab/meshirec/pkg/adapter/static"
	"github.com/pfd-lab/meshirec/pkg/domain/interfaces"
	"github.com/pfd-lab/meshirec/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Source selects where restaurant records come from: the Notion
// database in normal operation, or a local YAML file for development.
type Source struct {
	notionAPIKey     string
	notionDatabaseID string
	recordsFile      string
}

func (x *Source) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "notion-api-key",
			Usage:       "Notion integration API key",
			Category:    "Source",
			Sources:     cli.EnvVars("MESHIREC_NOTION_API_KEY"),
			Destination: &x.notionAPIKey,
		},
		&cli.StringFlag{
			Name:        "notion-database-id",
			Usage:       "Notion database ID holding the restaurant records",
			Category:    "Source",
			Sources:     cli.EnvVars("MESHIREC_NOTION_DATABASE_ID"),
			Destination: &x.notionDatabaseID,
		},
		&cli.StringFlag{
			Name:        "records-file",
			Usage:       "Read records from a local YAML file instead of Notion",
			Category:    "Source",
			Sources:     cli.EnvVars("MESHIREC_RECORDS_FILE"),
			Destination: &x.recordsFile,
		},
	}
}

func (x Source) LogValue() slog.Value {
	apiKey := "(not set)"
	if x.notionAPIKey != "" {
		apiKey = "(set)"
	}
	return slog.GroupValue(
		slog.String("notion_api_key", apiKey),
		slog.String("notion_database_id", x.notionDatabaseID),
		slog.String("records_file", x.recordsFile),
	)
}

// Configure builds the record source. Missing Notion credentials are a
// fatal configuration error unless a records file is given.
func (x *Source) Configure(ctx context.Context) (interfaces.RecordSource, error) {
	if x.recordsFile != "" {
		logging.From(ctx).Info("using local records file", "path", x.recordsFile)
		return static.New(x.recordsFile), nil
	}

	return notion.New(x.notionAPIKey, x.notionDatabaseID)
}
