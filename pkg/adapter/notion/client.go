package notion

import (
	"context"

	"github.com/jomei/notionapi"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pfd-lab/meshirec/pkg/domain/interfaces"
	"github.com/pfd-lab/meshirec/pkg/domain/model/errs"
	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
	"github.com/pfd-lab/meshirec/pkg/utils/logging"
)

// Client fetches restaurant records from a Notion database. It is the
// only component that knows the upstream schema; everything after
// FetchRecords works on flat records.
type Client struct {
	api        *notionapi.Client
	databaseID notionapi.DatabaseID
}

var _ interfaces.RecordSource = &Client{}

func New(apiKey, databaseID string) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.New("Notion API key is required", goerr.T(errs.TagConfig))
	}
	if databaseID == "" {
		return nil, goerr.New("Notion database ID is required", goerr.T(errs.TagConfig))
	}

	return &Client{
		api:        notionapi.NewClient(notionapi.Token(apiKey)),
		databaseID: notionapi.DatabaseID(databaseID),
	}, nil
}

// FetchRecords queries the whole database, following pagination
// cursors until exhaustion. Any API failure aborts the fetch; the
// caller decides whether to keep serving a previous snapshot.
func (x *Client) FetchRecords(ctx context.Context) ([]restaurant.Record, error) {
	var records []restaurant.Record
	var cursor notionapi.Cursor

	for {
		resp, err := x.api.Database.Query(ctx, x.databaseID, &notionapi.DatabaseQueryRequest{
			StartCursor: cursor,
			PageSize:    100,
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to query Notion database",
				goerr.T(errs.TagNotionError), goerr.T(errs.TagExternal),
				goerr.V("database_id", x.databaseID),
			)
		}

		for _, page := range resp.Results {
			records = append(records, recordFromPage(page))
		}

		if !resp.HasMore {
			break
		}
		cursor = resp.NextCursor
	}

	logging.From(ctx).Debug("fetched records from Notion",
		"count", len(records),
		"database_id", x.databaseID,
	)

	return records, nil
}
