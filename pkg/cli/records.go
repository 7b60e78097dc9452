package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pfd-lab/meshirec/pkg/cli/config"
	"github.com/pfd-lab/meshirec/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRecords() *cli.Command {
	var sourceCfg config.Source

	return &cli.Command{
		Name:  "records",
		Usage: "Fetch and print the restaurant record table",
		Flags: sourceCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			src, err := sourceCfg.Configure(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(src)
			if err := uc.Refresh(ctx); err != nil {
				return err
			}

			records, _, err := uc.Records(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTAGS\tREFERRERS\tSTATION\tURL")
			for _, rec := range records {
				referrers := make([]string, len(rec.Referrers))
				for i, u := range rec.Referrers {
					referrers[i] = string(u)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					rec.Name,
					strings.Join(rec.Tags, ","),
					strings.Join(referrers, ","),
					rec.Station,
					rec.URL,
				)
			}
			return w.Flush()
		},
	}
}
