package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pfd-lab/meshirec/pkg/cli/config"
	"github.com/pfd-lab/meshirec/pkg/domain/model/errs"
	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
	"github.com/pfd-lab/meshirec/pkg/domain/types"
	"github.com/pfd-lab/meshirec/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRecommend() *cli.Command {
	var (
		user      string
		name      string
		sourceCfg config.Source
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "user",
				Aliases:     []string{"u"},
				Usage:       "Recommend restaurants for this user",
				Destination: &user,
			},
			&cli.StringFlag{
				Name:        "restaurant",
				Aliases:     []string{"r"},
				Usage:       "Recommend restaurants similar to this one",
				Destination: &name,
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of recommendations (0 uses the default)",
			},
		},
		sourceCfg.Flags(),
	)

	return &cli.Command{
		Name:  "recommend",
		Usage: "Print recommendations once and exit",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if (user == "") == (name == "") {
				return goerr.New("specify exactly one of --user or --restaurant",
					goerr.T(errs.TagValidation))
			}

			src, err := sourceCfg.Configure(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(src)
			if err := uc.Refresh(ctx); err != nil {
				return err
			}

			count := int(c.Int("count"))

			var recs []restaurant.Record
			if user != "" {
				recs, err = uc.RecommendForUser(ctx, types.UserID(user), count)
			} else {
				recs, err = uc.RecommendSimilar(ctx, types.RestaurantName(name), count)
			}
			if err != nil {
				return err
			}

			if len(recs) == 0 {
				fmt.Println("no recommendations")
				return nil
			}

			for _, rec := range recs {
				line := string(rec.Name)
				if len(rec.Tags) > 0 {
					line += " (" + strings.Join(rec.Tags, ", ") + ")"
				}
				if rec.Station != "" {
					line += " - " + rec.Station
				}
				fmt.Println("-", line)
				if rec.URL != "" {
					fmt.Println("  URL:", rec.URL)
				}
			}
			return nil
		},
	}
}
