package static

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pfd-lab/meshirec/pkg/domain/interfaces"
	"github.com/pfd-lab/meshirec/pkg/domain/model/errs"
	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
	"github.com/pfd-lab/meshirec/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// Source reads records from a local YAML file. It exists for
// development and tests without Notion access; the file mirrors the
// upstream shape, including the comma-delimited referrer field.
type Source struct {
	path string
}

var _ interfaces.RecordSource = &Source{}

func New(path string) *Source {
	return &Source{path: path}
}

type fileRecord struct {
	Name     string   `yaml:"name"`
	Tags     []string `yaml:"tags"`
	URL      string   `yaml:"url"`
	Referrer string   `yaml:"referrer"`
	Station  string   `yaml:"station"`
}

type recordFile struct {
	Restaurants []fileRecord `yaml:"restaurants"`
}

func (x *Source) FetchRecords(ctx context.Context) ([]restaurant.Record, error) {
	raw, err := os.ReadFile(filepath.Clean(x.path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read records file",
			goerr.T(errs.TagExternal), goerr.V("path", x.path))
	}

	var file recordFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse records file",
			goerr.T(errs.TagExternal), goerr.V("path", x.path))
	}

	records := make([]restaurant.Record, 0, len(file.Restaurants))
	for _, r := range file.Restaurants {
		records = append(records, restaurant.Record{
			Name:      types.RestaurantName(r.Name),
			Tags:      r.Tags,
			URL:       r.URL,
			Referrers: restaurant.SplitReferrers(r.Referrer),
			Station:   r.Station,
		})
	}
	return records, nil
}
