package restaurant

import (
	"strings"

	"github.com/pfd-lab/meshirec/pkg/domain/types"
)

// Record is a single restaurant entry fetched from the upstream
// database. Referrers is already exploded from the delimited referrer
// field; downstream code never re-parses strings.
type Record struct {
	Name      types.RestaurantName `json:"name" yaml:"name"`
	Tags      []string             `json:"tags,omitempty" yaml:"tags,omitempty"`
	URL       string               `json:"url,omitempty" yaml:"url,omitempty"`
	Referrers []types.UserID       `json:"referrers,omitempty" yaml:"referrers,omitempty"`
	Station   string               `json:"station,omitempty" yaml:"station,omitempty"`
}

// SplitReferrers explodes a comma-delimited referrer field into
// individual user IDs. Whitespace around each name is trimmed and
// empty entries are dropped, so a field of "" or ", ," contributes no
// users at all.
func SplitReferrers(field string) []types.UserID {
	if field == "" {
		return nil
	}

	var users []types.UserID
	for _, part := range strings.Split(field, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		users = append(users, types.UserID(name))
	}
	return users
}
