package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
	"github.com/pfd-lab/meshirec/pkg/domain/types"
	"github.com/pfd-lab/meshirec/pkg/utils/safe"
)

//go:embed templates/*.html
var templateFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type indexData struct {
	Title        string
	Records      []restaurant.Record
	Users        []types.UserID
	Restaurants  []types.RestaurantName
	UpdatedAt    string
	Mode         string
	SelectedUser types.UserID
	SelectedName types.RestaurantName
	UserRecs     []restaurant.Record
	ItemRecs     []restaurant.Record
}

// handleIndex renders the whole UI server-side: the record table, both
// picker forms, and the recommendation list for whichever mode the
// query parameters select.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, updatedAt, err := s.uc.Records(ctx)
	if err != nil {
		handleError(w, r, err)
		return
	}

	users, err := s.uc.Users(ctx)
	if err != nil {
		handleError(w, r, err)
		return
	}
	restaurants, err := s.uc.Restaurants(ctx)
	if err != nil {
		handleError(w, r, err)
		return
	}

	data := indexData{
		Title:        s.uiTitle,
		Records:      records,
		Users:        users,
		Restaurants:  restaurants,
		UpdatedAt:    humanize.Time(updatedAt),
		Mode:         r.URL.Query().Get("mode"),
		SelectedUser: types.UserID(r.URL.Query().Get("user")),
		SelectedName: types.RestaurantName(r.URL.Query().Get("restaurant")),
	}

	switch data.Mode {
	case "user":
		if data.SelectedUser != types.EmptyUserID {
			data.UserRecs, err = s.uc.RecommendForUser(ctx, data.SelectedUser, 0)
		}
	case "item":
		if data.SelectedName != types.EmptyRestaurantName {
			data.ItemRecs, err = s.uc.RecommendSimilar(ctx, data.SelectedName, 0)
		}
	}
	if err != nil {
		handleError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		handleError(w, r, goerr.Wrap(err, "failed to render index"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	safe.Write(ctx, w, buf.Bytes())
}
