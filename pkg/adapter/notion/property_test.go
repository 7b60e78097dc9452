package notion_test

import (
	"testing"

	"github.com/jomei/notionapi"
	"github.com/m-mizutani/gt"
	"github.com/pfd-lab/meshirec/pkg/adapter/notion"
	"github.com/pfd-lab/meshirec/pkg/domain/types"
)

func richText(s string) []notionapi.RichText {
	return []notionapi.RichText{{PlainText: s}}
}

func TestRecordFromPage(t *testing.T) {
	t.Run("full page", func(t *testing.T) {
		page := notionapi.Page{
			Properties: notionapi.Properties{
				"店名": &notionapi.TitleProperty{Title: richText("銀座 寿司処")},
				"タグ": &notionapi.MultiSelectProperty{MultiSelect: []notionapi.Option{
					{Name: "寿司"}, {Name: "高級"},
				}},
				"URL":    &notionapi.URLProperty{URL: "https://example.com/sushi"},
				"紹介者":    &notionapi.RichTextProperty{RichText: richText("alice, bob")},
				"店舗最寄り駅": &notionapi.SelectProperty{Select: notionapi.Option{Name: "銀座"}},
			},
		}

		rec := notion.RecordFromPage(page)
		gt.Value(t, rec.Name).Equal(types.RestaurantName("銀座 寿司処"))
		gt.Array(t, rec.Tags).Equal([]string{"寿司", "高級"})
		gt.Value(t, rec.URL).Equal("https://example.com/sushi")
		gt.Array(t, rec.Referrers).Equal([]types.UserID{"alice", "bob"})
		gt.Value(t, rec.Station).Equal("銀座")
	})

	t.Run("select tag and rich-text station", func(t *testing.T) {
		page := notionapi.Page{
			Properties: notionapi.Properties{
				"店名":     &notionapi.TitleProperty{Title: richText("ラーメン一号")},
				"タグ":     &notionapi.SelectProperty{Select: notionapi.Option{Name: "ラーメン"}},
				"紹介者":    &notionapi.RichTextProperty{RichText: richText("carol")},
				"店舗最寄り駅": &notionapi.RichTextProperty{RichText: richText("渋谷")},
			},
		}

		rec := notion.RecordFromPage(page)
		gt.Value(t, rec.Name).Equal(types.RestaurantName("ラーメン一号"))
		gt.Array(t, rec.Tags).Equal([]string{"ラーメン"})
		gt.Value(t, rec.Station).Equal("渋谷")
	})

	t.Run("missing properties become empty values", func(t *testing.T) {
		rec := notion.RecordFromPage(notionapi.Page{Properties: notionapi.Properties{}})
		gt.Value(t, rec.Name).Equal(types.EmptyRestaurantName)
		gt.Array(t, rec.Tags).Length(0)
		gt.Value(t, rec.URL).Equal("")
		gt.Array(t, rec.Referrers).Length(0)
		gt.Value(t, rec.Station).Equal("")
	})

	t.Run("empty title slice", func(t *testing.T) {
		page := notionapi.Page{
			Properties: notionapi.Properties{
				"店名": &notionapi.TitleProperty{},
			},
		}
		gt.Value(t, notion.RecordFromPage(page).Name).Equal(types.EmptyRestaurantName)
	})
}

func TestNew(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		_, err := notion.New("", "db-id")
		gt.Error(t, err)
	})

	t.Run("missing database ID", func(t *testing.T) {
		_, err := notion.New("secret-key", "")
		gt.Error(t, err)
	})

	t.Run("valid configuration", func(t *testing.T) {
		client, err := notion.New("secret-key", "db-id")
		gt.NoError(t, err)
		gt.NotNil(t, client)
	})
}
