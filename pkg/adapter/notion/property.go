package notion

import (
	"github.com/jomei/notionapi"
	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
	"github.com/pfd-lab/meshirec/pkg/domain/types"
)

// Property names of the upstream database. The schema is maintained by
// hand in Notion, so a column may be a select in one workspace and
// rich text in another; mapping tolerates both.
const (
	propName     = "店名"
	propTags     = "タグ"
	propURL      = "URL"
	propReferrer = "紹介者"
	propStation  = "店舗最寄り駅"
)

// recordFromPage flattens a Notion page into a Record. Absent or
// unexpectedly typed properties become empty values, never errors.
func recordFromPage(page notionapi.Page) restaurant.Record {
	return restaurant.Record{
		Name:      types.RestaurantName(titleOf(page.Properties[propName])),
		Tags:      tagsOf(page.Properties[propTags]),
		URL:       urlOf(page.Properties[propURL]),
		Referrers: restaurant.SplitReferrers(textOf(page.Properties[propReferrer])),
		Station:   selectOrTextOf(page.Properties[propStation]),
	}
}

func titleOf(prop notionapi.Property) string {
	p, ok := prop.(*notionapi.TitleProperty)
	if !ok || len(p.Title) == 0 {
		return ""
	}
	return p.Title[0].PlainText
}

func textOf(prop notionapi.Property) string {
	p, ok := prop.(*notionapi.RichTextProperty)
	if !ok || len(p.RichText) == 0 {
		return ""
	}
	return p.RichText[0].PlainText
}

func urlOf(prop notionapi.Property) string {
	p, ok := prop.(*notionapi.URLProperty)
	if !ok {
		return ""
	}
	return p.URL
}

func tagsOf(prop notionapi.Property) []string {
	switch p := prop.(type) {
	case *notionapi.MultiSelectProperty:
		tags := make([]string, 0, len(p.MultiSelect))
		for _, opt := range p.MultiSelect {
			if opt.Name != "" {
				tags = append(tags, opt.Name)
			}
		}
		if len(tags) == 0 {
			return nil
		}
		return tags

	case *notionapi.SelectProperty:
		if p.Select.Name == "" {
			return nil
		}
		return []string{p.Select.Name}

	default:
		return nil
	}
}

func selectOrTextOf(prop notionapi.Property) string {
	switch p := prop.(type) {
	case *notionapi.SelectProperty:
		return p.Select.Name
	case *notionapi.RichTextProperty:
		if len(p.RichText) == 0 {
			return ""
		}
		return p.RichText[0].PlainText
	default:
		return ""
	}
}
