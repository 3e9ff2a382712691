package articles

import (
	"github.com/ip812/helloadp/content"
)

// ArticleCard is the showcase entry derived from one published page.
type ArticleCard struct {
	ID            string
	Href          string
	Title         string
	Description   string
	Author        string
	Avatar        string
	CategoryKey   string
	CategoryLabel string
	DemoURL       string
	ModifiedAt    content.Timestamp
}

// ArticleCardView is an ArticleCard with its timestamp formatted for display.
type ArticleCardView struct {
	ID            string `json:"id"`
	Href          string `json:"href"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Author        string `json:"author,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	CategoryKey   string `json:"categoryKey"`
	CategoryLabel string `json:"categoryLabel"`
	DemoURL       string `json:"demoUrl,omitempty"`
	UpdatedLabel  string `json:"updatedLabel"`
}

func NewCard(page content.Page, modifiedAt content.Timestamp, defaultCategory string) ArticleCard {
	key := CategoryKey(page.Slugs)
	return ArticleCard{
		ID:            page.URL,
		Href:          page.URL,
		Title:         page.Title,
		Description:   page.Description,
		Author:        page.Meta.Author,
		Avatar:        page.Meta.Avatar,
		CategoryKey:   key,
		CategoryLabel: CategoryLabel(key, defaultCategory),
		DemoURL:       page.Meta.DemoURL,
		ModifiedAt:    modifiedAt,
	}
}

func (c ArticleCard) View(updatedLabel string) ArticleCardView {
	return ArticleCardView{
		ID:            c.ID,
		Href:          c.Href,
		Title:         c.Title,
		Description:   c.Description,
		Author:        c.Author,
		Avatar:        c.Avatar,
		CategoryKey:   c.CategoryKey,
		CategoryLabel: c.CategoryLabel,
		DemoURL:       c.DemoURL,
		UpdatedLabel:  updatedLabel,
	}
}

func GetByID(cards []ArticleCardView, id string) *ArticleCardView {
	for _, c := range cards {
		if c.ID == id {
			return &c
		}
	}

	return nil
}
