package articles

import (
	"time"

	"github.com/ip812/helloadp/content"
	"github.com/ip812/helloadp/locales"
)

// ViewModel is everything the docs showcase renders for one language.
type ViewModel struct {
	TotalCount int               `json:"totalCount"`
	Categories []CategoryLink    `json:"categories"`
	Featured   *ArticleCardView  `json:"featured,omitempty"`
	Rest       []ArticleCardView `json:"rest"`
	SearchHref string            `json:"searchHref"`
}

// Cards returns the featured card followed by the rest.
func (vm ViewModel) Cards() []ArticleCardView {
	if vm.Featured == nil {
		return []ArticleCardView{}
	}
	return append([]ArticleCardView{*vm.Featured}, vm.Rest...)
}

// Demo returns the card with id when it links a demo.
func (vm ViewModel) Demo(id string) *ArticleCardView {
	card := GetByID(vm.Cards(), id)
	if card == nil || card.DemoURL == "" {
		return nil
	}
	return card
}

type PageSource interface {
	PageLookup
	Pages(lang string) []content.Page
	DefaultLanguage() string
}

type TimestampResolver interface {
	ResolveAll(pages []content.Page) []content.Timestamp
}

// Builder turns the published pages of a language into a ViewModel. Nothing is
// cached between builds.
type Builder struct {
	source   PageSource
	resolver TimestampResolver
	now      func() time.Time
}

func NewBuilder(source PageSource, resolver TimestampResolver) *Builder {
	return &Builder{
		source:   source,
		resolver: resolver,
		now:      time.Now,
	}
}

// WithClock replaces the clock relative times are measured against.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Cards returns the ranked cards of lang.
func (b *Builder) Cards(lang, defaultCategory string) []ArticleCard {
	pages := b.source.Pages(lang)
	times := b.resolver.ResolveAll(pages)

	cards := make([]ArticleCard, len(pages))
	for i, p := range pages {
		cards[i] = NewCard(p, times[i], defaultCategory)
	}

	return Rank(cards, locales.Tag(lang))
}

func (b *Builder) Build(lang, defaultCategory string) ViewModel {
	cards := b.Cards(lang, defaultCategory)

	now := b.now()
	tag := locales.Tag(lang)
	views := make([]ArticleCardView, len(cards))
	for i, c := range cards {
		views[i] = c.View(RelativeTime(c.ModifiedAt, now, tag))
	}
	featured, rest := Split(views)

	return ViewModel{
		TotalCount: len(cards),
		Categories: CategoryIndex(cards, lang, b.source.DefaultLanguage(), b.source),
		Featured:   featured,
		Rest:       rest,
		SearchHref: "/" + lang + "/search",
	}
}
