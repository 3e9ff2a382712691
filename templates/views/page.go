package views

import (
	"net/url"

	"github.com/ip812/helloadp/content"
	"github.com/ip812/helloadp/locales"
)

// PageMeta is the head and chrome data every page shares.
type PageMeta struct {
	Lang        string
	Path        string
	BaseURL     string
	Title       string
	Description string
	Keywords    []string
	OGLocale    string
	OGImage     string
	Languages   []locales.Locale
}

func NewPageMeta(lang, path, baseURL string, languages []string) PageMeta {
	site := locales.Meta(lang)
	return PageMeta{
		Lang:        lang,
		Path:        path,
		BaseURL:     baseURL,
		Title:       site.Title,
		Description: site.Description,
		Keywords:    site.Keywords,
		OGLocale:    site.OGLocale,
		OGImage:     site.OGImage,
		Languages:   locales.Names(languages),
	}
}

// WithTitle prefixes the site title with a page title.
func (p PageMeta) WithTitle(title, description string) PageMeta {
	if title != "" {
		p.Title = title + " | " + p.Title
	}
	if description != "" {
		p.Description = description
	}
	return p
}

func (p PageMeta) DocsHref() string {
	return content.DocsURL(p.Lang, nil)
}

func (p PageMeta) HomeHref() string {
	return "/" + p.Lang
}

// DemoHref opens the demo overlay of the card with id on the showcase.
func (p PageMeta) DemoHref(id string) string {
	return p.DocsHref() + "?" + url.Values{"demo": {id}}.Encode()
}

type CommentView struct {
	Username     string
	AvatarURL    string
	Content      string
	CreatedLabel string
}

type DocView struct {
	URL             string
	Title           string
	Description     string
	CategoryLabel   string
	Author          string
	Avatar          string
	GithubURL       string
	XURL            string
	DemoURL         string
	UpdatedLabel    string
	HTML            string
	TOC             []content.Heading
	CommentsEnabled bool
	Comments        []CommentView
}
