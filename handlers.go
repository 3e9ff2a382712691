package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/ip812/helloadp/articles"
	"github.com/ip812/helloadp/content"
	"github.com/ip812/helloadp/locales"
	"github.com/ip812/helloadp/status"
	"github.com/ip812/helloadp/templates/views"
	"github.com/ip812/helloadp/utils"
)

// LanguageRedirect sends requests for an unsupported language to the same
// path under the default language.
func (hnd *Handler) LanguageRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := chi.URLParam(r, "lang")
		if hnd.config.Content.IsSupported(lang) {
			next.ServeHTTP(w, r)
			return
		}

		target := locales.SwitchPath(r.URL.Path, lang, hnd.config.Content.DefaultLanguage)
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusFound)
	})
}

func (hnd *Handler) pageMeta(lang, path string) views.PageMeta {
	return views.NewPageMeta(lang, path, hnd.config.App.BaseURL, hnd.config.Content.Languages)
}

func (hnd *Handler) render(w http.ResponseWriter, r *http.Request, code int, c templ.Component) {
	if err := utils.RenderStatus(w, r, code, c); err != nil {
		hnd.log.Error("failed to render %s: %v", r.URL.Path, err)
	}
}

func (hnd *Handler) LandingPageView(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	page := hnd.pageMeta(lang, "/"+lang)
	hnd.render(w, r, http.StatusOK, views.LandingPage(page, locales.Landing(lang)))
}

func (hnd *Handler) DocsView(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	txt := locales.Showcase(lang)

	vm := hnd.site.builder.Build(lang, txt.DefaultCategory)
	demo := vm.Demo(r.URL.Query().Get("demo"))

	page := hnd.pageMeta(lang, content.DocsURL(lang, nil))
	hnd.render(w, r, http.StatusOK, views.Showcase(page, txt, vm, demo))
}

func (hnd *Handler) DocPageView(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	slugs := splitSlugs(chi.URLParam(r, "*"))
	if len(slugs) == 0 {
		hnd.DocsView(w, r)
		return
	}

	txt := locales.Showcase(lang)
	p, ok := hnd.site.source.Page(lang, slugs)
	if !ok && lang != hnd.config.Content.DefaultLanguage {
		p, ok = hnd.site.source.Page(hnd.config.Content.DefaultLanguage, slugs)
	}
	if !ok {
		page := hnd.pageMeta(lang, r.URL.Path).WithTitle(txt.NotFoundTitle, "")
		hnd.render(w, r, http.StatusNotFound, views.NotFound(page, txt))
		return
	}

	doc, err := hnd.docView(r.Context(), lang, p)
	if err != nil {
		hnd.log.Error("failed to render document %s: %v", p.File.Path(), err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page := hnd.pageMeta(lang, content.DocsURL(lang, slugs)).WithTitle(p.Title, p.Description)
	hnd.render(w, r, http.StatusOK, views.DocPage(page, txt, doc))
}

func (hnd *Handler) docView(ctx context.Context, lang string, p content.Page) (views.DocView, error) {
	rendered, err := content.Render(p.Body)
	if err != nil {
		return views.DocView{}, err
	}

	txt := locales.Showcase(lang)
	doc := views.DocView{
		URL:           p.URL,
		Title:         p.Title,
		Description:   p.Description,
		CategoryLabel: articles.CategoryLabel(articles.CategoryKey(p.Slugs), txt.DefaultCategory),
		Author:        p.Meta.Author,
		Avatar:        p.Meta.Avatar,
		DemoURL:       p.Meta.DemoURL,
		UpdatedLabel:  articles.RelativeTime(hnd.site.resolver.Resolve(p.File.Path()), hnd.now(), locales.Tag(lang)),
		HTML:          rendered.HTML,
		TOC:           rendered.TOC(),
	}
	if p.Meta.GithubUsername != "" {
		doc.GithubURL = "https://github.com/" + p.Meta.GithubUsername
	}
	if p.Meta.XUsername != "" {
		doc.XURL = "https://x.com/" + p.Meta.XUsername
	}

	comments, err := hnd.listComments(ctx, p.URL, lang)
	switch {
	case err == nil:
		doc.CommentsEnabled = true
		doc.Comments = comments
	case !errors.Is(err, status.ErrDatabaseNotReady):
		hnd.log.Error("failed to list comments of %s: %v", p.URL, err)
	}

	return doc, nil
}

func (hnd *Handler) SearchView(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Redirect(w, r, content.DocsURL(lang, nil), http.StatusFound)
		return
	}

	txt := locales.Showcase(lang)
	vm := hnd.site.builder.Build(lang, txt.DefaultCategory)
	results := articles.Search(vm.Cards(), query)

	page := hnd.pageMeta(lang, vm.SearchHref).WithTitle(txt.SearchResults, "")
	hnd.render(w, r, http.StatusOK, views.SearchResults(page, txt, vm.SearchHref, query, results))
}

func splitSlugs(rest string) []string {
	var slugs []string
	for _, s := range strings.Split(rest, "/") {
		if s != "" {
			slugs = append(slugs, s)
		}
	}
	return slugs
}
