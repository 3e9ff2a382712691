package content

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// File locates the document backing a page, relative to the docs root.
type File struct {
	Dir  string
	Name string
	Ext  string
}

func (f File) Path() string {
	return path.Join(f.Dir, f.Name+f.Ext)
}

// Meta holds the optional frontmatter fields, validated by the loader.
type Meta struct {
	Author         string
	Avatar         string
	GithubUsername string
	XUsername      string
	DemoURL        string
}

type Page struct {
	URL         string
	Slugs       []string
	Lang        string
	Title       string
	Description string
	Meta        Meta
	File        File
	Body        []byte
}

// Frontmatter is the YAML header of a document as written by authors.
type Frontmatter struct {
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	Author         string `yaml:"author"`
	Avatar         string `yaml:"avatar"`
	GithubUsername string `yaml:"github_username"`
	XUsername      string `yaml:"x_username"`
	DemoURL        string `yaml:"demo_url"`
}

// Meta validates the optional fields. An unusable demo URL is dropped and
// reported through the returned error; the rest of the metadata is kept.
func (fm Frontmatter) Meta() (Meta, error) {
	m := Meta{
		Author:         strings.TrimSpace(fm.Author),
		GithubUsername: strings.TrimPrefix(strings.TrimSpace(fm.GithubUsername), "@"),
		XUsername:      strings.TrimPrefix(strings.TrimSpace(fm.XUsername), "@"),
	}
	m.Avatar = resolveAvatar(fm.Avatar, m.GithubUsername)

	demo, err := validateDemoURL(fm.DemoURL)
	if err != nil {
		return m, err
	}
	m.DemoURL = demo
	return m, nil
}

func validateDemoURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid demo_url %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid demo_url %q: not an absolute http(s) URL", raw)
	}
	return u.String(), nil
}

// resolveAvatar accepts an image URL, a site path or a bare GitHub handle.
func resolveAvatar(avatar, githubUsername string) string {
	avatar = strings.TrimSpace(avatar)
	switch {
	case avatar == "" && githubUsername != "":
		return githubAvatar(githubUsername)
	case avatar == "":
		return ""
	case strings.Contains(avatar, "://"), strings.HasPrefix(avatar, "/"), strings.HasPrefix(avatar, "data:"):
		return avatar
	default:
		return githubAvatar(strings.TrimPrefix(avatar, "@"))
	}
}

func githubAvatar(handle string) string {
	return "https://github.com/" + url.PathEscape(handle) + ".png"
}

// DocsURL is the public address of the page with the given slugs.
func DocsURL(lang string, slugs []string) string {
	u := "/" + lang + "/docs"
	if len(slugs) > 0 {
		u += "/" + strings.Join(slugs, "/")
	}
	return u
}
