package main

import (
	"io/fs"

	"github.com/ip812/helloadp/articles"
	"github.com/ip812/helloadp/config"
	"github.com/ip812/helloadp/content"
	"github.com/ip812/helloadp/logger"
)

// site bundles the documentation pipeline shared by the handlers and the CLI.
type site struct {
	library  *content.Library
	source   *content.Source
	resolver *content.Resolver
	builder  *articles.Builder
}

func newSite(cfg *config.Config, fsys fs.FS, log logger.Logger) *site {
	lib := content.NewLibrary(
		content.NewLoader(fsys, cfg.Content.DefaultLanguage, cfg.Content.Languages, log),
		log,
	)
	source := content.NewSource(lib, cfg.Content.DefaultLanguage)
	resolver := content.NewResolver(fsys, cfg.Content.Extension, cfg.Content.ResolveConcurrency, log)

	return &site{
		library:  lib,
		source:   source,
		resolver: resolver,
		builder:  articles.NewBuilder(source, resolver),
	}
}
