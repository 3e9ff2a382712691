package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitFrontmatter_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	header, body, err := splitFrontmatter(input)
	require.NoError(t, err)
	require.Nil(t, header)
	require.Equal(t, input, body)
}

func TestSplitFrontmatter_YAML(t *testing.T) {
	header, body, err := splitFrontmatter([]byte("---\ntitle: Intro\n---\n# Intro\n"))
	require.NoError(t, err)
	require.Equal(t, "title: Intro\n", string(header))
	require.Equal(t, "# Intro\n", string(body))
}

func TestSplitFrontmatter_CRLF(t *testing.T) {
	header, body, err := splitFrontmatter([]byte("---\r\ntitle: Intro\r\n---\r\nbody\r\n"))
	require.NoError(t, err)
	require.Equal(t, "title: Intro\r\n", string(header))
	require.Equal(t, "body\r\n", string(body))
}

func TestSplitFrontmatter_EmptyBlock(t *testing.T) {
	header, body, err := splitFrontmatter([]byte("---\n---\nbody\n"))
	require.NoError(t, err)
	require.Empty(t, header)
	require.Equal(t, "body\n", string(body))
}

func TestSplitFrontmatter_ClosingAtEOF(t *testing.T) {
	header, body, err := splitFrontmatter([]byte("---\ntitle: Only\n---"))
	require.NoError(t, err)
	require.Equal(t, "title: Only\n", string(header))
	require.Empty(t, body)
}

func TestSplitFrontmatter_MissingClosingDelimiter(t *testing.T) {
	_, _, err := splitFrontmatter([]byte("---\ntitle: Broken\n# Title\n"))
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestParseFrontmatter_DecodesKnownFields(t *testing.T) {
	src := []byte(`---
title: Build a bot
description: From zero to a working agent
author: Steven
avatar: stvlynn
github_username: stvlynn
x_username: "@Stv_Lynn"
demo_url: https://demo.example.com/bot
unknown_field: ignored
---
Body
`)

	fm, body, err := parseFrontmatter(src)
	require.NoError(t, err)
	require.Equal(t, "Build a bot", fm.Title)
	require.Equal(t, "From zero to a working agent", fm.Description)
	require.Equal(t, "Steven", fm.Author)
	require.Equal(t, "https://demo.example.com/bot", fm.DemoURL)
	require.Equal(t, "Body\n", string(body))
}

func TestParseFrontmatter_InvalidYAML(t *testing.T) {
	_, _, err := parseFrontmatter([]byte("---\ntitle: [unclosed\n---\nbody\n"))
	require.Error(t, err)
}
