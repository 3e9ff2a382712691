package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_HTMLAndHeadings(t *testing.T) {
	body := []byte("# Build a bot\n\nIntro with **bold**.\n\n## Create the app\n\nText.\n\n### Pick a `model`\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n#### Too deep\n")

	r, err := Render(body)
	require.NoError(t, err)

	require.Contains(t, r.HTML, `<h2 id="create-the-app">Create the app</h2>`)
	require.Contains(t, r.HTML, "<strong>bold</strong>")
	require.Contains(t, r.HTML, "<table>", "GFM tables are enabled")

	require.Len(t, r.Headings, 4)
	require.Equal(t, Heading{Level: 1, ID: "build-a-bot", Text: "Build a bot"}, r.Headings[0])

	toc := r.TOC()
	require.Len(t, toc, 2)
	require.Equal(t, "create-the-app", toc[0].ID)
	require.Equal(t, 3, toc[1].Level)
	require.Equal(t, "Pick a", toc[1].Text[:6])
}

func TestRender_PassesRawHTML(t *testing.T) {
	r, err := Render([]byte("<Callout>note</Callout>\n"))
	require.NoError(t, err)
	require.Contains(t, r.HTML, "<Callout>")
}

func TestRender_Empty(t *testing.T) {
	r, err := Render(nil)
	require.NoError(t, err)
	require.Empty(t, r.HTML)
	require.Empty(t, r.TOC())
}
