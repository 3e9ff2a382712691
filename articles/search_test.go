package articles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	cards := []ArticleCardView{
		{Title: "Build a Slack bot", Description: "Agents that answer", CategoryLabel: "Guides"},
		{Title: "RAG pipelines", Author: "Steven Lynn", CategoryLabel: "Agents"},
		{Title: "智能体入门", Description: "腾讯云", CategoryLabel: "General"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"slack", []string{"Build a Slack bot"}},
		{"AGENTS", []string{"Build a Slack bot", "RAG pipelines"}},
		{"steven rag", []string{"RAG pipelines"}},
		{"steven slack", []string{}},
		{"智能体", []string{"智能体入门"}},
		{"   ", []string{}},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, viewTitles(Search(cards, tt.query)), tt.query)
	}
}
