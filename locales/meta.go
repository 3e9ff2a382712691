package locales

type SiteMeta struct {
	Title       string
	Description string
	Keywords    []string
	OGLocale    string
	OGImage     string
}

var meta = map[string]SiteMeta{
	"en": {
		Title:       "Hello ADP - ADP Tutorials with Best Practice",
		Description: "ADP tutorials, guides, and best practices for building AI workflows and applications with ADP",
		Keywords:    []string{"ADP", "ADP tutorial", "ADP guide", "ADP best practices", "AI workflow", "AI application"},
		OGLocale:    "en_US",
	},
	"zh": {
		Title:       "Hello ADP - 全网最齐全的免费ADP教程与最佳实践",
		Description: "ADP教程、入门指南与最佳实践，涵盖AI应用与工作流构建",
		Keywords:    []string{"ADP", "ADP教程", "ADP指南", "ADP最佳实践", "AI工作流", "AI应用"},
		OGLocale:    "zh_CN",
	},
	"ja": {
		Title:       "Hello ADP - ADP チュートリアルとベストプラクティス",
		Description: "ADP で AI ワークフローとアプリケーションを構築するためのチュートリアル、ガイド、ベストプラクティス",
		Keywords:    []string{"ADP", "ADP チュートリアル", "ADP ガイド", "ADP ベストプラクティス", "AI ワークフロー", "AI アプリケーション"},
		OGLocale:    "ja_JP",
	},
}

func Meta(lang string) SiteMeta {
	m := pick(meta, lang)
	m.OGImage = LogoPath
	return m
}
