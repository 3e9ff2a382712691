package locales

type ShowcaseCopy struct {
	HeroTitle          string
	HeroSubtitle       string
	HighlightPrefix    string
	HighlightSuffix    string
	SearchPlaceholder  string
	SearchCta          string
	FilterHeading      string
	FeaturedHeading    string
	DefaultCategory    string
	UpdatedPrefix      string
	AuthorFallback     string
	OpenLabel          string
	EmptyStateTitle    string
	EmptyStateSubtitle string
	DemoPrimary        string
	ArticleCta         string
	DemoExternal       string
	ModalTitle         string
	ModalClose         string
	ModalFallback      string
	FeaturedSubline    string
	SearchResults      string
	SearchEmpty        string
	Contents           string
	Comments           string
	CommentsDisabled   string
	CommentPlaceholder string
	CommentSubmit      string
	NotFoundTitle      string
	NotFoundSubtitle   string
	BackToDocs         string
}

var showcase = map[string]ShowcaseCopy{
	"en": {
		HeroTitle:          "Learn ADP by building",
		HeroSubtitle:       "Hands-on tutorials and best practices from the community, newest first.",
		HighlightPrefix:    "",
		HighlightSuffix:    " tutorials and counting",
		SearchPlaceholder:  "Search tutorials, authors, topics…",
		SearchCta:          "Search",
		FilterHeading:      "Browse by category",
		FeaturedHeading:    "Latest update",
		DefaultCategory:    "General",
		UpdatedPrefix:      "Updated",
		AuthorFallback:     "Hello ADP",
		OpenLabel:          "Open",
		EmptyStateTitle:    "No tutorials yet",
		EmptyStateSubtitle: "The first guides are being written. Check back soon.",
		DemoPrimary:        "Try the demo",
		ArticleCta:         "Read the guide",
		DemoExternal:       "Open in a new tab",
		ModalTitle:         "Live demo",
		ModalClose:         "Close",
		ModalFallback:      "Demo not loading?",
		FeaturedSubline:    "Freshly updated by the community",
		SearchResults:      "Search results",
		SearchEmpty:        "Nothing matched your search.",
		Contents:           "On this page",
		Comments:           "Comments",
		CommentsDisabled:   "Comments are unavailable right now.",
		CommentPlaceholder: "Share a tip or ask a question…",
		CommentSubmit:      "Post comment",
		NotFoundTitle:      "Page not found",
		NotFoundSubtitle:   "This guide may have moved or has not been translated yet.",
		BackToDocs:         "Back to the documentation",
	},
	"zh": {
		HeroTitle:          "边做边学 ADP",
		HeroSubtitle:       "来自社区的实战教程与最佳实践，按更新时间排序。",
		HighlightPrefix:    "已收录 ",
		HighlightSuffix:    " 篇教程",
		SearchPlaceholder:  "搜索教程、作者或主题…",
		SearchCta:          "搜索",
		FilterHeading:      "按分类浏览",
		FeaturedHeading:    "最新更新",
		DefaultCategory:    "综合",
		UpdatedPrefix:      "更新于",
		AuthorFallback:     "Hello ADP",
		OpenLabel:          "打开",
		EmptyStateTitle:    "暂无教程",
		EmptyStateSubtitle: "第一批教程正在撰写中，敬请期待。",
		DemoPrimary:        "体验 Demo",
		ArticleCta:         "阅读教程",
		DemoExternal:       "在新标签页打开",
		ModalTitle:         "在线演示",
		ModalClose:         "关闭",
		ModalFallback:      "Demo 无法加载？",
		FeaturedSubline:    "社区刚刚更新",
		SearchResults:      "搜索结果",
		SearchEmpty:        "没有找到匹配的内容。",
		Contents:           "本页目录",
		Comments:           "评论",
		CommentsDisabled:   "评论功能暂不可用。",
		CommentPlaceholder: "分享技巧或提出问题…",
		CommentSubmit:      "发表评论",
		NotFoundTitle:      "页面不存在",
		NotFoundSubtitle:   "该教程可能已移动，或尚未翻译。",
		BackToDocs:         "返回文档",
	},
	"ja": {
		HeroTitle:          "作りながら ADP を学ぶ",
		HeroSubtitle:       "コミュニティによる実践チュートリアルとベストプラクティスを新しい順に。",
		HighlightPrefix:    "",
		HighlightSuffix:    " 本のチュートリアル",
		SearchPlaceholder:  "チュートリアル、著者、トピックを検索…",
		SearchCta:          "検索",
		FilterHeading:      "カテゴリから探す",
		FeaturedHeading:    "最新の更新",
		DefaultCategory:    "一般",
		UpdatedPrefix:      "更新",
		AuthorFallback:     "Hello ADP",
		OpenLabel:          "開く",
		EmptyStateTitle:    "チュートリアルはまだありません",
		EmptyStateSubtitle: "最初のガイドを執筆中です。しばらくお待ちください。",
		DemoPrimary:        "デモを試す",
		ArticleCta:         "ガイドを読む",
		DemoExternal:       "新しいタブで開く",
		ModalTitle:         "ライブデモ",
		ModalClose:         "閉じる",
		ModalFallback:      "デモが表示されませんか？",
		FeaturedSubline:    "コミュニティによる最新の更新",
		SearchResults:      "検索結果",
		SearchEmpty:        "一致する項目はありません。",
		Contents:           "このページの内容",
		Comments:           "コメント",
		CommentsDisabled:   "現在コメントは利用できません。",
		CommentPlaceholder: "ヒントや質問を共有しましょう…",
		CommentSubmit:      "コメントする",
		NotFoundTitle:      "ページが見つかりません",
		NotFoundSubtitle:   "このガイドは移動したか、まだ翻訳されていません。",
		BackToDocs:         "ドキュメントに戻る",
	},
}

func Showcase(lang string) ShowcaseCopy {
	return pick(showcase, lang)
}
