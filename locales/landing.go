package locales

type FeatureCopy struct {
	Title       string
	Description string
	Link        string
}

type LandingCopy struct {
	Title         string
	Description   string
	Documentation string
	GetStarted    string
	JoinCommunity string
	ReadyToStart  string
	ScrollDown    string
	Features      string
	OpenSource    FeatureCopy
	Community     FeatureCopy
	Beginner      FeatureCopy
	Interactive   FeatureCopy
	Contact       string
	FriendLink    string
	License       string
}

type Link struct {
	Name string
	URL  string
}

var ContactLinks = []Link{
	{Name: "hello@1st.ac.cn", URL: "mailto:hello@1st.ac.cn"},
	{Name: "@FirstLabAI", URL: "https://twitter.com/FirstLabAI"},
}

var FriendLinks = []Link{
	{Name: "Hello-CTF", URL: "https://hello-ctf.com/"},
	{Name: "腾讯云智能体平台", URL: "https://lke.cloud.tencent.com/"},
	{Name: "FirstLab", URL: "https://1st.ac.cn/"},
	{Name: "WorkWork", URL: "https://github.com/WorkWorkLabs/Web3-Recruitment-Platform"},
}

var Maintainer = struct {
	Name   string
	Avatar string
	Links  []Link
}{
	Name:   "Steven Lynn",
	Avatar: "https://s2.loli.net/2025/05/16/pHlugt6BPKJEzGW.jpg",
	Links: []Link{
		{Name: "X", URL: "https://twitter.com/Stv_Lynn"},
		{Name: "GitHub", URL: "https://github.com/stvlynn"},
		{Name: "Buy me a coffee", URL: "https://www.buymeacoffee.com/stvlynn"},
	},
}

var landing = map[string]LandingCopy{
	"en": {
		Title:         "Hello ADP",
		Description:   "The most comprehensive online ADP tutorial, powered by FirstLab.",
		Documentation: "Documentation",
		GetStarted:    "Get Started",
		JoinCommunity: "Join FirstLab Community",
		ReadyToStart:  "Ready to build amazing AI applications with ADP? Start exploring our documentation!",
		ScrollDown:    "Scroll Down",
		Features:      "Features",
		OpenSource: FeatureCopy{
			Title:       "Open Source",
			Description: "Free and open source. Community driven development.",
			Link:        "Visit GitHub Repository",
		},
		Community: FeatureCopy{
			Title:       "Community Building",
			Description: "Join the community to learn and contribute.",
			Link:        "Join FirstLab Community",
		},
		Beginner: FeatureCopy{
			Title:       "Start From Zero",
			Description: "Solving the steep learning curve of ADP.",
		},
		Interactive: FeatureCopy{
			Title:       "Interactive Documentation",
			Description: "Try demos in real-time while reading documentation.",
		},
		Contact:    "Contact",
		FriendLink: "Friend Link",
		License:    "CC-BY-SA-4.0 license",
	},
	"zh": {
		Title:         "Hello ADP",
		Description:   "最全面的 ADP 在线教程, 由 FirstLab 驱动",
		Documentation: "文档",
		GetStarted:    "开始使用",
		JoinCommunity: "加入 FirstLab 社区",
		ReadyToStart:  "准备使用 ADP 构建出色的 AI 应用程序？开始探索我们的文档吧！",
		ScrollDown:    "向下滚动",
		Features:      "特色功能",
		OpenSource: FeatureCopy{
			Title:       "免费开源",
			Description: "完全免费且开源，由社区驱动开发。",
			Link:        "访问GitHub仓库",
		},
		Community: FeatureCopy{
			Title:       "社区共建",
			Description: "加入社区学习并贡献自己的力量。",
			Link:        "访问FirstLab社区",
		},
		Beginner: FeatureCopy{
			Title:       "从零开始",
			Description: "解决了ADP学习曲线陡峭的问题。",
		},
		Interactive: FeatureCopy{
			Title:       "文档交互",
			Description: "文档中的demo可以实时交互，在读之前可以先上手玩。",
		},
		Contact:    "联系我们",
		FriendLink: "友情链接",
		License:    "CC-BY-SA-4.0 许可证",
	},
	"ja": {
		Title:         "Hello ADP",
		Description:   "FirstLab が提供する、最も充実した ADP オンラインチュートリアルです。",
		Documentation: "ドキュメント",
		GetStarted:    "始めましょう",
		JoinCommunity: "FirstLab コミュニティに参加",
		ReadyToStart:  "ADP で素晴らしい AI アプリケーションを構築する準備はできましたか？ドキュメントの探索を始めましょう！",
		ScrollDown:    "スクロールダウン",
		Features:      "特徴",
		OpenSource: FeatureCopy{
			Title:       "オープンソース",
			Description: "無料でオープンソース。コミュニティ主導の開発。",
			Link:        "GitHubリポジトリを訪問",
		},
		Community: FeatureCopy{
			Title:       "コミュニティ構築",
			Description: "コミュニティに参加して学び、貢献しましょう。",
			Link:        "FirstLabコミュニティに参加",
		},
		Beginner: FeatureCopy{
			Title:       "ゼロからスタート",
			Description: "ADPの急な学習曲線の問題を解決します。",
		},
		Interactive: FeatureCopy{
			Title:       "インタラクティブドキュメント",
			Description: "ドキュメントを読みながらリアルタイムでデモを試せます。",
		},
		Contact:    "お問い合わせ",
		FriendLink: "友好链接",
		License:    "CC-BY-SA-4.0 ライセンス",
	},
}

func Landing(lang string) LandingCopy {
	return pick(landing, lang)
}
