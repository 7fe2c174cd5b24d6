package feeds

// Source is one syndication feed the observer harvests.
type Source struct {
	URL  string
	Name string
	// Credibility is a 1-5 trust tier carried through to persisted
	// articles for display purposes.
	Credibility int
}

// DefaultSources is the static registry of AI news feeds.
// Tier 5 is reserved for primary sources (the vendors themselves).
var DefaultSources = []Source{
	{URL: "https://openai.com/blog/rss.xml", Name: "OpenAI Blog", Credibility: 5},
	{URL: "https://huggingface.co/blog/feed.xml", Name: "Hugging Face Blog", Credibility: 5},
	{URL: "https://ai.googleblog.com/feeds/posts/default", Name: "Google AI Blog", Credibility: 5},
	{URL: "https://www.technologyreview.com/topic/artificial-intelligence/feed", Name: "MIT Technology Review", Credibility: 4},
	{URL: "https://venturebeat.com/category/ai/feed/", Name: "VentureBeat AI", Credibility: 3},
	{URL: "https://www.theverge.com/rss/ai-artificial-intelligence/index.xml", Name: "The Verge AI", Credibility: 3},
}
