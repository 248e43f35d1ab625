package harvester

import (
	"strings"

	"github.com/brandpilot/brandpilot/pkg/interfaces/twitter"
)

const defaultTopic = "General"

// ClassifyTopic assigns a display topic to a tweet. Provider context
// annotations win when present; otherwise a small keyword vocabulary is
// matched against the tweet text.
func ClassifyTopic(tweet twitter.Tweet) string {
	for _, annotation := range tweet.ContextAnnotations {
		if annotation.Domain.Name != "" {
			return annotation.Domain.Name
		}
	}

	text := strings.ToLower(tweet.Text)
	switch {
	case hasWord(text, "ai") || containsAny(text, "artificial intelligence", "machine learning", "tech", "software"):
		return "AI & Technology"
	case containsAny(text, "startup", "founder", "entrepreneur", "business", "venture"):
		return "Startups"
	case containsAny(text, "marketing", "content", "brand", "audience", "growth"):
		return "Marketing"
	default:
		return defaultTopic
	}
}

// hasWord matches a keyword only as a standalone token, so short keywords
// like "ai" do not fire inside unrelated words
func hasWord(text, keyword string) bool {
	for _, token := range strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}) {
		if token == keyword {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
