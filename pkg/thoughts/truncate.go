package thoughts

// MaxPostLength is Twitter's character limit for a single post
const MaxPostLength = 280

const ellipsis = "..."

// TruncateToPostLimit hard-caps generated text at the platform limit,
// replacing the tail with an ellipsis marker. Counts characters, not bytes.
func TruncateToPostLimit(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxPostLength {
		return text
	}
	return string(runes[:MaxPostLength-len(ellipsis)]) + ellipsis
}
