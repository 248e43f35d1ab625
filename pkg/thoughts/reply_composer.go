package thoughts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	langchainprompts "github.com/tmc/langchaingo/prompts"

	"github.com/brandpilot/brandpilot/pkg/llm"
)

// ErrEmptyCompletion is returned when the model produced no usable text
var ErrEmptyCompletion = errors.New("no content generated")

// UserContext carries the profile data woven into generation prompts
type UserContext struct {
	Voice  string
	About  string
	Topics []string
}

func (u UserContext) describe() string {
	voice := u.Voice
	if voice == "" {
		voice = "professional"
	}
	about := u.About
	if about == "" {
		about = "No specific context provided"
	}
	topics := "General topics"
	if len(u.Topics) > 0 {
		topics = strings.Join(u.Topics, ", ")
	}
	return fmt.Sprintf("User context: %s\nTopics of interest: %s\nPreferred voice: %s", about, topics, voice)
}

// ReplyConfig holds configuration for reply generation
type ReplyConfig struct {
	TweetText   string
	User        UserContext
	Temperature float64
}

// ReplyComposer generates reply text for a discovered post
type ReplyComposer interface {
	ComposeReply(ctx context.Context, config ReplyConfig) (string, error)
}

type DefaultReplyComposer struct {
	llm llm.LLM
}

func NewReplyComposer(model llm.LLM) ReplyComposer {
	return &DefaultReplyComposer{
		llm: model,
	}
}

// ComposeReply builds the reply prompt from the user's context and the
// target tweet, then truncates the completion to the platform limit
func (g *DefaultReplyComposer) ComposeReply(ctx context.Context, config ReplyConfig) (string, error) {
	replyPrompt := langchainprompts.NewPromptTemplate(
		`You are replying to a tweet on behalf of a professional building their personal brand.

{{.userContext}}

Tweet to respond to: {{.tweet}}

Requirements:
1. Your reply MUST be under {{.maxLength}} characters
2. Match the user's preferred voice
3. Be conversational and add genuine value to the discussion
4. Do not oversell or self-promote
5. Respond directly to the tweet's content

Your reply:`,
		[]string{"userContext", "tweet", "maxLength"},
	)

	formattedPrompt, err := replyPrompt.Format(map[string]any{
		"userContext": config.User.describe(),
		"tweet":       config.TweetText,
		"maxLength":   MaxPostLength,
	})
	if err != nil {
		return "", fmt.Errorf("error formatting reply prompt: %w", err)
	}

	temperature := config.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	reply, err := g.llm.Generate(ctx, formattedPrompt,
		llm.WithTemperature(temperature),
		llm.WithMaxTokens(100),
	)
	if err != nil {
		return "", fmt.Errorf("error generating reply: %w", err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", ErrEmptyCompletion
	}

	return TruncateToPostLimit(reply), nil
}
