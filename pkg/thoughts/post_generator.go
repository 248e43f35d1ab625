package thoughts

import (
	"context"
	"fmt"
	"strings"

	langchainprompts "github.com/tmc/langchaingo/prompts"

	"github.com/brandpilot/brandpilot/pkg/llm"
)

// toneInstructions maps the supported tones to prompt guidance
var toneInstructions = map[string]string{
	"professional":  "Write in a professional, authoritative tone suitable for business networking.",
	"friendly":      "Write in a warm, approachable tone that feels conversational and welcoming.",
	"witty":         "Write with clever humor and wit, making the content engaging and memorable.",
	"inspirational": "Write in an uplifting, motivational tone that inspires and encourages action.",
	"educational":   "Write in an informative, teaching tone that explains concepts clearly.",
}

// lengthInstructions maps the supported lengths to prompt guidance
var lengthInstructions = map[string]string{
	"short":  "Keep it very concise, 1-2 sentences maximum.",
	"medium": "Write 3-4 sentences with moderate detail.",
	"long":   "Write 5+ sentences with comprehensive detail, but stay under 280 characters.",
}

// PostConfig holds configuration for draft generation
type PostConfig struct {
	Prompt string
	Tone   string
	Length string
	User   UserContext
}

// GeneratedPost is a draft candidate with its measured length
type GeneratedPost struct {
	Post           string
	CharacterCount int
}

// PostGenerator turns a user prompt into platform-ready draft text
type PostGenerator interface {
	GeneratePost(ctx context.Context, config PostConfig) (*GeneratedPost, error)
}

type DefaultPostGenerator struct {
	llm llm.LLM
}

func NewPostGenerator(model llm.LLM) PostGenerator {
	return &DefaultPostGenerator{
		llm: model,
	}
}

// ToneSupported reports whether tone is one of the known voices
func ToneSupported(tone string) bool {
	_, ok := toneInstructions[tone]
	return ok
}

// LengthSupported reports whether length is one of the known sizes
func LengthSupported(length string) bool {
	_, ok := lengthInstructions[length]
	return ok
}

// GeneratePost builds the generation prompt and truncates the completion
// to the platform limit
func (g *DefaultPostGenerator) GeneratePost(ctx context.Context, config PostConfig) (*GeneratedPost, error) {
	toneInstruction, ok := toneInstructions[config.Tone]
	if !ok {
		return nil, fmt.Errorf("unsupported tone: %q", config.Tone)
	}
	lengthInstruction, ok := lengthInstructions[config.Length]
	if !ok {
		return nil, fmt.Errorf("unsupported length: %q", config.Length)
	}

	systemPrompt := langchainprompts.NewPromptTemplate(
		`You are an expert social media content creator. Generate a Twitter post based on the user's input.

REQUIREMENTS:
- Maximum {{.maxLength}} characters (this is critical - count carefully)
- Tone: {{.tone}}
- Length: {{.length}}
- Make it engaging and suitable for Twitter
- Include relevant hashtags if appropriate (but count them in character limit)
- Do not use quotes around the post
{{.userContext}}

Generate ONLY the post content, nothing else.

User input: {{.prompt}}`,
		[]string{"maxLength", "tone", "length", "userContext", "prompt"},
	)

	formattedPrompt, err := systemPrompt.Format(map[string]any{
		"maxLength":   MaxPostLength,
		"tone":        toneInstruction,
		"length":      lengthInstruction,
		"userContext": config.User.describe(),
		"prompt":      config.Prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("error formatting post prompt: %w", err)
	}

	completion, err := g.llm.Generate(ctx, formattedPrompt,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(100),
	)
	if err != nil {
		return nil, fmt.Errorf("error generating post: %w", err)
	}

	completion = strings.TrimSpace(completion)
	if completion == "" {
		return nil, ErrEmptyCompletion
	}

	post := TruncateToPostLimit(completion)
	return &GeneratedPost{
		Post:           post,
		CharacterCount: len([]rune(post)),
	}, nil
}
