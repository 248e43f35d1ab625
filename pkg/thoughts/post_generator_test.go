package thoughts

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DefaultPostGenerator", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("builds the prompt from tone, length, and user context", func() {
		model := &fakeModel{completion: "Shipping daily builds trust. #buildinpublic"}
		generator := NewPostGenerator(model)

		generated, err := generator.GeneratePost(ctx, PostConfig{
			Prompt: "why shipping daily matters",
			Tone:   "witty",
			Length: "short",
			User:   UserContext{About: "Indie SaaS founder"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(generated.Post).To(Equal("Shipping daily builds trust. #buildinpublic"))
		Expect(generated.CharacterCount).To(Equal(len([]rune(generated.Post))))

		Expect(model.prompts).To(HaveLen(1))
		prompt := model.prompts[0]
		Expect(prompt).To(ContainSubstring("why shipping daily matters"))
		Expect(prompt).To(ContainSubstring(toneInstructions["witty"]))
		Expect(prompt).To(ContainSubstring(lengthInstructions["short"]))
		Expect(prompt).To(ContainSubstring("Indie SaaS founder"))
	})

	It("rejects unsupported tones before calling the model", func() {
		model := &fakeModel{completion: "unused"}
		generator := NewPostGenerator(model)

		_, err := generator.GeneratePost(ctx, PostConfig{Prompt: "p", Tone: "sarcastic", Length: "short"})
		Expect(err).To(MatchError(ContainSubstring("unsupported tone")))
		Expect(model.prompts).To(BeEmpty())
	})

	It("rejects unsupported lengths before calling the model", func() {
		model := &fakeModel{completion: "unused"}
		generator := NewPostGenerator(model)

		_, err := generator.GeneratePost(ctx, PostConfig{Prompt: "p", Tone: "witty", Length: "epic"})
		Expect(err).To(MatchError(ContainSubstring("unsupported length")))
		Expect(model.prompts).To(BeEmpty())
	})

	It("truncates and reports the final character count", func() {
		model := &fakeModel{completion: strings.Repeat("c", 500)}
		generator := NewPostGenerator(model)

		generated, err := generator.GeneratePost(ctx, PostConfig{Prompt: "p", Tone: "professional", Length: "long"})
		Expect(err).NotTo(HaveOccurred())
		Expect(generated.CharacterCount).To(Equal(MaxPostLength))
		Expect(generated.Post).To(HaveSuffix("..."))
	})
})

var _ = Describe("Tone and length support", func() {
	It("knows the supported tones", func() {
		for _, tone := range []string{"professional", "friendly", "witty", "inspirational", "educational"} {
			Expect(ToneSupported(tone)).To(BeTrue(), "tone %s", tone)
		}
		Expect(ToneSupported("grumpy")).To(BeFalse())
	})

	It("knows the supported lengths", func() {
		for _, length := range []string{"short", "medium", "long"} {
			Expect(LengthSupported(length)).To(BeTrue(), "length %s", length)
		}
		Expect(LengthSupported("novel")).To(BeFalse())
	})
})
