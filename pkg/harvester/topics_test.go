package harvester

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brandpilot/brandpilot/pkg/interfaces/twitter"
)

var _ = Describe("ClassifyTopic", func() {
	It("prefers the provider's context annotation domain", func() {
		tweet := twitter.Tweet{Text: "random musings"}
		tweet.ContextAnnotations = []twitter.ContextAnnotation{{}}
		tweet.ContextAnnotations[0].Domain.Name = "Technology"

		Expect(ClassifyTopic(tweet)).To(Equal("Technology"))
	})

	It("classifies technology keywords", func() {
		Expect(ClassifyTopic(twitter.Tweet{Text: "Machine learning is eating software"})).To(Equal("AI & Technology"))
		Expect(ClassifyTopic(twitter.Tweet{Text: "new AI model dropped today"})).To(Equal("AI & Technology"))
	})

	It("does not match ai inside unrelated words", func() {
		Expect(ClassifyTopic(twitter.Tweet{Text: "waiting for the rain to stop"})).To(Equal("General"))
	})

	It("classifies startup keywords", func() {
		Expect(ClassifyTopic(twitter.Tweet{Text: "Every founder should talk to users weekly"})).To(Equal("Startups"))
	})

	It("classifies marketing keywords", func() {
		Expect(ClassifyTopic(twitter.Tweet{Text: "Your brand voice matters more than reach"})).To(Equal("Marketing"))
	})

	It("falls back to General", func() {
		Expect(ClassifyTopic(twitter.Tweet{Text: "what a lovely morning"})).To(Equal("General"))
	})
})
