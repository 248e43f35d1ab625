package thoughts

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TruncateToPostLimit", func() {
	It("leaves short text untouched", func() {
		Expect(TruncateToPostLimit("hello")).To(Equal("hello"))
	})

	It("leaves text at exactly the limit untouched", func() {
		text := strings.Repeat("a", MaxPostLength)
		Expect(TruncateToPostLimit(text)).To(Equal(text))
	})

	It("cuts over-long text to 277 characters plus an ellipsis", func() {
		text := strings.Repeat("a", MaxPostLength+50)
		truncated := TruncateToPostLimit(text)
		Expect(truncated).To(HaveLen(MaxPostLength))
		Expect(truncated).To(HaveSuffix("..."))
		Expect(strings.TrimSuffix(truncated, "...")).To(Equal(strings.Repeat("a", 277)))
	})

	It("counts runes, not bytes", func() {
		text := strings.Repeat("é", MaxPostLength+1)
		truncated := TruncateToPostLimit(text)
		Expect([]rune(truncated)).To(HaveLen(MaxPostLength))
		Expect(truncated).To(HaveSuffix("..."))
	})
})
