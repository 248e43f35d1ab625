package pkce

import (
	"encoding/base64"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Code generation", func() {
	Describe("GenerateCodeVerifier", func() {
		It("produces an unpadded base64url string of 32 random bytes", func() {
			verifier, err := GenerateCodeVerifier()
			Expect(err).NotTo(HaveOccurred())
			Expect(verifier).To(HaveLen(43))

			decoded, err := base64.RawURLEncoding.DecodeString(verifier)
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded).To(HaveLen(32))
		})

		It("does not repeat across many generations", func() {
			seen := make(map[string]bool)
			for i := 0; i < 1000; i++ {
				verifier, err := GenerateCodeVerifier()
				Expect(err).NotTo(HaveOccurred())
				Expect(seen[verifier]).To(BeFalse(), "verifier repeated")
				seen[verifier] = true
			}
		})
	})

	Describe("GenerateCodeChallenge", func() {
		It("matches the RFC 7636 S256 example", func() {
			verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
			Expect(GenerateCodeChallenge(verifier)).To(Equal("E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM"))
		})

		It("is deterministic per verifier", func() {
			verifier, err := GenerateCodeVerifier()
			Expect(err).NotTo(HaveOccurred())
			Expect(GenerateCodeChallenge(verifier)).To(Equal(GenerateCodeChallenge(verifier)))

			other, err := GenerateCodeVerifier()
			Expect(err).NotTo(HaveOccurred())
			Expect(GenerateCodeChallenge(verifier)).NotTo(Equal(GenerateCodeChallenge(other)))
		})
	})

	Describe("GenerateState", func() {
		It("produces distinct values", func() {
			Expect(GenerateState()).NotTo(Equal(GenerateState()))
		})
	})
})
