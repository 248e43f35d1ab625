package harvester

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brandpilot/brandpilot/pkg/db/models"
)

var _ = Describe("BuildQuery", func() {
	It("quotes interest topics and OR-joins them with the filters", func() {
		profile := &models.Profile{TopicsOfInterest: []string{"AI agents", "devtools"}}

		query := BuildQuery(profile, nil)
		Expect(query).To(Equal(`"AI agents" OR "devtools" -is:retweet -is:reply`))
	})

	It("folds onboarding answers into the query", func() {
		profile := &models.Profile{TopicsOfInterest: []string{"golang"}}
		onboarding := &models.OnboardingProfile{
			UserType:        "founder",
			Domain:          "developer tools",
			SocialMediaGoal: "grow audience",
		}

		query := BuildQuery(profile, onboarding)
		Expect(query).To(Equal(`"golang" OR "founder" OR "developer tools" OR "grow audience" -is:retweet -is:reply`))
	})

	It("extracts keywords from the business description", func() {
		profile := &models.Profile{}
		onboarding := &models.OnboardingProfile{
			BusinessDescription: "We build CI tooling, for Go teams!",
		}

		query := BuildQuery(profile, onboarding)
		// short words and bare punctuation are dropped, the rest is cleaned
		Expect(query).To(ContainSubstring(`"build"`))
		Expect(query).To(ContainSubstring(`"tooling"`))
		Expect(query).To(ContainSubstring(`"teams"`))
		Expect(query).NotTo(ContainSubstring(`"We"`))
		Expect(query).NotTo(ContainSubstring(`"for"`))
		Expect(query).NotTo(ContainSubstring(","))
	})

	It("takes at most fifteen description words", func() {
		words := make([]string, 30)
		for i := range words {
			words[i] = "keyword"
		}
		onboarding := &models.OnboardingProfile{BusinessDescription: strings.Join(words, " ")}

		query := BuildQuery(&models.Profile{}, onboarding)
		Expect(strings.Count(query, `"keyword"`)).To(Equal(15))
	})

	It("falls back to generic terms when the profile is empty", func() {
		query := BuildQuery(&models.Profile{}, nil)
		Expect(query).To(Equal("technology OR innovation OR startup -is:retweet -is:reply"))
	})

	It("stays under the provider limit and truncates at a term boundary", func() {
		var topics []string
		for i := 0; i < 400; i++ {
			topics = append(topics, strings.Repeat("x", 20))
		}
		profile := &models.Profile{TopicsOfInterest: topics}

		query := BuildQuery(profile, nil)
		Expect(len(query)).To(BeNumerically("<=", maxQueryLength))
		Expect(query).To(HaveSuffix(mandatoryFilters))
		// no dangling fragment: the part before the filters is whole quoted terms
		body := strings.TrimSuffix(query, " "+mandatoryFilters)
		for _, term := range strings.Split(body, " OR ") {
			Expect(term).To(HavePrefix(`"`))
			Expect(term).To(HaveSuffix(`"`))
		}
	})
})
