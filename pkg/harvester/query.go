package harvester

import (
	"fmt"
	"strings"

	"github.com/brandpilot/brandpilot/pkg/db/models"
)

const (
	// mandatoryFilters keeps retweets and replies out of discovery results
	mandatoryFilters = "-is:retweet -is:reply"

	// maxQueryLength is the provider's limit on a search query string
	maxQueryLength = 4096

	// fallbackTerms is used when the profile yields no search terms at all
	fallbackTerms = "technology OR innovation OR startup"

	// descriptionWordLimit caps how much of the free-text business
	// description feeds the query
	descriptionWordLimit = 15
)

// BuildQuery constructs a recent-search query from the user's interest
// topics and onboarding answers, OR-joined and suffixed with the mandatory
// filters. Over-long queries are truncated at the last complete OR term.
func BuildQuery(profile *models.Profile, onboarding *models.OnboardingProfile) string {
	var terms []string

	for _, topic := range profile.TopicsOfInterest {
		terms = append(terms, quote(topic))
	}

	if onboarding != nil {
		if onboarding.UserType != "" {
			terms = append(terms, quote(onboarding.UserType))
		}
		if onboarding.Domain != "" {
			terms = append(terms, quote(onboarding.Domain))
		}
		if onboarding.SocialMediaGoal != "" {
			terms = append(terms, quote(onboarding.SocialMediaGoal))
		}
		terms = append(terms, descriptionTerms(onboarding.BusinessDescription)...)
	}

	if len(terms) == 0 {
		return fallbackTerms + " " + mandatoryFilters
	}

	query := strings.Join(terms, " OR ") + " " + mandatoryFilters

	if len(query) > maxQueryLength {
		// leave room to re-append the filters after the cut
		truncated := query[:maxQueryLength-len(mandatoryFilters)-1]
		if idx := strings.LastIndex(truncated, " OR "); idx > 0 {
			truncated = truncated[:idx]
		}
		query = truncated + " " + mandatoryFilters
	}

	return query
}

// descriptionTerms extracts quoted keywords from a free-text business
// description: the first 15 whitespace-split words longer than two
// characters, stripped of punctuation
func descriptionTerms(description string) []string {
	if description == "" {
		return nil
	}

	words := strings.Fields(description)
	if len(words) > descriptionWordLimit {
		words = words[:descriptionWordLimit]
	}

	var terms []string
	for _, word := range words {
		if len([]rune(word)) <= 2 {
			continue
		}
		cleaned := stripPunctuation(word)
		if cleaned == "" {
			continue
		}
		terms = append(terms, quote(cleaned))
	}
	return terms
}

func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ' ':
			return r
		default:
			return -1
		}
	}, s)
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
