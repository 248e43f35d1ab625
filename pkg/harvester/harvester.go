// Package harvester discovers posts relevant to a user's brand and
// persists them for later engagement.
package harvester

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/brandpilot/brandpilot/pkg/db/models"
	"github.com/brandpilot/brandpilot/pkg/interfaces/twitter"
	"github.com/brandpilot/brandpilot/pkg/memory"
	"github.com/brandpilot/brandpilot/pkg/ratelimit"
)

const (
	// DefaultMaxCandidates bounds how many tweets one discovery run considers
	DefaultMaxCandidates = 10

	searchPageSize = 10

	// pageInterval paces consecutive search pages within one run
	pageInterval = time.Second
)

// ErrNoResults indicates a discovery run stored nothing new
var ErrNoResults = errors.New("no new relevant posts found")

// Result summarizes one discovery run
type Result struct {
	NewPostsCount     int
	SkippedPostsCount int
	Posts             []models.RelevantPost
}

// Harvester runs the search-classify-store pipeline for a profile
type Harvester struct {
	client        *twitter.TwitterClient
	connections   *memory.ConnectionStore
	profiles      *memory.ProfileStore
	posts         *memory.RelevantPostStore
	limiter       ratelimit.Limiter
	pacer         *rate.Limiter
	logger        *logrus.Logger
	maxCandidates int
}

func NewHarvester(
	client *twitter.TwitterClient,
	connections *memory.ConnectionStore,
	profiles *memory.ProfileStore,
	posts *memory.RelevantPostStore,
	limiter ratelimit.Limiter,
	logger *logrus.Logger,
) *Harvester {
	return &Harvester{
		client:        client,
		connections:   connections,
		profiles:      profiles,
		posts:         posts,
		limiter:       limiter,
		pacer:         rate.NewLimiter(rate.Every(pageInterval), 1),
		logger:        logger,
		maxCandidates: DefaultMaxCandidates,
	}
}

// Search runs a single paginated recent search on behalf of the profile
// without persisting anything. The local rate limiter is consulted first
// and force-exhausted if the provider rejects the call with 429.
func (h *Harvester) Search(ctx context.Context, profileID, query string, maxResults int) (*twitter.SearchResponse, error) {
	conn, err := h.connections.GetActive(ctx, profileID, models.PlatformTwitter)
	if err != nil {
		return nil, err
	}

	decision := h.limiter.Check(profileID)
	if !decision.Allowed {
		return nil, &ratelimit.LimitExceededError{ResetAt: decision.ResetAt}
	}

	resp, err := h.client.SearchRecent(ctx, conn.AccessToken, twitter.SearchParams{
		Query:      query,
		MaxResults: maxResults,
	})
	if err != nil {
		if twitter.IsRateLimited(err) {
			resetAt := h.limiter.ForceExhaust(profileID)
			return nil, &ratelimit.LimitExceededError{ResetAt: resetAt}
		}
		return nil, err
	}

	h.logger.WithFields(logrus.Fields{
		"profile_id":   profileID,
		"result_count": len(resp.Data),
		"remaining":    decision.Remaining,
	}).Info("Search completed")

	return resp, nil
}

// FindAndSave searches for posts matching the profile's interests,
// classifies them, and stores every candidate not already on record.
// Duplicates are counted but never overwritten.
func (h *Harvester) FindAndSave(ctx context.Context, profileID string) (*Result, error) {
	profile, err := h.profiles.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}

	onboarding, err := h.profiles.GetOnboardingByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}

	conn, err := h.connections.GetActive(ctx, profileID, models.PlatformTwitter)
	if err != nil {
		return nil, err
	}

	decision := h.limiter.Check(profileID)
	if !decision.Allowed {
		return nil, &ratelimit.LimitExceededError{ResetAt: decision.ResetAt}
	}

	query := BuildQuery(profile, onboarding)
	h.logger.WithFields(logrus.Fields{
		"profile_id":   profileID,
		"query_length": len(query),
	}).Info("Starting relevant post discovery")

	candidates, authors, err := h.collect(ctx, profileID, conn.AccessToken, query)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, tweet := range candidates {
		post := h.buildPost(profileID, tweet, authors)

		inserted, err := h.posts.Save(ctx, post)
		if err != nil {
			return nil, err
		}
		if inserted {
			result.NewPostsCount++
			result.Posts = append(result.Posts, *post)
		} else {
			result.SkippedPostsCount++
		}
	}

	h.logger.WithFields(logrus.Fields{
		"profile_id": profileID,
		"new":        result.NewPostsCount,
		"skipped":    result.SkippedPostsCount,
	}).Info("Relevant post discovery finished")

	if result.NewPostsCount == 0 {
		return result, ErrNoResults
	}
	return result, nil
}

// collect pages through recent search results until maxCandidates tweets
// are gathered or the provider runs out of pages
func (h *Harvester) collect(ctx context.Context, profileID, accessToken, query string) ([]twitter.Tweet, map[string]twitter.User, error) {
	var (
		tweets    []twitter.Tweet
		authors   = make(map[string]twitter.User)
		nextToken string
	)

	for len(tweets) < h.maxCandidates {
		if err := h.pacer.Wait(ctx); err != nil {
			return nil, nil, err
		}

		resp, err := h.client.SearchRecent(ctx, accessToken, twitter.SearchParams{
			Query:           query,
			MaxResults:      searchPageSize,
			PaginationToken: nextToken,
		})
		if err != nil {
			if twitter.IsRateLimited(err) {
				h.limiter.ForceExhaust(profileID)
			}
			return nil, nil, err
		}

		for id, user := range resp.AuthorsByID() {
			authors[id] = user
		}
		for _, tweet := range resp.Data {
			if len(tweets) >= h.maxCandidates {
				break
			}
			tweets = append(tweets, tweet)
		}

		if resp.Meta == nil || resp.Meta.NextToken == "" {
			break
		}
		nextToken = resp.Meta.NextToken
	}

	return tweets, authors, nil
}

func (h *Harvester) buildPost(profileID string, tweet twitter.Tweet, authors map[string]twitter.User) *models.RelevantPost {
	post := &models.RelevantPost{
		ProfileID:    profileID,
		TweetID:      tweet.ID,
		AuthorID:     tweet.AuthorID,
		Content:      tweet.Text,
		Topic:        ClassifyTopic(tweet),
		RetweetCount: tweet.PublicMetrics.RetweetCount,
		LikeCount:    tweet.PublicMetrics.LikeCount,
		ReplyCount:   tweet.PublicMetrics.ReplyCount,
		QuoteCount:   tweet.PublicMetrics.QuoteCount,
	}

	author, known := authors[tweet.AuthorID]
	if known {
		post.AuthorName = author.Name
		post.AuthorUsername = author.Username
		post.URL = fmt.Sprintf("https://twitter.com/%s/status/%s", author.Username, tweet.ID)
	} else {
		post.URL = fmt.Sprintf("https://twitter.com/i/web/status/%s", tweet.ID)
	}

	if tweet.CreatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, tweet.CreatedAt); err == nil {
			post.TweetCreatedAt = &parsed
		}
	}

	if len(tweet.ContextAnnotations) > 0 {
		if raw, err := json.Marshal(tweet.ContextAnnotations); err == nil {
			post.Annotations = string(raw)
		}
	}

	return post
}
