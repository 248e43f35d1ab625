package actions

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/brandpilot/brandpilot/pkg/db/models"
	"github.com/brandpilot/brandpilot/pkg/interfaces/twitter"
)

// SearchResult is a pass-through of the provider's recent-search page
type SearchResult struct {
	Tweets  []twitter.Tweet `json:"tweets"`
	Authors []twitter.User  `json:"authors,omitempty"`
	Meta    *twitter.Meta   `json:"meta,omitempty"`
}

// Search runs an ad-hoc recent search with the caller's query
func (d *Dispatcher) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := d.harvester.Search(ctx, req.ProfileID, req.Query, req.MaxResults)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Tweets: resp.Data, Meta: resp.Meta}
	if resp.Includes != nil {
		result.Authors = resp.Includes.Users
	}
	return result, nil
}

// FindAndSaveResult reports what a discovery run stored
type FindAndSaveResult struct {
	NewPostsCount     int                   `json:"newPostsCount"`
	SkippedPostsCount int                   `json:"skippedPostsCount"`
	Posts             []models.RelevantPost `json:"posts"`
}

// FindAndSave discovers posts relevant to the profile and persists every
// candidate not already stored
func (d *Dispatcher) FindAndSave(ctx context.Context, req FindAndSaveRequest) (*FindAndSaveResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := d.harvester.FindAndSave(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	d.logger.WithFields(logrus.Fields{
		"profile_id": req.ProfileID,
		"action":     "findAndSave",
		"new":        result.NewPostsCount,
		"skipped":    result.SkippedPostsCount,
	}).Info("Discovery run stored")

	return &FindAndSaveResult{
		NewPostsCount:     result.NewPostsCount,
		SkippedPostsCount: result.SkippedPostsCount,
		Posts:             result.Posts,
	}, nil
}
