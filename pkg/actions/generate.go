package actions

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/brandpilot/brandpilot/pkg/content"
	"github.com/brandpilot/brandpilot/pkg/db/models"
	"github.com/brandpilot/brandpilot/pkg/thoughts"
)

// GeneratePostResult carries a single generated draft candidate
type GeneratePostResult struct {
	Post           string `json:"post"`
	CharacterCount int    `json:"characterCount"`
}

// GeneratePost turns a user prompt into platform-ready post text with the
// requested tone and length
func (d *Dispatcher) GeneratePost(ctx context.Context, req GeneratePostRequest) (*GeneratePostResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}
	length := req.Length
	if length == "" {
		length = "medium"
	}
	if !thoughts.ToneSupported(tone) {
		return nil, fmt.Errorf("%w: unsupported tone %q", ErrInvalidRequest, tone)
	}
	if !thoughts.LengthSupported(length) {
		return nil, fmt.Errorf("%w: unsupported length %q", ErrInvalidRequest, length)
	}

	profile, err := d.profiles.Get(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	generated, err := d.generator.GeneratePost(ctx, thoughts.PostConfig{
		Prompt: req.Prompt,
		Tone:   tone,
		Length: length,
		User:   userContext(profile),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	d.logger.WithFields(logrus.Fields{
		"profile_id": req.ProfileID,
		"action":     "generatePost",
		"tone":       tone,
		"length":     length,
	}).Info("Post generated")

	return &GeneratePostResult{Post: generated.Post, CharacterCount: generated.CharacterCount}, nil
}

// GenerateDraftsResult reports the drafts stored from one bulk run
type GenerateDraftsResult struct {
	Count  int                `json:"count"`
	Drafts []models.DraftPost `json:"drafts"`
}

// GenerateDrafts asks the content collaborator for a batch of draft
// candidates based on the profile's preferences and stores each one
func (d *Dispatcher) GenerateDrafts(ctx context.Context, req GenerateDraftsRequest) (*GenerateDraftsResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile, err := d.profiles.Get(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	resp, err := d.content.Generate(ctx, content.GenerateRequest{
		TopicsOfInterest: []string(profile.TopicsOfInterest),
		AIVoice:          profile.AIVoice,
		AboutContext:     profile.AboutContext,
		PostPreference:   profile.Goal,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	result := &GenerateDraftsResult{}
	for _, text := range resp.Contents {
		draft, err := d.drafts.Create(ctx, req.ProfileID, text, models.PlatformTwitter, resp.URLContent)
		if err != nil {
			return nil, err
		}
		result.Drafts = append(result.Drafts, *draft)
	}
	result.Count = len(result.Drafts)

	d.logger.WithFields(logrus.Fields{
		"profile_id": req.ProfileID,
		"action":     "generateDrafts",
		"count":      result.Count,
	}).Info("Drafts generated and stored")

	return result, nil
}
