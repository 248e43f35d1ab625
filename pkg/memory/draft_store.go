package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/brandpilot/brandpilot/pkg/db/models"
)

// ErrDraftNotFound is returned when a referenced draft is absent or, for
// Publish, no longer in the draft state
var ErrDraftNotFound = errors.New("draft post not found")

// DraftStore persists locally authored and generated posts
type DraftStore struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewDraftStore(db *gorm.DB, logger *logrus.Logger) *DraftStore {
	return &DraftStore{
		db:     db,
		logger: logger,
	}
}

// Create saves a new draft. Platform defaults to twitter.
func (s *DraftStore) Create(ctx context.Context, profileID, content, platform, url string) (*models.DraftPost, error) {
	if platform == "" {
		platform = models.PlatformTwitter
	}

	post := &models.DraftPost{
		ProfileID: profileID,
		Platform:  platform,
		Content:   content,
		Status:    models.StatusDraft,
		URL:       url,
	}

	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create draft post: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"profile_id": profileID,
		"post_id":    post.ID,
	}).Debug("Created draft post")

	return post, nil
}

// ListDrafts returns a profile's unpublished posts, newest first
func (s *DraftStore) ListDrafts(ctx context.Context, profileID string) ([]models.DraftPost, error) {
	var posts []models.DraftPost
	err := s.db.WithContext(ctx).
		Where("profile_id = ? AND status = ?", profileID, models.StatusDraft).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	return posts, nil
}

// UpdateContent replaces a draft's text
func (s *DraftStore) UpdateContent(ctx context.Context, id uint, content string) error {
	result := s.db.WithContext(ctx).
		Model(&models.DraftPost{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update draft content: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDraftNotFound
	}
	return nil
}

// Publish moves a post draft -> published. The transition is one-way: a
// published post never matches the draft predicate again.
func (s *DraftStore) Publish(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).
		Model(&models.DraftPost{}).
		Where("id = ? AND status = ?", id, models.StatusDraft).
		Updates(map[string]interface{}{
			"status":     models.StatusPublished,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to publish draft: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDraftNotFound
	}

	s.logger.WithField("post_id", id).Info("Draft published")
	return nil
}

// Delete removes a post on explicit user request
func (s *DraftStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.DraftPost{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete draft: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDraftNotFound
	}
	return nil
}
