package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/brandpilot/brandpilot/pkg/db/models"
)

// ErrPostNotFound is returned when a referenced relevant post is absent
var ErrPostNotFound = errors.New("relevant post not found")

// RelevantPostStore persists discovered third-party posts
type RelevantPostStore struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewRelevantPostStore(db *gorm.DB, logger *logrus.Logger) *RelevantPostStore {
	return &RelevantPostStore{
		db:     db,
		logger: logger,
	}
}

// Save inserts a discovered post unless (profile_id, tweet_id) already
// exists. Returns whether a new row was written, so callers can report
// new/skipped counts for a batch.
func (s *RelevantPostStore) Save(ctx context.Context, post *models.RelevantPost) (bool, error) {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "tweet_id"}},
		DoNothing: true,
	}).Create(post)
	if result.Error != nil {
		return false, fmt.Errorf("failed to save relevant post: %w", result.Error)
	}

	inserted := result.RowsAffected > 0

	s.logger.WithFields(logrus.Fields{
		"profile_id": post.ProfileID,
		"tweet_id":   post.TweetID,
		"topic":      post.Topic,
		"inserted":   inserted,
	}).Debug("Saved relevant post")

	return inserted, nil
}

// Get loads a post by its row id, scoped to the owning profile
func (s *RelevantPostStore) Get(ctx context.Context, profileID string, id uint) (*models.RelevantPost, error) {
	var post models.RelevantPost
	err := s.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load relevant post: %w", err)
	}
	return &post, nil
}

// GetByTweetID loads a post by the provider's tweet id for a profile
func (s *RelevantPostStore) GetByTweetID(ctx context.Context, profileID, tweetID string) (*models.RelevantPost, error) {
	var post models.RelevantPost
	err := s.db.WithContext(ctx).
		Where("profile_id = ? AND tweet_id = ?", profileID, tweetID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load relevant post: %w", err)
	}
	return &post, nil
}

// List returns a profile's discovered posts, newest first
func (s *RelevantPostStore) List(ctx context.Context, profileID string) ([]models.RelevantPost, error) {
	var posts []models.RelevantPost
	err := s.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list relevant posts: %w", err)
	}
	return posts, nil
}

// SetAIResponse records generated reply text on a post
func (s *RelevantPostStore) SetAIResponse(ctx context.Context, id uint, response string) error {
	result := s.db.WithContext(ctx).
		Model(&models.RelevantPost{}).
		Where("id = ?", id).
		Update("ai_response", response)
	if result.Error != nil {
		return fmt.Errorf("failed to store ai response: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// Delete removes a post on explicit user request
func (s *RelevantPostStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.RelevantPost{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete relevant post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
