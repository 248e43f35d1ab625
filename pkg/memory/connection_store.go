package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/brandpilot/brandpilot/pkg/db/models"
)

// ErrNoConnection is returned when a profile has no active connection for
// the requested platform
var ErrNoConnection = errors.New("no active connection for platform")

// ConnectionStore persists social platform connections
type ConnectionStore struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewConnectionStore(db *gorm.DB, logger *logrus.Logger) *ConnectionStore {
	return &ConnectionStore{
		db:     db,
		logger: logger,
	}
}

// Upsert creates or replaces the connection for (profile, platform)
func (s *ConnectionStore) Upsert(ctx context.Context, conn *models.SocialConnection) error {
	s.logger.WithFields(logrus.Fields{
		"profile_id": conn.ProfileID,
		"platform":   conn.Platform,
		"username":   conn.AccountUsername,
	}).Debug("Upserting social connection")

	conn.UpdatedAt = time.Now()

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "profile_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"is_connected",
			"access_token",
			"refresh_token",
			"token_expires_at",
			"account_id",
			"account_name",
			"account_username",
			"followers_count",
			"updated_at",
		}),
	}).Create(conn).Error
	if err != nil {
		return fmt.Errorf("failed to upsert connection: %w", err)
	}

	return nil
}

// GetActive returns the connected row for (profile, platform) or
// ErrNoConnection when the user never connected, disconnected, or the
// stored token is gone
func (s *ConnectionStore) GetActive(ctx context.Context, profileID, platform string) (*models.SocialConnection, error) {
	var conn models.SocialConnection
	err := s.db.WithContext(ctx).
		Where("profile_id = ? AND platform = ? AND is_connected = ?", profileID, platform, true).
		First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoConnection
		}
		return nil, fmt.Errorf("failed to load connection: %w", err)
	}

	if conn.AccessToken == "" {
		return nil, ErrNoConnection
	}

	return &conn, nil
}

// Disconnect clears tokens and flags the connection inactive. The row is
// kept so the profile snapshot survives a reconnect.
func (s *ConnectionStore) Disconnect(ctx context.Context, profileID, platform string) error {
	err := s.db.WithContext(ctx).
		Model(&models.SocialConnection{}).
		Where("profile_id = ? AND platform = ?", profileID, platform).
		Updates(map[string]interface{}{
			"is_connected":     false,
			"access_token":     "",
			"refresh_token":    "",
			"token_expires_at": nil,
			"updated_at":       time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to disconnect: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"profile_id": profileID,
		"platform":   platform,
	}).Info("Disconnected social connection")

	return nil
}

// UpdateTokens replaces the token set on an existing connection
func (s *ConnectionStore) UpdateTokens(ctx context.Context, id uint, accessToken, refreshToken string, expiresAt *time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&models.SocialConnection{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"access_token":     accessToken,
			"refresh_token":    refreshToken,
			"token_expires_at": expiresAt,
			"updated_at":       time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update tokens: %w", err)
	}
	return nil
}

// ListExpiring returns connected rows whose token expires within the
// given horizon and that hold a refresh token
func (s *ConnectionStore) ListExpiring(ctx context.Context, within time.Duration) ([]models.SocialConnection, error) {
	var conns []models.SocialConnection
	deadline := time.Now().Add(within)

	err := s.db.WithContext(ctx).
		Where("is_connected = ? AND refresh_token <> '' AND token_expires_at IS NOT NULL AND token_expires_at < ?", true, deadline).
		Find(&conns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring connections: %w", err)
	}

	return conns, nil
}
