// Package jobs holds the periodic maintenance tasks run by the cron
// scheduler: proactive token refresh and PKCE session cleanup.
package jobs

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brandpilot/brandpilot/pkg/interfaces/twitter"
	"github.com/brandpilot/brandpilot/pkg/memory"
)

// refreshHorizon is how far ahead of expiry tokens get refreshed
const refreshHorizon = 30 * time.Minute

// TokenRefreshJob keeps connected accounts usable by refreshing access
// tokens before they expire
type TokenRefreshJob struct {
	client      *twitter.TwitterClient
	connections *memory.ConnectionStore
	logger      *logrus.Logger
}

func NewTokenRefreshJob(client *twitter.TwitterClient, connections *memory.ConnectionStore, logger *logrus.Logger) *TokenRefreshJob {
	return &TokenRefreshJob{
		client:      client,
		connections: connections,
		logger:      logger,
	}
}

// Run refreshes every connection whose token expires within the horizon.
// Individual failures are logged and skipped so one bad connection does
// not block the rest.
func (j *TokenRefreshJob) Run() {
	ctx := context.Background()

	conns, err := j.connections.ListExpiring(ctx, refreshHorizon)
	if err != nil {
		j.logger.WithError(err).Error("Failed to list expiring connections")
		return
	}
	if len(conns) == 0 {
		return
	}

	j.logger.WithField("count", len(conns)).Info("Refreshing expiring tokens")

	for _, conn := range conns {
		if conn.RefreshToken == "" {
			j.logger.WithField("profile_id", conn.ProfileID).Warn("Connection has no refresh token, skipping")
			continue
		}

		token, err := j.client.RefreshToken(ctx, conn.RefreshToken)
		if err != nil {
			j.logger.WithFields(logrus.Fields{
				"profile_id": conn.ProfileID,
				"error":      err.Error(),
			}).Error("Token refresh failed")
			continue
		}

		var expiresAt *time.Time
		if !token.Expiry.IsZero() {
			expiry := token.Expiry
			expiresAt = &expiry
		}

		refreshToken := token.RefreshToken
		if refreshToken == "" {
			refreshToken = conn.RefreshToken
		}

		if err := j.connections.UpdateTokens(ctx, conn.ID, token.AccessToken, refreshToken, expiresAt); err != nil {
			j.logger.WithFields(logrus.Fields{
				"profile_id": conn.ProfileID,
				"error":      err.Error(),
			}).Error("Failed to store refreshed tokens")
			continue
		}

		j.logger.WithField("profile_id", conn.ProfileID).Info("Token refreshed")
	}
}
