package pkce

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/brandpilot/brandpilot/pkg/db/models"
)

// DefaultSessionTTL bounds how long an authorization attempt may stay
// outstanding before its callback is rejected.
const DefaultSessionTTL = 10 * time.Minute

// ErrSessionNotFound is returned when no live session matches a state
// value: the state is unknown, already consumed, or expired.
var ErrSessionNotFound = errors.New("invalid state parameter or expired session")

// SessionManager persists in-flight PKCE sessions. Sessions are keyed by
// their unique state value and consumed exactly once.
type SessionManager struct {
	db     *gorm.DB
	logger *logrus.Logger
	ttl    time.Duration
}

func NewSessionManager(db *gorm.DB, logger *logrus.Logger) *SessionManager {
	return &SessionManager{
		db:     db,
		logger: logger,
		ttl:    DefaultSessionTTL,
	}
}

// Begin starts an authorization attempt for a profile: generates a fresh
// verifier/state pair and persists the session. The caller derives the
// challenge from the returned verifier when building the authorization URL.
func (m *SessionManager) Begin(ctx context.Context, profileID string) (*models.PKCESession, error) {
	verifier, err := GenerateCodeVerifier()
	if err != nil {
		return nil, err
	}

	session := &models.PKCESession{
		State:        GenerateState(),
		CodeVerifier: verifier,
		ProfileID:    profileID,
		ExpiresAt:    time.Now().Add(m.ttl),
	}

	if err := m.db.WithContext(ctx).Create(session).Error; err != nil {
		m.logger.WithError(err).WithField("profile_id", profileID).Error("Failed to store auth session")
		return nil, fmt.Errorf("failed to store auth session: %w", err)
	}

	m.logger.WithFields(logrus.Fields{
		"profile_id": profileID,
		"state":      session.State,
		"expires_at": session.ExpiresAt,
	}).Debug("Started PKCE session")

	return session, nil
}

// Consume looks up the live session matching state and deletes it, so a
// second consumption of the same state fails. Expired sessions are treated
// as missing.
func (m *SessionManager) Consume(ctx context.Context, state string) (*models.PKCESession, error) {
	var session models.PKCESession
	err := m.db.WithContext(ctx).
		Where("state = ? AND expires_at > ?", state, time.Now()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m.logger.WithField("state", state).Warn("No auth session found for state")
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to look up auth session: %w", err)
	}

	result := m.db.WithContext(ctx).Delete(&models.PKCESession{}, session.ID)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to consume auth session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Lost a race with a concurrent callback for the same state
		return nil, ErrSessionNotFound
	}

	m.logger.WithFields(logrus.Fields{
		"profile_id": session.ProfileID,
		"state":      state,
	}).Debug("Consumed PKCE session")

	return &session, nil
}

// PurgeExpired deletes sessions whose callback never arrived
func (m *SessionManager) PurgeExpired(ctx context.Context) (int64, error) {
	result := m.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&models.PKCESession{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
