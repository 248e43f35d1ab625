package jobs

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/brandpilot/brandpilot/pkg/pkce"
)

// SessionPurgeJob clears abandoned authorization attempts so the
// pkce_sessions table stays small
type SessionPurgeJob struct {
	sessions *pkce.SessionManager
	logger   *logrus.Logger
}

func NewSessionPurgeJob(sessions *pkce.SessionManager, logger *logrus.Logger) *SessionPurgeJob {
	return &SessionPurgeJob{
		sessions: sessions,
		logger:   logger,
	}
}

func (j *SessionPurgeJob) Run() {
	purged, err := j.sessions.PurgeExpired(context.Background())
	if err != nil {
		j.logger.WithError(err).Error("Failed to purge expired sessions")
		return
	}
	if purged > 0 {
		j.logger.WithField("count", purged).Info("Expired authorization sessions purged")
	}
}
