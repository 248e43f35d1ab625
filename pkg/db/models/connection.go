package models

import (
	"time"
)

// PlatformTwitter is the only platform BrandPilot currently connects to.
const PlatformTwitter = "twitter"

// SocialConnection links a profile to an external platform account.
// At most one row exists per (profile_id, platform).
type SocialConnection struct {
	ID        uint   `gorm:"primaryKey;column:id"`
	ProfileID string `gorm:"column:profile_id;not null;uniqueIndex:idx_connections_profile_platform"`
	Platform  string `gorm:"column:platform;not null;uniqueIndex:idx_connections_profile_platform"`

	IsConnected    bool       `gorm:"column:is_connected;default:false"`
	AccessToken    string     `gorm:"column:access_token"`
	RefreshToken   string     `gorm:"column:refresh_token"`
	TokenExpiresAt *time.Time `gorm:"column:token_expires_at"`

	// Provider profile snapshot captured at connect time
	AccountID       string `gorm:"column:account_id"`
	AccountName     string `gorm:"column:account_name"`
	AccountUsername string `gorm:"column:account_username"`
	FollowersCount  int    `gorm:"column:followers_count;default:0"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for the SocialConnection model
func (SocialConnection) TableName() string {
	return "social_connections"
}

// TokenExpiresWithin reports whether the access token expires inside d.
// Connections without a recorded expiry never report true.
func (c *SocialConnection) TokenExpiresWithin(d time.Duration) bool {
	if c.TokenExpiresAt == nil {
		return false
	}
	return c.TokenExpiresAt.Before(time.Now().Add(d))
}

// PKCESession is an in-flight OAuth2 authorization attempt. Rows are
// single-use: a successful callback consumes and deletes the matching
// session, and anything past ExpiresAt is garbage.
type PKCESession struct {
	ID           uint      `gorm:"primaryKey;column:id"`
	State        string    `gorm:"column:state;uniqueIndex;not null"`
	CodeVerifier string    `gorm:"column:code_verifier;not null"`
	ProfileID    string    `gorm:"column:profile_id;not null"`
	ExpiresAt    time.Time `gorm:"column:expires_at;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for the PKCESession model
func (PKCESession) TableName() string {
	return "pkce_sessions"
}
