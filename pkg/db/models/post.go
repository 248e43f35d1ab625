package models

import (
	"time"
)

// DraftStatus represents the publishing state of a drafted post
type DraftStatus string

const (
	StatusDraft     DraftStatus = "draft"
	StatusPublished DraftStatus = "published"
)

// RelevantPost is a third-party tweet discovered via search, stored for
// potential engagement. (profile_id, tweet_id) is unique so the same
// discovery is never saved twice.
type RelevantPost struct {
	ID        uint   `gorm:"primaryKey;column:id"`
	ProfileID string `gorm:"column:profile_id;not null;uniqueIndex:idx_relevant_posts_profile_tweet"`
	TweetID   string `gorm:"column:tweet_id;not null;uniqueIndex:idx_relevant_posts_profile_tweet"`

	AuthorID       string `gorm:"column:author_id"`
	AuthorName     string `gorm:"column:author_name"`
	AuthorUsername string `gorm:"column:author_username"`
	Content        string `gorm:"column:content;type:text;not null"`
	URL            string `gorm:"column:url"`

	TweetCreatedAt *time.Time `gorm:"column:tweet_created_at"`

	// Engagement counters from the provider's public_metrics
	RetweetCount int `gorm:"column:retweet_count;default:0"`
	LikeCount    int `gorm:"column:like_count;default:0"`
	ReplyCount   int `gorm:"column:reply_count;default:0"`
	QuoteCount   int `gorm:"column:quote_count;default:0"`

	Topic       string `gorm:"column:topic"`
	Annotations string `gorm:"column:annotations;type:jsonb"`

	AIResponse string `gorm:"column:ai_response;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for the RelevantPost model
func (RelevantPost) TableName() string {
	return "relevant_posts"
}

// DraftPost is locally authored or generated content awaiting publication.
// Status only ever moves draft -> published.
type DraftPost struct {
	ID        uint        `gorm:"primaryKey;column:id"`
	ProfileID string      `gorm:"column:profile_id;not null;index"`
	Platform  string      `gorm:"column:platform;not null;default:twitter"`
	Content   string      `gorm:"column:content;type:text;not null"`
	Status    DraftStatus `gorm:"column:status;not null;default:draft"`
	URL       string      `gorm:"column:url"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for the DraftPost model
func (DraftPost) TableName() string {
	return "posts"
}
