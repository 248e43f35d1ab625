package models

import (
	"time"

	"github.com/lib/pq"
)

// Profile holds the user's content preferences. BrandPilot reads these to
// build search queries and prompt context; account management writes them.
type Profile struct {
	ID               string         `gorm:"primaryKey;column:id"`
	Email            string         `gorm:"column:email;uniqueIndex;not null"`
	AIVoice          string         `gorm:"column:ai_voice;default:professional"`
	Goal             string         `gorm:"column:goal"`
	AboutContext     string         `gorm:"column:about_context;type:text"`
	TopicsOfInterest pq.StringArray `gorm:"column:topics_of_interest;type:text[]"`
	CreatedAt        time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

// OnboardingProfile captures the answers from the onboarding wizard.
type OnboardingProfile struct {
	ID                  uint      `gorm:"primaryKey;column:id"`
	Email               string    `gorm:"column:email;uniqueIndex;not null"`
	Name                string    `gorm:"column:name"`
	Username            string    `gorm:"column:username"`
	UserType            string    `gorm:"column:user_type"`
	Domain              string    `gorm:"column:domain"`
	SocialMediaGoal     string    `gorm:"column:social_media_goal"`
	BusinessDescription string    `gorm:"column:business_description;type:text"`
	CreatedAt           time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for the OnboardingProfile model
func (OnboardingProfile) TableName() string {
	return "onboarding_profiles"
}
