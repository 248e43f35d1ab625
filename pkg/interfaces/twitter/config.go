package twitter

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Twitter OAuth 2.0 and v2 API endpoints
const (
	DefaultBaseURL  = "https://api.twitter.com/2"
	DefaultAuthURL  = "https://twitter.com/i/oauth2/authorize"
	DefaultTokenURL = "https://api.twitter.com/2/oauth2/token"
)

// DefaultScopes are the OAuth2 scopes BrandPilot requests. offline.access
// is required to receive a refresh token.
var DefaultScopes = []string{"tweet.read", "tweet.write", "users.read", "offline.access"}

type TwitterConfig struct {
	// OAuth2 application credentials
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string

	// API Endpoints
	BaseURL        string
	AuthURL        string
	TokenURL       string
	TweetEndpoint  string
	SearchEndpoint string
	MeEndpoint     string

	// API Fields Configuration (based on Twitter v2 data dictionary)
	TweetFields []string
	UserFields  []string
	Expansions  []string

	// General Config
	Logger *logrus.Logger
}

func NewTwitterConfig() (*TwitterConfig, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	config := &TwitterConfig{
		ClientID:     os.Getenv("TWITTER_CLIENT_ID"),
		ClientSecret: os.Getenv("TWITTER_CLIENT_SECRET"),
		RedirectURI:  os.Getenv("TWITTER_REDIRECT_URI"),
		Scopes:       DefaultScopes,

		BaseURL:        getEnvOrDefault("TWITTER_API_BASE_URL", DefaultBaseURL),
		AuthURL:        getEnvOrDefault("TWITTER_AUTH_URL", DefaultAuthURL),
		TokenURL:       getEnvOrDefault("TWITTER_TOKEN_URL", DefaultTokenURL),
		TweetEndpoint:  "/tweets",
		SearchEndpoint: "/tweets/search/recent",
		MeEndpoint:     "/users/me",

		TweetFields: []string{
			"id",
			"text",
			"created_at",
			"author_id",
			"public_metrics",
			"context_annotations",
		},
		UserFields: []string{"name", "username", "public_metrics"},
		Expansions: []string{"author_id"},

		Logger: func() *logrus.Logger {
			log := logrus.New()
			if level := os.Getenv("LOG_LEVEL"); level != "" {
				if parsedLevel, err := logrus.ParseLevel(level); err == nil {
					log.SetLevel(parsedLevel)
				}
			}
			return log
		}(),
	}

	config.Logger.WithFields(logrus.Fields{
		"client_id_exists": config.ClientID != "",
		"redirect_uri":     config.RedirectURI,
		"base_url":         config.BaseURL,
	}).Debug("Twitter config initialized")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *TwitterConfig) Validate() error {
	if c.Logger == nil {
		return fmt.Errorf("logger is required")
	}
	if c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("TWITTER_CLIENT_ID and TWITTER_CLIENT_SECRET must be provided")
	}
	if c.RedirectURI == "" {
		return fmt.Errorf("TWITTER_REDIRECT_URI must be provided")
	}

	// Set default endpoints if not provided
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.AuthURL == "" {
		c.AuthURL = DefaultAuthURL
	}
	if c.TokenURL == "" {
		c.TokenURL = DefaultTokenURL
	}
	if c.TweetEndpoint == "" {
		c.TweetEndpoint = "/tweets"
	}
	if c.SearchEndpoint == "" {
		c.SearchEndpoint = "/tweets/search/recent"
	}
	if c.MeEndpoint == "" {
		c.MeEndpoint = "/users/me"
	}
	if len(c.Scopes) == 0 {
		c.Scopes = DefaultScopes
	}

	return nil
}

// GetTweetFields returns the configured tweet fields as a comma-joined string
func (c *TwitterConfig) GetTweetFields() string {
	return strings.Join(c.TweetFields, ",")
}

// GetUserFields returns the configured user fields as a comma-joined string
func (c *TwitterConfig) GetUserFields() string {
	return strings.Join(c.UserFields, ",")
}

// GetExpansions returns the configured expansions as a comma-joined string
func (c *TwitterConfig) GetExpansions() string {
	return strings.Join(c.Expansions, ",")
}

// Helper function to get environment variable with default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
