package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultAPIURL is the hosted content-generation collaborator
const DefaultAPIURL = "https://backend-smqp.onrender.com/generate-content"

type Config struct {
	APIURL string
	Logger *logrus.Logger
}

func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	config := &Config{
		APIURL: os.Getenv("CONTENT_API_URL"),
		Logger: logrus.New(),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.Logger == nil {
		return fmt.Errorf("logger is required")
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	return nil
}

// GenerateRequest is the payload the collaborator expects
type GenerateRequest struct {
	TopicsOfInterest []string `json:"topics_of_interest"`
	AIVoice          string   `json:"ai_voice"`
	AboutContext     string   `json:"about_context"`
	PostPreference   string   `json:"post_preference"`
}

// GenerateResponse carries the generated draft candidates
type GenerateResponse struct {
	Contents   []string `json:"contents"`
	URLContent string   `json:"url_content,omitempty"`
}

// Client calls the external content-generation API
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: config.Logger,
	}, nil
}

// Generate requests a batch of draft candidates for the given profile data
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	log := c.logger.WithFields(logrus.Fields{
		"topics_count": len(req.TopicsOfInterest),
		"ai_voice":     req.AIVoice,
	})
	log.Debug("Calling content generation API")

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("content api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(respBody),
		}).Error("Content API error")
		return nil, fmt.Errorf("content api error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode content api response: %w", err)
	}

	if len(result.Contents) == 0 {
		return nil, fmt.Errorf("content api returned no contents")
	}

	log.WithField("contents_count", len(result.Contents)).Debug("Content generation succeeded")
	return &result, nil
}
