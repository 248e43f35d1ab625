package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/brandpilot/brandpilot/pkg/db/models"
	"github.com/brandpilot/brandpilot/pkg/memory"
	"github.com/brandpilot/brandpilot/pkg/thoughts"
)

// findPost resolves a stored post by row id or by provider tweet id
func (d *Dispatcher) findPost(ctx context.Context, profileID string, postID uint, tweetID string) (*models.RelevantPost, error) {
	if postID != 0 {
		return d.posts.Get(ctx, profileID, postID)
	}
	return d.posts.GetByTweetID(ctx, profileID, tweetID)
}

// GenerateResponseResult carries the drafted reply for a stored post
type GenerateResponseResult struct {
	PostID   uint   `json:"postId"`
	TweetID  string `json:"tweetId"`
	Response string `json:"response"`
}

// GenerateResponse drafts a reply for a discovered post in the user's
// voice and stores it alongside the post
func (d *Dispatcher) GenerateResponse(ctx context.Context, req GenerateResponseRequest) (*GenerateResponseResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := d.findPost(ctx, req.ProfileID, req.PostID, req.TweetID)
	if err != nil {
		return nil, err
	}

	profile, err := d.profiles.Get(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	reply, err := d.composer.ComposeReply(ctx, thoughts.ReplyConfig{
		TweetText: post.Content,
		User:      userContext(profile),
	})
	if err != nil {
		if errors.Is(err, thoughts.ErrEmptyCompletion) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if err := d.posts.SetAIResponse(ctx, post.ID, reply); err != nil {
		return nil, err
	}

	d.logger.WithFields(logrus.Fields{
		"profile_id": req.ProfileID,
		"action":     "generateResponse",
		"post_id":    post.ID,
		"tweet_id":   post.TweetID,
	}).Info("Reply drafted for post")

	return &GenerateResponseResult{PostID: post.ID, TweetID: post.TweetID, Response: reply}, nil
}

// SendReplyResult reports a published reply
type SendReplyResult struct {
	ReplyTweetID string `json:"replyTweetId"`
	InReplyTo    string `json:"inReplyTo"`
	Text         string `json:"text"`
}

// SendReply publishes a reply to a discovered post. Explicit replyText
// wins over the stored AI response; with neither available the action
// fails before any provider call is made.
func (d *Dispatcher) SendReply(ctx context.Context, req SendReplyRequest) (*SendReplyResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := d.findPost(ctx, req.ProfileID, req.PostID, req.TweetID)
	if err != nil {
		return nil, err
	}

	text := req.ReplyText
	if text == "" {
		text = post.AIResponse
	}
	if text == "" {
		return nil, ErrNoReplyText
	}

	conn, err := d.connections.GetActive(ctx, req.ProfileID, models.PlatformTwitter)
	if err != nil {
		if errors.Is(err, memory.ErrNoConnection) {
			return nil, ErrNotConnected
		}
		return nil, err
	}

	tweet, err := d.client.PostReply(ctx, conn.AccessToken, thoughts.TruncateToPostLimit(text), post.TweetID)
	if err != nil {
		return nil, err
	}

	d.logger.WithFields(logrus.Fields{
		"profile_id": req.ProfileID,
		"action":     "sendReply",
		"post_id":    post.ID,
		"tweet_id":   tweet.ID,
	}).Info("Reply published")

	return &SendReplyResult{ReplyTweetID: tweet.ID, InReplyTo: post.TweetID, Text: tweet.Text}, nil
}
