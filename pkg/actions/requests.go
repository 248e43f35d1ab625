package actions

import "fmt"

// Every action request carries the acting profile and knows how to
// validate itself before any collaborator is touched.

type AuthorizeRequest struct {
	ProfileID string `json:"profileId"`
}

func (r AuthorizeRequest) Validate() error {
	if r.ProfileID == "" {
		return fmt.Errorf("%w: profileId is required", ErrInvalidRequest)
	}
	return nil
}

type CallbackRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

func (r CallbackRequest) Validate() error {
	if r.Code == "" || r.State == "" {
		return fmt.Errorf("%w: code and state are required", ErrInvalidRequest)
	}
	return nil
}

type DisconnectRequest struct {
	ProfileID string `json:"profileId"`
}

func (r DisconnectRequest) Validate() error {
	if r.ProfileID == "" {
		return fmt.Errorf("%w: profileId is required", ErrInvalidRequest)
	}
	return nil
}

type PostRequest struct {
	ProfileID string `json:"profileId"`
	Text      string `json:"text"`
}

func (r PostRequest) Validate() error {
	if r.ProfileID == "" {
		return fmt.Errorf("%w: profileId is required", ErrInvalidRequest)
	}
	if r.Text == "" {
		return fmt.Errorf("%w: text is required", ErrInvalidRequest)
	}
	return nil
}

type SearchRequest struct {
	ProfileID  string `json:"profileId"`
	Query      string `json:"query"`
	MaxResults int    `json:"maxResults"`
}

func (r SearchRequest) Validate() error {
	if r.ProfileID == "" {
		return fmt.Errorf("%w: profileId is required", ErrInvalidRequest)
	}
	if r.Query == "" {
		return fmt.Errorf("%w: query is required", ErrInvalidRequest)
	}
	return nil
}

type FindAndSaveRequest struct {
	ProfileID string `json:"profileId"`
}

func (r FindAndSaveRequest) Validate() error {
	if r.ProfileID == "" {
		return fmt.Errorf("%w: profileId is required", ErrInvalidRequest)
	}
	return nil
}

// GenerateResponseRequest targets a stored post either by its row id or
// by the provider tweet id
type GenerateResponseRequest struct {
	ProfileID string `json:"profileId"`
	PostID    uint   `json:"postId"`
	TweetID   string `json:"tweetId"`
}

func (r GenerateResponseRequest) Validate() error {
	if r.ProfileID == "" {
		return fmt.Errorf("%w: profileId is required", ErrInvalidRequest)
	}
	if r.PostID == 0 && r.TweetID == "" {
		return fmt.Errorf("%w: postId or tweetId is required", ErrInvalidRequest)
	}
	return nil
}

// SendReplyRequest publishes a reply to a stored post. ReplyText overrides
// the stored AI response when provided.
type SendReplyRequest struct {
	ProfileID string `json:"profileId"`
	PostID    uint   `json:"postId"`
	TweetID   string `json:"tweetId"`
	ReplyText string `json:"replyText"`
}

func (r SendReplyRequest) Validate() error {
	if r.ProfileID == "" {
		return fmt.Errorf("%w: profileId is required", ErrInvalidRequest)
	}
	if r.PostID == 0 && r.TweetID == "" {
		return fmt.Errorf("%w: postId or tweetId is required", ErrInvalidRequest)
	}
	return nil
}

type GeneratePostRequest struct {
	ProfileID string `json:"profileId"`
	Prompt    string `json:"prompt"`
	Tone      string `json:"tone"`
	Length    string `json:"length"`
}

func (r GeneratePostRequest) Validate() error {
	if r.ProfileID == "" {
		return fmt.Errorf("%w: profileId is required", ErrInvalidRequest)
	}
	if r.Prompt == "" {
		return fmt.Errorf("%w: prompt is required", ErrInvalidRequest)
	}
	return nil
}

type GenerateDraftsRequest struct {
	ProfileID string `json:"profileId"`
}

func (r GenerateDraftsRequest) Validate() error {
	if r.ProfileID == "" {
		return fmt.Errorf("%w: profileId is required", ErrInvalidRequest)
	}
	return nil
}
