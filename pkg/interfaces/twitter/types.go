package twitter

// Tweet represents a Twitter post with the v2 API fields BrandPilot requests
type Tweet struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	AuthorID  string `json:"author_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`

	PublicMetrics struct {
		RetweetCount int `json:"retweet_count"`
		ReplyCount   int `json:"reply_count"`
		LikeCount    int `json:"like_count"`
		QuoteCount   int `json:"quote_count"`
	} `json:"public_metrics,omitempty"`

	ContextAnnotations []ContextAnnotation `json:"context_annotations,omitempty"`
}

// ContextAnnotation is Twitter's topical annotation of a tweet
type ContextAnnotation struct {
	Domain struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	} `json:"domain"`
	Entity struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	} `json:"entity"`
}

// User represents a Twitter user object
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`

	PublicMetrics struct {
		FollowersCount int `json:"followers_count"`
		FollowingCount int `json:"following_count"`
		TweetCount     int `json:"tweet_count"`
		ListedCount    int `json:"listed_count"`
	} `json:"public_metrics,omitempty"`
}

// Meta contains pagination information about a search response
type Meta struct {
	ResultCount int    `json:"result_count,omitempty"`
	NextToken   string `json:"next_token,omitempty"`
	NewestID    string `json:"newest_id,omitempty"`
	OldestID    string `json:"oldest_id,omitempty"`
}

// SearchResponse is the Twitter recent-search response format
type SearchResponse struct {
	Data     []Tweet `json:"data"`
	Includes *struct {
		Users []User `json:"users,omitempty"`
	} `json:"includes,omitempty"`
	Meta *Meta `json:"meta,omitempty"`
}

// AuthorsByID maps the expanded author objects by user id
func (r *SearchResponse) AuthorsByID() map[string]User {
	authors := make(map[string]User)
	if r.Includes == nil {
		return authors
	}
	for _, u := range r.Includes.Users {
		authors[u.ID] = u
	}
	return authors
}

// TweetResponse is the response format for single-tweet write operations
type TweetResponse struct {
	Data *Tweet `json:"data"`
}

// UserResponse is the response format for the users/me endpoint
type UserResponse struct {
	Data *User `json:"data"`
}
