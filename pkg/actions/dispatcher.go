// Package actions implements the BrandPilot operations exposed over the
// function endpoint: connecting a Twitter account, publishing, discovery,
// and AI-assisted engagement.
package actions

import (
	"github.com/sirupsen/logrus"

	"github.com/brandpilot/brandpilot/pkg/content"
	"github.com/brandpilot/brandpilot/pkg/db/models"
	"github.com/brandpilot/brandpilot/pkg/harvester"
	"github.com/brandpilot/brandpilot/pkg/interfaces/twitter"
	"github.com/brandpilot/brandpilot/pkg/memory"
	"github.com/brandpilot/brandpilot/pkg/pkce"
	"github.com/brandpilot/brandpilot/pkg/thoughts"
)

// Dispatcher wires the action handlers to their collaborators. One
// instance serves all profiles.
type Dispatcher struct {
	client      *twitter.TwitterClient
	sessions    *pkce.SessionManager
	connections *memory.ConnectionStore
	profiles    *memory.ProfileStore
	posts       *memory.RelevantPostStore
	drafts      *memory.DraftStore
	harvester   *harvester.Harvester
	composer    thoughts.ReplyComposer
	generator   thoughts.PostGenerator
	content     *content.Client
	logger      *logrus.Logger
}

type DispatcherConfig struct {
	Client      *twitter.TwitterClient
	Sessions    *pkce.SessionManager
	Connections *memory.ConnectionStore
	Profiles    *memory.ProfileStore
	Posts       *memory.RelevantPostStore
	Drafts      *memory.DraftStore
	Harvester   *harvester.Harvester
	Composer    thoughts.ReplyComposer
	Generator   thoughts.PostGenerator
	Content     *content.Client
	Logger      *logrus.Logger
}

func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	return &Dispatcher{
		client:      cfg.Client,
		sessions:    cfg.Sessions,
		connections: cfg.Connections,
		profiles:    cfg.Profiles,
		posts:       cfg.Posts,
		drafts:      cfg.Drafts,
		harvester:   cfg.Harvester,
		composer:    cfg.Composer,
		generator:   cfg.Generator,
		content:     cfg.Content,
		logger:      cfg.Logger,
	}
}

// userContext builds the prompt context from a stored profile
func userContext(profile *models.Profile) thoughts.UserContext {
	return thoughts.UserContext{
		Voice:  profile.AIVoice,
		About:  profile.AboutContext,
		Topics: []string(profile.TopicsOfInterest),
	}
}
