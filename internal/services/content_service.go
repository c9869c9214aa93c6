package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"tiew/internal/models/response_models"
	"tiew/internal/repositories"
)

const (
	BlogPostsKey = "tiew.blog_posts"
	EventsKey    = "tiew.events"
)

type ContentServiceInterface interface {
	BlogPosts(ctx context.Context) []response_models.StoredBlogPost
	Events(ctx context.Context) []response_models.StoredEvent
}

// ContentService reads authored collections. It never writes them.
type ContentService struct {
	repo repositories.ContentRepository
	log  *zap.Logger
}

func NewContentService(repo repositories.ContentRepository, log *zap.Logger) *ContentService {
	return &ContentService{repo: repo, log: log}
}

func (s *ContentService) BlogPosts(ctx context.Context) []response_models.StoredBlogPost {
	var posts []response_models.StoredBlogPost
	if !s.read(ctx, BlogPostsKey, &posts) || posts == nil {
		return []response_models.StoredBlogPost{}
	}
	return posts
}

func (s *ContentService) Events(ctx context.Context) []response_models.StoredEvent {
	var events []response_models.StoredEvent
	if !s.read(ctx, EventsKey, &events) || events == nil {
		return []response_models.StoredEvent{}
	}
	return events
}

// read decodes the collection under key into out and reports whether it succeeded.
func (s *ContentService) read(ctx context.Context, key string, out any) bool {
	raw, err := s.repo.GetCollection(ctx, key)
	if err != nil {
		s.log.Warn("reading content collection failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn("malformed content collection", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}
