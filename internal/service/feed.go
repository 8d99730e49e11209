package service

import (
	"context"

	"github.com/nutritrack/nutritrack/internal/api"
	"github.com/nutritrack/nutritrack/internal/domain/model"
)

// FeedAPI is the slice of the post endpoints the feed view needs.
type FeedAPI interface {
	Feed(ctx context.Context) ([]model.Post, error)
	Share(ctx context.Context, in api.ShareInput) (*model.Post, error)
	Like(ctx context.Context, postID string) (*model.LikeResult, error)
	Comment(ctx context.Context, postID, content string) (*model.Comment, error)
}

// FeedService holds the community feed and applies like toggles
// optimistically before the backend confirms them.
type FeedService struct {
	api   FeedAPI
	posts []model.Post
}

// NewFeedService constructs a FeedService.
func NewFeedService(api FeedAPI) *FeedService {
	return &FeedService{api: api}
}

// Refresh replaces the cached feed with the backend's current view.
func (s *FeedService) Refresh(ctx context.Context) ([]model.Post, error) {
	posts, err := s.api.Feed(ctx)
	if err != nil {
		return nil, err
	}
	s.posts = posts
	return s.Posts(), nil
}

// Posts returns a copy of the cached feed.
func (s *FeedService) Posts() []model.Post {
	out := make([]model.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Share publishes a post and prepends it to the cached feed.
func (s *FeedService) Share(ctx context.Context, in api.ShareInput) (*model.Post, error) {
	created, err := s.api.Share(ctx, in)
	if err != nil {
		return nil, err
	}
	s.posts = append([]model.Post{*created}, s.posts...)
	return created, nil
}

// Like bumps the cached like count immediately, then reconciles with the
// server's count. On failure the optimistic bump is rolled back.
func (s *FeedService) Like(ctx context.Context, postID string) (int, error) {
	idx := s.indexOf(postID)
	if idx >= 0 {
		s.posts[idx].Likes++
	}

	result, err := s.api.Like(ctx, postID)
	if err != nil {
		if idx >= 0 {
			s.posts[idx].Likes--
		}
		return 0, err
	}
	if idx >= 0 {
		s.posts[idx].Likes = result.Likes
	}
	return result.Likes, nil
}

// Comment adds a comment and appends it to the cached post.
func (s *FeedService) Comment(ctx context.Context, postID, content string) (*model.Comment, error) {
	created, err := s.api.Comment(ctx, postID, content)
	if err != nil {
		return nil, err
	}
	if idx := s.indexOf(postID); idx >= 0 {
		s.posts[idx].Comments = append(s.posts[idx].Comments, *created)
	}
	return created, nil
}

func (s *FeedService) indexOf(postID string) int {
	for i := range s.posts {
		if s.posts[i].ID == postID {
			return i
		}
	}
	return -1
}
