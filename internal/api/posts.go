package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/nutritrack/nutritrack/internal/domain/model"
	apperrors "github.com/nutritrack/nutritrack/internal/errors"
)

// PostClient talks to the backend community-feed endpoints.
type PostClient struct {
	gw *Gateway
}

// NewPostClient constructs a PostClient.
func NewPostClient(gw *Gateway) *PostClient {
	return &PostClient{gw: gw}
}

// Feed fetches the community feed.
func (c *PostClient) Feed(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := c.gw.Get(ctx, "/posts/feed", nil, &posts); err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	return posts, nil
}

// ShareInput carries the fields for creating a post.
type ShareInput struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Share publishes a post to the community feed.
func (c *PostClient) Share(ctx context.Context, in ShareInput) (*model.Post, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, apperrors.Validation("post content is required")
	}
	var created model.Post
	if err := c.gw.Post(ctx, "/posts", in, &created); err != nil {
		return nil, fmt.Errorf("share post: %w", err)
	}
	return &created, nil
}

// Like toggles a like on a post and returns the server's like count.
func (c *PostClient) Like(ctx context.Context, postID string) (*model.LikeResult, error) {
	if postID == "" {
		return nil, apperrors.Validation("post ID is required")
	}
	var result model.LikeResult
	if err := c.gw.Post(ctx, "/posts/"+postID+"/like", nil, &result); err != nil {
		return nil, fmt.Errorf("like post %s: %w", postID, err)
	}
	return &result, nil
}

// Comment adds a comment to a post.
func (c *PostClient) Comment(ctx context.Context, postID, content string) (*model.Comment, error) {
	if postID == "" {
		return nil, apperrors.Validation("post ID is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Validation("comment content is required")
	}
	payload := map[string]string{"content": content}
	var created model.Comment
	if err := c.gw.Post(ctx, "/posts/"+postID+"/comments", payload, &created); err != nil {
		return nil, fmt.Errorf("comment on post %s: %w", postID, err)
	}
	return &created, nil
}
