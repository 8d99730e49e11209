package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutritrack/nutritrack/internal/api"
	"github.com/nutritrack/nutritrack/internal/domain/model"
)

type fakeFeedAPI struct {
	feed []model.Post

	likeResult *model.LikeResult
	likeErr    error

	shared  *model.Post
	comment *model.Comment
}

func (f *fakeFeedAPI) Feed(_ context.Context) ([]model.Post, error) {
	return f.feed, nil
}

func (f *fakeFeedAPI) Share(_ context.Context, _ api.ShareInput) (*model.Post, error) {
	return f.shared, nil
}

func (f *fakeFeedAPI) Like(_ context.Context, _ string) (*model.LikeResult, error) {
	return f.likeResult, f.likeErr
}

func (f *fakeFeedAPI) Comment(_ context.Context, _, _ string) (*model.Comment, error) {
	return f.comment, nil
}

func newFeedFixture(t *testing.T, fake *fakeFeedAPI) *FeedService {
	t.Helper()
	svc := NewFeedService(fake)
	if fake.feed != nil {
		_, err := svc.Refresh(context.Background())
		require.NoError(t, err)
	}
	return svc
}

func TestFeedLikeReconcilesToServerCount(t *testing.T) {
	fake := &fakeFeedAPI{
		feed:       []model.Post{{ID: "p1", Likes: 3}},
		likeResult: &model.LikeResult{PostID: "p1", Likes: 7},
	}
	svc := newFeedFixture(t, fake)

	likes, err := svc.Like(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 7, likes)
	assert.Equal(t, 7, svc.Posts()[0].Likes)
}

func TestFeedLikeRollsBackOnFailure(t *testing.T) {
	fake := &fakeFeedAPI{
		feed:    []model.Post{{ID: "p1", Likes: 3}},
		likeErr: errors.New("backend down"),
	}
	svc := newFeedFixture(t, fake)

	_, err := svc.Like(context.Background(), "p1")
	require.Error(t, err)
	assert.Equal(t, 3, svc.Posts()[0].Likes, "optimistic bump must be rolled back")
}

func TestFeedLikeUnknownPost(t *testing.T) {
	fake := &fakeFeedAPI{
		feed:       []model.Post{{ID: "p1", Likes: 3}},
		likeResult: &model.LikeResult{PostID: "p9", Likes: 1},
	}
	svc := newFeedFixture(t, fake)

	likes, err := svc.Like(context.Background(), "p9")
	require.NoError(t, err)
	assert.Equal(t, 1, likes)
	assert.Equal(t, 3, svc.Posts()[0].Likes, "unrelated posts are untouched")
}

func TestFeedSharePrepends(t *testing.T) {
	fake := &fakeFeedAPI{
		feed:   []model.Post{{ID: "p1"}},
		shared: &model.Post{ID: "p2", Content: "meal prep done"},
	}
	svc := newFeedFixture(t, fake)

	created, err := svc.Share(context.Background(), api.ShareInput{Content: "meal prep done"})
	require.NoError(t, err)
	assert.Equal(t, "p2", created.ID)

	posts := svc.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0].ID)
}

func TestFeedCommentAppendsToCachedPost(t *testing.T) {
	fake := &fakeFeedAPI{
		feed:    []model.Post{{ID: "p1"}},
		comment: &model.Comment{ID: "c1", Content: "nice"},
	}
	svc := newFeedFixture(t, fake)

	_, err := svc.Comment(context.Background(), "p1", "nice")
	require.NoError(t, err)

	posts := svc.Posts()
	require.Len(t, posts[0].Comments, 1)
	assert.Equal(t, "c1", posts[0].Comments[0].ID)
}

func TestFeedPostsReturnsCopy(t *testing.T) {
	fake := &fakeFeedAPI{feed: []model.Post{{ID: "p1", Likes: 1}}}
	svc := newFeedFixture(t, fake)

	posts := svc.Posts()
	posts[0].Likes = 99

	assert.Equal(t, 1, svc.Posts()[0].Likes)
}
