package model

// Comment is a reply on a community post.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Post is a community feed entry.
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Likes     int       `json:"likes"`
	Comments  []Comment `json:"comments,omitempty"`
	CreatedAt string    `json:"createdAt,omitempty"`
}

// LikeResult is the backend's response to a like toggle.
type LikeResult struct {
	PostID string `json:"postId"`
	Likes  int    `json:"likes"`
}
