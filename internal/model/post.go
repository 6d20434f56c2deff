package model

import "time"

// PostEditor is the author reference attached to a post summary.
type PostEditor struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	ID        int64  `json:"id"`
}

// Post is a post summary. From this client's perspective a post is mutable
// only through the publish/unpublish toggle.
type Post struct {
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Title     string     `json:"title"`
	ImageURL  string     `json:"imageUrl"`
	Editor    PostEditor `json:"editor"`
	ID        int64      `json:"id"`
	Published bool       `json:"published"`
}
