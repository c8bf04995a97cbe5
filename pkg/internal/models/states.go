package models

type GalleryState struct {
	Open  bool `json:"open"`
	Index int  `json:"index"`
}

// ActionState carries the externally owned follow and save flags of a post.
type ActionState struct {
	PendingFollow bool `json:"pending_follow"`
	UserFollowed  bool `json:"user_followed"`
	PendingSave   bool `json:"pending_save"`
	IsSaved       bool `json:"is_saved"`
	PendingLike   bool `json:"pending_like"`
}
