package models

// Post is the record a story view is mounted for. It is owned by the caller
// and never mutated by the view.
type Post struct {
	ID               uint   `json:"id"`
	Author           string `json:"author" validate:"required"`
	AuthorReputation int64  `json:"author_reputation"`
	Title            string `json:"title"`
	Body             string `json:"body"`
	JsonMetadata     string `json:"json_metadata" validate:"required"`
	Category         string `json:"category"`
	// Created is emitted without a zone marker and is always UTC.
	Created string `json:"created"`
}

type PostVideo struct {
	VideoHash string `json:"videohash" msgpack:"videohash"`
	SnapHash  string `json:"snaphash" msgpack:"snaphash"`
}

// ViewMetadata is derived from Post.JsonMetadata on every render.
type ViewMetadata struct {
	Images []string   `json:"images" msgpack:"images"`
	Tags   []string   `json:"tags" msgpack:"tags"`
	Video  *PostVideo `json:"video,omitempty" msgpack:"video"`
}
