package models

import "time"

type StoryFrame struct {
	Title         string          `json:"title"`
	CommentsTitle string          `json:"comments_title"`
	CommentsLink  string          `json:"comments_link"`
	Language      string          `json:"language"`
	Author        AuthorFrame     `json:"author"`
	Created       CreatedFrame    `json:"created"`
	Menu          []MenuItemFrame `json:"menu"`
	Video         *VideoFrame     `json:"video"`
	Body          string          `json:"body"`
	Lightbox      *LightboxFrame  `json:"lightbox"`
	Tags          []string        `json:"tags"`
	Footer        FooterFrame     `json:"footer"`
	BodyClasses   []string        `json:"body_classes"`
}

type AuthorFrame struct {
	Name            string `json:"name"`
	Link            string `json:"link"`
	Reputation      int    `json:"reputation"`
	ReputationTitle string `json:"reputation_title"`
}

type CreatedFrame struct {
	Timestamp *time.Time `json:"timestamp"`
	Relative  string     `json:"relative"`
	Date      string     `json:"date"`
	Time      string     `json:"time"`
}

type MenuItemFrame struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Disabled bool   `json:"disabled"`
	Loading  bool   `json:"loading"`
}

type VideoFrame struct {
	Src    string `json:"src"`
	Poster string `json:"poster"`
}

// LightboxFrame is only rendered while the gallery is open.
type LightboxFrame struct {
	Index   int    `json:"index"`
	MainSrc string `json:"main_src"`
	NextSrc string `json:"next_src"`
	PrevSrc string `json:"prev_src"`
}

type FooterFrame struct {
	PostID       uint `json:"post_id"`
	PendingLike  bool `json:"pending_like"`
	CommentCount int  `json:"comment_count"`
}
