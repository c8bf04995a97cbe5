package models

type IntentType = string

const (
	IntentFollowToggle = IntentType("follow")
	IntentSaveToggle   = IntentType("save")
	IntentReport       = IntentType("report")
	IntentLike         = IntentType("like")
	IntentShare        = IntentType("share")
)

// Intent is the outward signal of a user action, fulfilled by the hosting page.
type Intent struct {
	Type IntentType `json:"type"`
	Post *Post      `json:"post,omitempty"`
}
