package services

import (
	"fmt"

	"git.solsynth.dev/hypernet/storyview/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	MenuKeyFollow = "follow"
	MenuKeySave   = "save"
	MenuKeyReport = "report"

	FooterKeyLike  = "like"
	FooterKeyShare = "share"
)

// ActionHandlers receive the intents of a story view. Unset handlers are
// treated as no-ops.
type ActionHandlers struct {
	OnFollowClick func(post models.Post)
	OnSaveClick   func()
	OnReportClick func()
	OnLikeClick   func()
	OnShareClick  func()
}

type ActionDispatcher struct {
	post     models.Post
	handlers ActionHandlers
}

func NewActionDispatcher(post models.Post, handlers ActionHandlers) *ActionDispatcher {
	return &ActionDispatcher{post: post, handlers: handlers}
}

// Dispatch maps a menu selection to its intent. Unknown keys return nil so the
// menu can grow without breaking older views.
func (v *ActionDispatcher) Dispatch(key string) *models.Intent {
	switch key {
	case MenuKeyFollow:
		if v.handlers.OnFollowClick != nil {
			v.handlers.OnFollowClick(v.post)
		}
		post := v.post
		return &models.Intent{Type: models.IntentFollowToggle, Post: &post}
	case MenuKeySave:
		if v.handlers.OnSaveClick != nil {
			v.handlers.OnSaveClick()
		}
		return &models.Intent{Type: models.IntentSaveToggle}
	case MenuKeyReport:
		if v.handlers.OnReportClick != nil {
			v.handlers.OnReportClick()
		}
		return &models.Intent{Type: models.IntentReport}
	default:
		log.Debug().Str("key", key).Msg("Ignored unknown menu selection...")
		return nil
	}
}

// DispatchFooter forwards the footer actions unmodified.
func (v *ActionDispatcher) DispatchFooter(key string) *models.Intent {
	switch key {
	case FooterKeyLike:
		if v.handlers.OnLikeClick != nil {
			v.handlers.OnLikeClick()
		}
		return &models.Intent{Type: models.IntentLike}
	case FooterKeyShare:
		if v.handlers.OnShareClick != nil {
			v.handlers.OnShareClick()
		}
		return &models.Intent{Type: models.IntentShare}
	default:
		return nil
	}
}

// FollowLabel names the state being awaited while a toggle is pending.
func FollowLabel(userFollowed, pendingFollow bool) string {
	switch {
	case userFollowed && pendingFollow:
		return "Unfollowing"
	case userFollowed:
		return "Unfollow"
	case pendingFollow:
		return "Following"
	default:
		return "Follow"
	}
}

// SaveLabel has no pending variant.
func SaveLabel(isSaved bool) string {
	if isSaved {
		return "Unsave post"
	}
	return "Save post"
}

func BuildMenu(author string, state models.ActionState) []models.MenuItemFrame {
	followIcon := "icon-people"
	if state.PendingFollow {
		followIcon = "loading"
	}
	return []models.MenuItemFrame{
		{
			Key:      MenuKeyFollow,
			Label:    fmt.Sprintf("%s %s", FollowLabel(state.UserFollowed, state.PendingFollow), author),
			Icon:     followIcon,
			Disabled: state.PendingFollow,
			Loading:  state.PendingFollow,
		},
		{
			Key:   MenuKeySave,
			Label: SaveLabel(state.IsSaved),
			Icon:  "icon-collection",
		},
		{
			Key:   MenuKeyReport,
			Label: "Report post",
			Icon:  "icon-flag",
		},
	}
}
