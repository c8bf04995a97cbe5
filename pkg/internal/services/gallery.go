package services

import (
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/storyview/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

var ErrOutOfRangeGalleryIndex = errors.New("gallery index out of range")

// Gallery is the modal image viewer of one mounted story view.
type Gallery struct {
	images []string
	state  models.GalleryState
	// strict makes an out of range open panic instead of clamping it.
	strict bool
}

func NewGallery(images []string, strict bool) *Gallery {
	return &Gallery{images: images, strict: strict}
}

// wrapIndex is a modulo whose result is never negative.
func wrapIndex(index, length int) int {
	return ((index % length) + length) % length
}

func (v *Gallery) Len() int {
	return len(v.images)
}

func (v *Gallery) State() models.GalleryState {
	return v.state
}

func (v *Gallery) OpenAt(index int) {
	if len(v.images) == 0 {
		log.Warn().Int("index", index).Msg("Refused to open an empty gallery...")
		return
	}
	if index < 0 || index >= len(v.images) {
		err := fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRangeGalleryIndex, index, len(v.images))
		if v.strict {
			panic(err)
		}
		index = min(max(index, 0), len(v.images)-1)
		log.Warn().Err(err).Int("clamped", index).Msg("Clamped gallery index...")
	}

	v.state = models.GalleryState{Open: true, Index: index}
}

// Close hides the overlay and keeps the index for the next open.
func (v *Gallery) Close() {
	v.state.Open = false
}

func (v *Gallery) Next() {
	if len(v.images) == 0 {
		return
	}
	v.state.Index = wrapIndex(v.state.Index+1, len(v.images))
}

func (v *Gallery) Prev() {
	if len(v.images) == 0 {
		return
	}
	v.state.Index = wrapIndex(v.state.Index-1, len(v.images))
}

// Frame returns the overlay to render, nil while the gallery is closed.
func (v *Gallery) Frame() *models.LightboxFrame {
	if !v.state.Open || len(v.images) == 0 {
		return nil
	}
	length := len(v.images)
	return &models.LightboxFrame{
		Index:   v.state.Index,
		MainSrc: v.images[v.state.Index],
		NextSrc: v.images[wrapIndex(v.state.Index+1, length)],
		PrevSrc: v.images[wrapIndex(v.state.Index-1, length)],
	}
}
