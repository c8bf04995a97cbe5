package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrViewNotFound = errors.New("story view not found")

type mountedView struct {
	view      *StoryView
	touchedAt time.Time
}

// ViewRegistry holds the story views mounted through the api.
type ViewRegistry struct {
	lock  sync.Mutex
	views map[string]*mountedView
	now   func() time.Time
}

func NewViewRegistry() *ViewRegistry {
	return &ViewRegistry{views: make(map[string]*mountedView), now: time.Now}
}

var Views = NewViewRegistry()

func (v *ViewRegistry) Add(view *StoryView) string {
	id := uuid.NewString()
	v.lock.Lock()
	v.views[id] = &mountedView{view: view, touchedAt: v.now()}
	v.lock.Unlock()
	log.Debug().Str("view", id).Uint("post", view.post.ID).Msg("Mounted a story view.")
	return id
}

// Get returns the view and marks it as recently used. Views unmounted
// by other means are reported as missing.
func (v *ViewRegistry) Get(id string) (*StoryView, error) {
	v.lock.Lock()
	defer v.lock.Unlock()
	item, ok := v.views[id]
	if !ok || item.view.Unmounted() {
		return nil, ErrViewNotFound
	}
	item.touchedAt = v.now()
	return item.view, nil
}

func (v *ViewRegistry) Remove(id string) error {
	v.lock.Lock()
	item, ok := v.views[id]
	delete(v.views, id)
	v.lock.Unlock()
	if !ok {
		return ErrViewNotFound
	}
	item.view.Unmount()
	log.Debug().Str("view", id).Msg("Unmounted a story view.")
	return nil
}

func (v *ViewRegistry) Len() int {
	v.lock.Lock()
	defer v.lock.Unlock()
	return len(v.views)
}

// SweepIdle unmounts every view untouched for longer than ttl.
func (v *ViewRegistry) SweepIdle(ttl time.Duration) int {
	deadline := v.now().Add(-ttl)

	var idle []*StoryView
	v.lock.Lock()
	for id, item := range v.views {
		if item.touchedAt.Before(deadline) {
			idle = append(idle, item.view)
			delete(v.views, id)
		}
	}
	v.lock.Unlock()

	for _, view := range idle {
		view.Unmount()
	}
	if len(idle) > 0 {
		log.Info().Int("count", len(idle)).Msg("Swept idle story views.")
	}
	return len(idle)
}

func DoSweepIdleViews(ttl time.Duration) func() {
	return func() {
		Views.SweepIdle(ttl)
	}
}
