package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewRegistryLifecycle(t *testing.T) {
	registry := NewViewRegistry()
	page := NewPageStyle()

	view, err := MountStoryView(StoryMount{Post: testPost(), Page: page}, testStoryOptions())
	require.NoError(t, err)

	id := registry.Add(view)
	got, err := registry.Get(id)
	require.NoError(t, err)
	assert.Same(t, view, got)

	require.NoError(t, registry.Remove(id))
	assert.False(t, page.Has("white-bg"))
	assert.ErrorIs(t, registry.Remove(id), ErrViewNotFound)

	_, err = registry.Get(id)
	assert.ErrorIs(t, err, ErrViewNotFound)
}

func TestViewRegistrySweepIdle(t *testing.T) {
	registry := NewViewRegistry()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return clock }

	page := NewPageStyle()
	stale, err := MountStoryView(StoryMount{Post: testPost(), Page: page}, testStoryOptions())
	require.NoError(t, err)
	fresh, err := MountStoryView(StoryMount{Post: testPost()}, testStoryOptions())
	require.NoError(t, err)
	defer fresh.Unmount()

	staleID := registry.Add(stale)
	clock = clock.Add(20 * time.Minute)
	freshID := registry.Add(fresh)
	clock = clock.Add(15 * time.Minute)

	assert.Equal(t, 1, registry.SweepIdle(30*time.Minute))
	assert.Equal(t, 1, registry.Len())
	assert.False(t, page.Has("white-bg"))

	_, err = registry.Get(staleID)
	assert.ErrorIs(t, err, ErrViewNotFound)
	_, err = registry.Get(freshID)
	assert.NoError(t, err)
}

func TestViewRegistrySweptViewDropsEvents(t *testing.T) {
	registry := NewViewRegistry()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return clock }

	var recorded recordedActions
	view, err := MountStoryView(StoryMount{Post: testPost(), Handlers: recorded.handlers()}, testStoryOptions())
	require.NoError(t, err)
	id := registry.Add(view)

	// A request holding the view across the sweep.
	held, err := registry.Get(id)
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	assert.Equal(t, 1, registry.SweepIdle(30*time.Minute))

	assert.Nil(t, held.HandleMenuSelect(MenuKeySave))
	assert.Zero(t, recorded.saves)
	_, err = registry.Get(id)
	assert.ErrorIs(t, err, ErrViewNotFound)
}

func TestViewRegistryHidesUnmountedViews(t *testing.T) {
	registry := NewViewRegistry()
	view, err := MountStoryView(StoryMount{Post: testPost()}, testStoryOptions())
	require.NoError(t, err)
	id := registry.Add(view)

	view.Unmount()
	_, err = registry.Get(id)
	assert.ErrorIs(t, err, ErrViewNotFound)
	assert.NoError(t, registry.Remove(id))
}
