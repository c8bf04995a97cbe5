package services

import (
	"testing"
	"time"

	"git.solsynth.dev/hypernet/storyview/pkg/internal/cache"
	"git.solsynth.dev/hypernet/storyview/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMetadataUnionsCategoryIntoTags(t *testing.T) {
	meta, err := ResolveMetadata(`{"tags":["a","b"],"image":["u1","u2"]}`, "b")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, meta.Tags)
	assert.Equal(t, []string{"u1", "u2"}, meta.Images)
	assert.Nil(t, meta.Video)
}

func TestResolveMetadataAppendsMissingCategory(t *testing.T) {
	meta, err := ResolveMetadata(`{"tags":["steem","steem","life"]}`, "photography")
	require.NoError(t, err)

	assert.Equal(t, []string{"steem", "life", "photography"}, meta.Tags)
	assert.Empty(t, meta.Images)
	assert.NotNil(t, meta.Images)
}

func TestResolveMetadataIgnoresNonSequenceFields(t *testing.T) {
	meta, err := ResolveMetadata(`{"tags":"a","image":{"0":"u1"}}`, "c")
	require.NoError(t, err)

	assert.Equal(t, []string{"c"}, meta.Tags)
	assert.Equal(t, []string{}, meta.Images)
}

func TestResolveMetadataVideo(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *models.PostVideo
	}{
		{
			name: "complete",
			raw:  `{"video":{"content":{"videohash":"H"},"info":{"snaphash":"S"}}}`,
			want: &models.PostVideo{VideoHash: "H", SnapHash: "S"},
		},
		{
			name: "missing snaphash",
			raw:  `{"video":{"content":{"videohash":"H"}}}`,
		},
		{
			name: "missing videohash",
			raw:  `{"video":{"info":{"snaphash":"S"}}}`,
		},
		{
			name: "intermediate is not an object",
			raw:  `{"video":{"content":"H","info":{"snaphash":"S"}}}`,
		},
		{
			name: "no video",
			raw:  `{}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := ResolveMetadata(tt.raw, "c")
			require.NoError(t, err)
			assert.Equal(t, tt.want, meta.Video)
		})
	}
}

func TestResolveMetadataMalformed(t *testing.T) {
	for _, raw := range []string{"", "{", "null", "[1,2]", "not json"} {
		_, err := ResolveMetadata(raw, "c")
		assert.ErrorIs(t, err, ErrMalformedMetadata, raw)
	}
}

func TestResolveMetadataDegraded(t *testing.T) {
	meta := ResolveMetadataDegraded("{", "c", time.Minute)
	assert.Equal(t, []string{}, meta.Images)
	assert.Equal(t, []string{}, meta.Tags)
	assert.Nil(t, meta.Video)

	meta = ResolveMetadataDegraded(`{"image":["u1"]}`, "c", time.Minute)
	assert.Equal(t, []string{"u1"}, meta.Images)
}

func TestResolveMetadataDegradedUsesCache(t *testing.T) {
	require.NoError(t, cache.NewStore())
	t.Cleanup(func() { cache.S = nil })

	raw := `{"image":["u1","u2"]}`
	for i := 0; i < 2; i++ {
		meta := ResolveMetadataDegraded(raw, "c", time.Minute)
		assert.Equal(t, []string{"u1", "u2"}, meta.Images)
		assert.Equal(t, []string{"c"}, meta.Tags)
	}

	meta := ResolveMetadataDegraded("not json", "c", time.Minute)
	assert.Equal(t, models.ViewMetadata{Images: []string{}, Tags: []string{}}, meta)
}

func TestMetadataCacheKeyDependsOnCategory(t *testing.T) {
	raw := `{"tags":["a"]}`
	assert.Equal(t, GetMetadataCacheKey(raw, "b"), GetMetadataCacheKey(raw, "b"))
	assert.NotEqual(t, GetMetadataCacheKey(raw, "b"), GetMetadataCacheKey(raw, "c"))
}

func TestResolveMetadataCachedMatchesUncached(t *testing.T) {
	require.NoError(t, cache.NewStore())
	t.Cleanup(func() { cache.S = nil })

	raw := `{"tags":["a","b"],"image":["u1","u2"],"video":{"content":{"videohash":"H"},"info":{"snaphash":"S"}}}`
	want, err := ResolveMetadata(raw, "b")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := ResolveMetadataCached(raw, "b", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = ResolveMetadataCached("{", "b", time.Minute)
	assert.ErrorIs(t, err, ErrMalformedMetadata)
}
