package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	localCache "git.solsynth.dev/hypernet/storyview/pkg/internal/cache"
	"git.solsynth.dev/hypernet/storyview/pkg/internal/models"
	"github.com/cespare/xxhash/v2"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var ErrMalformedMetadata = errors.New("malformed post metadata")

// ResolveMetadata parses the raw metadata of a post into the data a story
// view needs. The category is always part of the resulting tags.
func ResolveMetadata(raw string, category string) (models.ViewMetadata, error) {
	if len(strings.TrimSpace(raw)) == 0 {
		return models.ViewMetadata{}, fmt.Errorf("%w: metadata is empty", ErrMalformedMetadata)
	}

	var data map[string]any
	if err := jsoniter.UnmarshalFromString(raw, &data); err != nil {
		return models.ViewMetadata{}, fmt.Errorf("%w: %v", ErrMalformedMetadata, err)
	} else if data == nil {
		return models.ViewMetadata{}, fmt.Errorf("%w: metadata is not an object", ErrMalformedMetadata)
	}

	meta := models.ViewMetadata{
		Images: stringSequence(data["image"]),
		Tags:   lo.Union(stringSequence(data["tags"]), []string{category}),
	}

	videoHash, hasVideo := lookupString(data, "video", "content", "videohash")
	snapHash, hasSnap := lookupString(data, "video", "info", "snaphash")
	if hasVideo && hasSnap {
		meta.Video = &models.PostVideo{
			VideoHash: videoHash,
			SnapHash:  snapHash,
		}
	}

	return meta, nil
}

// ResolveMetadataDegraded never fails, a malformed payload yields empty
// images, tags and video.
func ResolveMetadataDegraded(raw string, category string, ttl time.Duration) models.ViewMetadata {
	meta, err := ResolveMetadataCached(raw, category, ttl)
	if err != nil {
		log.Warn().Err(err).Msg("Unable to resolve post metadata, rendering it degraded...")
		return models.ViewMetadata{Images: []string{}, Tags: []string{}}
	}
	return meta
}

func GetMetadataCacheKey(raw string, category string) string {
	return fmt.Sprintf("view-metadata#%016x", xxhash.Sum64String(category+"\x00"+raw))
}

// ResolveMetadataCached memoizes ResolveMetadata in the local cache store.
// Malformed payloads are never cached.
func ResolveMetadataCached(raw string, category string, ttl time.Duration) (models.ViewMetadata, error) {
	if localCache.S == nil {
		return ResolveMetadata(raw, category)
	}

	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	key := GetMetadataCacheKey(raw, category)
	if val, err := marshal.Get(ctx, key, new(models.ViewMetadata)); err == nil {
		meta := *val.(*models.ViewMetadata)
		meta.Images = lo.Ternary(meta.Images == nil, []string{}, meta.Images)
		meta.Tags = lo.Ternary(meta.Tags == nil, []string{}, meta.Tags)
		return meta, nil
	}

	meta, err := ResolveMetadata(raw, category)
	if err != nil {
		return meta, err
	}

	_ = marshal.Set(
		ctx,
		key,
		meta,
		store.WithExpiration(ttl),
		store.WithTags([]string{"view-metadata"}),
	)

	return meta, nil
}

func stringSequence(val any) []string {
	items, ok := val.([]any)
	if !ok {
		return []string{}
	}
	return lo.FilterMap(items, func(item any, _ int) (string, bool) {
		str, ok := item.(string)
		return str, ok
	})
}

// lookupString walks nested objects and stops at the first missing key.
func lookupString(data map[string]any, path ...string) (string, bool) {
	var current any = data
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		if current, ok = obj[key]; !ok {
			return "", false
		}
	}
	str, ok := current.(string)
	return str, ok
}
