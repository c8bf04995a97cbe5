package services

import (
	"time"

	"github.com/spf13/viper"
)

const DefaultMediaGateway = "https://ipfs.io/ipfs/"

type StoryOptions struct {
	// Gateway is prefixed to content-addressed hashes to build media urls.
	Gateway          string
	DisplayMode      string
	DegradeMalformed bool
	StrictGallery    bool
	MetadataCacheTTL time.Duration
	DetectLanguage   bool
	// BodyRenderer turns the post body into content markup. Nil means the body
	// is already markup.
	BodyRenderer BodyRenderer
}

func DefaultStoryOptions() StoryOptions {
	return StoryOptions{
		Gateway:          DefaultMediaGateway,
		DisplayMode:      "white-bg",
		MetadataCacheTTL: 10 * time.Minute,
		DetectLanguage:   true,
	}
}

func ReadStoryOptions() StoryOptions {
	opts := DefaultStoryOptions()
	if viper.IsSet("story.gateway") {
		opts.Gateway = viper.GetString("story.gateway")
	}
	if viper.IsSet("story.display_mode") {
		opts.DisplayMode = viper.GetString("story.display_mode")
	}
	if viper.IsSet("story.metadata_cache_ttl") {
		opts.MetadataCacheTTL = viper.GetDuration("story.metadata_cache_ttl")
	}
	if viper.IsSet("story.detect_language") {
		opts.DetectLanguage = viper.GetBool("story.detect_language")
	}
	opts.DegradeMalformed = viper.GetBool("story.degrade_malformed_metadata")
	opts.StrictGallery = viper.GetBool("story.strict_gallery")
	return opts
}
