package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReputation(t *testing.T) {
	tests := []struct {
		raw  int64
		want int
	}{
		{0, 25},
		{123, 25},
		{1234567890, 25},
		{95832978796820, 69},
		{-1234567890123, -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatReputation(tt.raw), "raw %d", tt.raw)
	}
}
