package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	if testing.Short() {
		t.Skip("loads every language model")
	}
	assert.Equal(t, "en", DetectLanguage("This is a simple English sentence about a long morning walk in the park."))
}
