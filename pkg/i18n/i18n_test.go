package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizerGet(t *testing.T) {
	l := NewLocalizer("en", "hi")

	assert.Equal(t, "I'm sorry, the request timed out. Please try again.", l.Get("en", MESSAGE_APOLOGY_TIMEOUT))
	assert.NotEqual(t, MESSAGE_APOLOGY_TIMEOUT, l.Get("hi", MESSAGE_APOLOGY_TIMEOUT))

	// unknown languages fall back to the default bundle
	assert.Equal(t, l.Get(DEFAULT_LANG, ERROR_INTERNAL), l.Get("fr", ERROR_INTERNAL))
}

func TestDefaultLocalizer(t *testing.T) {
	assert.Equal(t,
		"I encountered an error while processing your request. Please try again.",
		Default().Get("en", MESSAGE_APOLOGY_TRANSPORT))
}
