package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoader(t *testing.T) {
	t.Run("with a key the script url is built once", func(t *testing.T) {
		l := NewLoader(nil, "test-key-123")

		cfg := l.Config()
		assert.True(t, cfg.Enabled)
		assert.Contains(t, cfg.ScriptURL, "key=test-key-123")
		assert.Contains(t, cfg.ScriptURL, "callback=initCampusMap")
		assert.Equal(t, "initCampusMap", cfg.Callback)

		assert.Equal(t, cfg, l.Config())
	})

	t.Run("without a key the feature is disabled, warned once", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		l := NewLoader(zap.New(core), "")

		assert.False(t, l.Enabled())
		assert.False(t, l.Enabled())
		assert.False(t, l.Config().Enabled)
		assert.Equal(t, "", l.Config().ScriptURL)

		assert.Equal(t, 1, logs.Len())
	})
}

func TestRecorderDrain(t *testing.T) {
	rec := NewRecorder()
	rec.ClosePopup()
	rec.Navigate("/problems/x/")

	assert.Len(t, rec.Directives(), 2)
	assert.Len(t, rec.Drain(), 2)
	assert.Empty(t, rec.Directives())
	assert.Empty(t, rec.Drain())
}
