package view

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

const (
	scriptURLFormat = "https://maps.googleapis.com/maps/api/js?key=%s&callback=%s&libraries=marker"
	scriptCallback  = "initCampusMap"
)

// Loader hands the page its mapping-provider bootstrap. The config is
// computed exactly once per process; without an API key the map
// features stay disabled and a single warning is logged. A missing
// key is never an error.
type Loader struct {
	apiKey string
	log    *zap.Logger

	once   sync.Once
	config ScriptConfig
}

type ScriptConfig struct {
	Enabled   bool   `json:"enabled"`
	ScriptURL string `json:"script_url,omitempty"`
	Callback  string `json:"callback,omitempty"`
}

func NewLoader(log *zap.Logger, apiKey string) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		apiKey: apiKey,
		log:    log,
	}
}

func (l *Loader) Config() ScriptConfig {
	l.once.Do(func() {
		if l.apiKey == "" {
			l.log.Warn("maps api key not configured, map features disabled")
			l.config = ScriptConfig{Enabled: false}
			return
		}
		l.config = ScriptConfig{
			Enabled:   true,
			ScriptURL: fmt.Sprintf(scriptURLFormat, l.apiKey, scriptCallback),
			Callback:  scriptCallback,
		}
	})
	return l.config
}

func (l *Loader) Enabled() bool {
	return l.Config().Enabled
}
