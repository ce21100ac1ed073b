package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Configuration
		wantErr bool
	}{
		{"info level", Configuration{Level: INFO_LEVEL, TimeFormat: time.RFC3339Nano}, false},
		{"debug level", Configuration{Level: DEBUG_LEVEL, TimeFormat: time.RFC3339}, false},
		{"error level", Configuration{Level: ERROR_LEVEL, TimeFormat: time.RFC3339}, false},
		{"level below debug", Configuration{Level: -2, TimeFormat: time.RFC3339}, true},
		{"level above error", Configuration{Level: 3, TimeFormat: time.RFC3339}, true},
		{"empty time format", Configuration{Level: INFO_LEVEL, TimeFormat: ""}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
