package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"", InfoLevel, false},
		{"warn", WarnLevel, false},
		{"warning", WarnLevel, false},
		{" error ", ErrorLevel, false},
		{"verbose", InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZerologAdapter_WritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, DebugLevel)

	log.Info("ContactStore", "contact inserted", map[string]interface{}{"id": 7})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "ContactStore", entry["component"])
	assert.Equal(t, "contact inserted", entry["message"])
	assert.EqualValues(t, 7, entry["id"])
}

func TestZerologAdapter_ErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, InfoLevel)

	log.Error("MainController", errors.New("disk full"), nil)

	assert.Contains(t, buf.String(), `"error":"disk full"`)
	assert.Contains(t, buf.String(), `"component":"MainController"`)
}

func TestZerologAdapter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, WarnLevel)

	log.Debug("x", "hidden", nil)
	log.Info("x", "hidden", nil)
	log.Warning("x", "shown", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "shown")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("x", "y", nil)
	log.Error("x", errors.New("z"), nil)
}
