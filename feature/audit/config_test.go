package audit_test

import (
	"testing"

	"device-auditor/feature/audit"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidSink(t *testing.T) {
	tests := []struct {
		name string
		sink string
		want bool
	}{
		{"Storage", audit.SinkStorage, true},
		{"File", audit.SinkFile, true},
		{"Invalid", "ftp", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := audit.Config{Sink: tt.sink}
			assert.Equal(t, tt.want, c.IsValidSink())
		})
	}
}
