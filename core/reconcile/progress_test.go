package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPercentDone verifies half-away-from-zero rounding of the completion
// fraction.
func TestPercentDone(t *testing.T) {
	tests := []struct {
		name  string
		index int
		total int
		want  int
	}{
		{"First of three", 0, 3, 33},
		{"Second of three rounds up", 1, 3, 67},
		{"Last is always 100", 2, 3, 100},
		{"Half rounds away from zero", 0, 8, 13}, // 12.5 -> 13
		{"Single record", 0, 1, 100},
		{"Empty input", 0, 0, 100},
		{"Large set first record", 0, 2000, 0}, // 0.05 -> 0
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, percentDone(tt.index, tt.total))
		})
	}
}

// TestState_Recomputation verifies classification derives solely from which
// sentinels are present.
func TestState_Recomputation(t *testing.T) {
	tests := []struct {
		name    string
		cloud   string
		managed string
		want    State
	}{
		{"Neither", NotRegistered, NotEnrolled, StateUnregistered},
		{"Cloud only", "PC-AAD", NotEnrolled, StateRegisteredNotEnrolled},
		{"Managed only", NotRegistered, "PC-MDM", StateEnrolledWithoutCloudRecord},
		{"Both", "PC-AAD", "PC-MDM", StateHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ReconciledDevice{
				CloudDisplayName:  tt.cloud,
				ManagedDeviceName: tt.managed,
			}
			assert.Equal(t, tt.want, d.State())
		})
	}
}
