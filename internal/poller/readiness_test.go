package poller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lattiam/ebwait/internal/interfaces"
)

func TestIsReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		snapshot interfaces.EnvironmentSnapshot
		expected string
		ready    bool
	}{
		{
			name:     "matching version and ready",
			snapshot: interfaces.EnvironmentSnapshot{VersionLabel: "v1.0.0", Status: "Ready", HealthStatus: "Ok"},
			expected: "v1.0.0",
			ready:    true,
		},
		{
			name:     "different version",
			snapshot: interfaces.EnvironmentSnapshot{VersionLabel: "v1.0.1", Status: "Ready"},
			expected: "v1.0.0",
			ready:    false,
		},
		{
			name:     "matching version still updating",
			snapshot: interfaces.EnvironmentSnapshot{VersionLabel: "v1.0.0", Status: "Updating"},
			expected: "v1.0.0",
			ready:    false,
		},
		{
			name:     "no expected version and ready",
			snapshot: interfaces.EnvironmentSnapshot{VersionLabel: "anything", Status: "Ready"},
			expected: "",
			ready:    true,
		},
		{
			name:     "no expected version and no version label",
			snapshot: interfaces.EnvironmentSnapshot{Status: "Ready"},
			expected: "",
			ready:    true,
		},
		{
			name:     "no expected version and launching",
			snapshot: interfaces.EnvironmentSnapshot{VersionLabel: "v1", Status: "Launching"},
			expected: "",
			ready:    false,
		},
		{
			name:     "health is not gated on",
			snapshot: interfaces.EnvironmentSnapshot{VersionLabel: "v2", Status: "Ready", HealthStatus: "Severe"},
			expected: "v2",
			ready:    true,
		},
		{
			name:     "status comparison is case sensitive",
			snapshot: interfaces.EnvironmentSnapshot{VersionLabel: "v2", Status: "ready"},
			expected: "v2",
			ready:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.ready, IsReady(tt.snapshot, tt.expected))
		})
	}
}

func TestIsReadyMatchesDefinition(t *testing.T) {
	t.Parallel()

	versions := []string{"", "v1.0.0", "v1.0.1"}
	statuses := []string{"Ready", "Launching", "Updating", "Terminating", "Terminated", ""}
	healths := []string{"Ok", "Warning", "Severe", "Info", "Pending", "Unknown", ""}

	for _, expected := range versions {
		for _, label := range versions {
			for _, status := range statuses {
				for _, health := range healths {
					snapshot := interfaces.EnvironmentSnapshot{VersionLabel: label, Status: status, HealthStatus: health}
					want := status == "Ready" && (expected == "" || label == expected)

					first := IsReady(snapshot, expected)
					assert.Equal(t, want, first, "snapshot=%s expected=%q", snapshot, expected)
					assert.Equal(t, first, IsReady(snapshot, expected), "repeated evaluation changed result")
				}
			}
		}
	}
}

func TestEvaluateComponents(t *testing.T) {
	t.Parallel()

	eval := Evaluate(interfaces.EnvironmentSnapshot{VersionLabel: "v1", Status: "Updating"}, "v1")
	assert.True(t, eval.VersionOK)
	assert.False(t, eval.StatusOK)
	assert.False(t, eval.Ready())
}
