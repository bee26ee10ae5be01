package interfaces

import "fmt"

// ReadyStatus is the Elastic Beanstalk lifecycle status of an environment that
// has finished launching or updating
const ReadyStatus = "Ready"

// Output names written once the final snapshot is known
const (
	OutputHealthStatus = "health-status"
	OutputVersionLabel = "version-label"
	OutputStatus       = "status"
)

// EnvironmentSnapshot is the state of an environment as observed by a single
// status lookup. A new snapshot is produced by every fetch.
type EnvironmentSnapshot struct {
	VersionLabel string `json:"version_label"`
	Status       string `json:"status"`
	HealthStatus string `json:"health_status"`
}

// String implements fmt.Stringer
func (s EnvironmentSnapshot) String() string {
	return fmt.Sprintf("EnvironmentSnapshot(version_label=%s, status=%s, health_status=%s)",
		s.VersionLabel, s.Status, s.HealthStatus)
}

// Outputs returns the snapshot fields keyed by output name, in emission order
func (s EnvironmentSnapshot) Outputs() []OutputEntry {
	return []OutputEntry{
		{Name: OutputHealthStatus, Value: s.HealthStatus},
		{Name: OutputVersionLabel, Value: s.VersionLabel},
		{Name: OutputStatus, Value: s.Status},
	}
}

// OutputEntry is a single name=value pair handed to an OutputSink
type OutputEntry struct {
	Name  string
	Value string
}
