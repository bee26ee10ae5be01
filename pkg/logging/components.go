// Package logging provides structured logging support for ebwait
package logging

// Component-specific loggers

// Poller logger for the readiness loop
var Poller = NewLogger("poller")

// Environment logger for Elastic Beanstalk and STS lookups
var Environment = NewLogger("environment")

// Output logger for output sink writes
var Output = NewLogger("output")

// Config logger for configuration loading
var Config = NewLogger("config")

// SnapshotFields returns the structured form of a snapshot for Operation logging
func SnapshotFields(environment, versionLabel, status, healthStatus string) map[string]interface{} {
	return map[string]interface{}{
		"environment":   environment,
		"version_label": versionLabel,
		"status":        status,
		"health_status": healthStatus,
	}
}
