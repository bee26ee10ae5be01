package poller

import "github.com/lattiam/ebwait/internal/interfaces"

// Evaluation holds the two components of the readiness predicate
type Evaluation struct {
	VersionOK bool
	StatusOK  bool
}

// Ready reports whether both components hold
func (e Evaluation) Ready() bool {
	return e.VersionOK && e.StatusOK
}

// Evaluate checks a snapshot against the expected version label. An empty
// expected version accepts any deployed version. Health status is not gated on.
func Evaluate(snapshot interfaces.EnvironmentSnapshot, expectedVersion string) Evaluation {
	return Evaluation{
		VersionOK: expectedVersion == "" || snapshot.VersionLabel == expectedVersion,
		StatusOK:  snapshot.Status == interfaces.ReadyStatus,
	}
}

// IsReady reports whether the environment runs the expected version and is Ready
func IsReady(snapshot interfaces.EnvironmentSnapshot, expectedVersion string) bool {
	return Evaluate(snapshot, expectedVersion).Ready()
}
