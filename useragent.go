package traceix

import (
	"fmt"
	"runtime"
)

// buildUserAgent builds the client-identifying string sent with every
// request, e.g. "Traceix/0.0.0.1 (linux-amd64 go1.24.0)". Platform and Go
// runtime details are omitted when the telemetry opt-out is set.
func buildUserAgent(telemetryDisabled bool) string {
	ua := fmt.Sprintf("Traceix/%s", Version)
	if !telemetryDisabled {
		ua += fmt.Sprintf(" (%s-%s %s)", runtime.GOOS, runtime.GOARCH, runtime.Version())
	}
	return ua
}
