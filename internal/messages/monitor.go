package messages

// Companion tool messages.
const (
	MonitorInstalledFmt = "Monitor tool installed at %s"
	MonitorPathGapFmt   = "%s is not on your PATH; add it to run the monitor by name"
	MonitorNoRecords    = "No monitor records yet"
	MonitorHealthyFmt   = "Runtime healthy as of %s (%d stopped containers)"
	MonitorUnhealthyFmt = "Runtime unhealthy as of %s: %s"
)
