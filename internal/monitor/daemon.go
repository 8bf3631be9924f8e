package monitor

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/0xamirreza/Docker4Iran/internal/logging"
	"github.com/0xamirreza/Docker4Iran/internal/paths"
)

// System abstracts the runtime queries a poll issues.
type System interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// RealSystem implements System against the host OS.
type RealSystem struct{}

// Output runs a command and returns its trimmed stdout.
func (RealSystem) Output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return strings.TrimSpace(string(out)), err
}

// Daemon polls runtime health on a fixed interval and appends one record
// per poll to the log. The interval is a monitoring cadence, not a retry
// policy; a failed poll is recorded and the loop carries on.
type Daemon struct {
	Sys      System
	Interval time.Duration
	Log      *Appender
	Now      func() time.Time
}

// NewDaemon wires a Daemon for the given user paths and poll interval.
func NewDaemon(p paths.UserPaths, interval time.Duration) Daemon {
	return Daemon{
		Sys:      RealSystem{},
		Interval: interval,
		Log:      NewAppender(p.LogFile),
		Now:      time.Now,
	}
}

// Run polls once immediately and then on every interval tick. It blocks
// until the context is cancelled; cancellation is the normal stop path
// delivered by the init system, so it returns nil.
func (d Daemon) Run(ctx context.Context) error {
	logging.Debug("starting runtime monitor", "interval", d.Interval, "log", d.Log.path)

	d.poll(ctx)

	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Debug("runtime monitor stopping")
			return nil
		case <-ticker.C:
			d.poll(ctx)
		}
	}
}

// poll runs one check and appends the result.
func (d Daemon) poll(ctx context.Context) {
	rec := d.Check(ctx)
	if err := d.Log.Append(rec); err != nil {
		logging.Warn("monitor append failed", "error", err)
	}
}

// Check queries runtime health and enumerates stopped containers.
func (d Daemon) Check(ctx context.Context) Record {
	rec := Record{Timestamp: d.Now().UTC()}

	if _, err := d.Sys.Output(ctx, "docker", "info", "--format", "{{.ServerVersion}}"); err != nil {
		rec.Error = err.Error()
	} else {
		rec.Healthy = true
	}

	out, err := d.Sys.Output(ctx, "docker", "ps", "--filter", "status=exited", "--format", "{{.Names}}")
	if err == nil && out != "" {
		rec.Containers = strings.Split(out, "\n")
		rec.Exited = len(rec.Containers)
	}
	return rec
}
