package ferreus

import (
	"time"

	"github.com/Quabena/ferreus-vault/audit"
)

// DefaultAutoLockTimeout is the inactivity window after which the manager
// advises locking.
const DefaultAutoLockTimeout = 300 * time.Second

// Options configures a vault manager.
type Options struct {
	// AutoLockTimeout is the inactivity window for ShouldAutoLock. Zero or
	// negative selects DefaultAutoLockTimeout.
	AutoLockTimeout time.Duration

	// EnableMemoryLock requests best-effort locking of process memory so
	// secret material cannot be swapped to disk. Failure to lock is not
	// fatal; the achieved level is reported by MemoryProtection.
	EnableMemoryLock bool

	// AuditLogger receives security events. Nil selects the no-op logger.
	AuditLogger audit.Logger
}

func (o *Options) withDefaults() Options {
	opts := *o
	if opts.AutoLockTimeout <= 0 {
		opts.AutoLockTimeout = DefaultAutoLockTimeout
	}
	if opts.AuditLogger == nil {
		opts.AuditLogger = audit.NewNoOpLogger()
	}
	return opts
}
