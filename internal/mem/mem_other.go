//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly

package mem

// Platforms without mlockall still get enclave-level protection from
// memguard, just not a process-wide lock.

func lockPlatform() (ProtectionLevel, error) {
	return ProtectionPartial, nil
}

func unlockPlatform() error {
	return nil
}
