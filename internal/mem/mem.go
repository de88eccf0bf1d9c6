// Package mem provides best-effort process memory locking so secret
// material cannot be paged to swap. Enclave-level protection is handled
// separately by memguard; this covers the rest of the process image.
package mem

// ProtectionLevel reports how much of the process memory could be locked.
type ProtectionLevel int

const (
	ProtectionNone    ProtectionLevel = iota // locking failed outright
	ProtectionPartial                        // locking unavailable or denied, enclaves still protected
	ProtectionFull                           // process memory locked
)

func (p ProtectionLevel) String() string {
	switch p {
	case ProtectionFull:
		return "full"
	case ProtectionPartial:
		return "partial"
	default:
		return "none"
	}
}

// Lock attempts to pin current and future process memory in RAM. The
// result is advisory: the vault stays functional at any level.
func Lock() (ProtectionLevel, error) {
	return lockPlatform()
}

// Unlock releases memory locks if any were applied.
func Unlock() error {
	return unlockPlatform()
}
