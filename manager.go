package ferreus

import (
	"sync"
	"time"

	"github.com/awnumar/memguard"

	"github.com/Quabena/ferreus-vault/audit"
	"github.com/Quabena/ferreus-vault/internal/debug"
	"github.com/Quabena/ferreus-vault/internal/mem"
	"github.com/Quabena/ferreus-vault/internal/secure"
	"github.com/Quabena/ferreus-vault/persist"
)

func init() {
	// Wipe enclave session material if the process is interrupted.
	memguard.CatchInterrupt()
}

// Manager is the single owner of decrypted state. While the vault is
// unlocked it holds the MasterKey and the VaultData; while locked it holds
// neither. The two slots move together: no caller can ever observe exactly
// one of them populated.
//
// All access to the slots goes through one mutex. The guard is never held
// across file I/O or across the expensive key derivation step; derivation
// runs first and only the finished key is installed under the guard.
type Manager struct {
	mu   sync.Mutex
	key  *MasterKey
	data *VaultData

	store persist.Store
	audit audit.Logger

	autoLockTimeout time.Duration
	lastActivity    time.Time

	memoryProtection  mem.ProtectionLevel
	memoryLockApplied bool
}

// NewManager creates a manager for the vault file at path. The manager
// starts locked; no key material exists until Create or Unlock.
func NewManager(path string, opts Options) *Manager {
	return NewManagerWithStore(persist.NewFileStore(path), opts)
}

// NewManagerWithStore creates a manager on a caller-supplied store.
func NewManagerWithStore(store persist.Store, opts Options) *Manager {
	opts = opts.withDefaults()

	m := &Manager{
		store:            store,
		audit:            opts.AuditLogger,
		autoLockTimeout:  opts.AutoLockTimeout,
		lastActivity:     time.Now(),
		memoryProtection: mem.ProtectionPartial,
	}

	if opts.EnableMemoryLock {
		level, err := mem.Lock()
		if err != nil {
			debug.Print("memory lock failed: %v", err)
		}
		m.memoryProtection = level
		m.memoryLockApplied = err == nil && level == mem.ProtectionFull
	}

	return m
}

// Create initializes a new empty vault at the target path, protected by
// password. It refuses to overwrite: if a vault already exists the call
// fails with ErrCorruptedVault and the existing file is untouched.
//
// Creation does not unlock. The fresh key is derived, used to seal an
// empty payload, and destroyed before returning.
func (m *Manager) Create(password string) error {
	if err := ValidateMasterPassword(password); err != nil {
		m.audit.Log("create_vault", false, map[string]interface{}{"error": "password policy"})
		return err
	}

	if m.store.Exists() {
		m.audit.Log("create_vault", false, map[string]interface{}{"error": "vault exists"})
		return ErrCorruptedVault
	}

	// Expensive derivation, outside the state guard.
	key, err := NewMasterKey(password)
	if err != nil {
		m.audit.Log("create_vault", false, map[string]interface{}{"error": "derivation"})
		return err
	}
	defer key.Destroy()

	if err := m.sealAndStore(NewVaultData(), key); err != nil {
		m.audit.Log("create_vault", false, map[string]interface{}{"error": "persist"})
		return err
	}

	m.audit.Log("create_vault", true, map[string]interface{}{"path": m.store.Path()})
	return nil
}

// Unlock loads the on-disk envelope, re-derives the master key from
// password and the stored salt, and installs the decrypted state. Any
// failure at any step leaves the manager locked; authentication failure
// and file corruption are indistinguishable in the returned error.
func (m *Manager) Unlock(password string) error {
	// Failure metadata carries only the already-collapsed error, so the
	// audit log cannot become a finer-grained oracle than the caller gets.
	raw, err := m.store.Load()
	if err != nil {
		err = ioError(err)
		m.audit.Log("unlock_vault", false, map[string]interface{}{"error": err.Error()})
		return err
	}

	env, err := UnmarshalEnvelope(raw)
	if err != nil {
		m.audit.Log("unlock_vault", false, map[string]interface{}{"error": err.Error()})
		return err
	}

	// Expensive derivation, outside the state guard.
	key, err := DeriveMasterKey(password, env.Salt[:])
	if err != nil {
		m.audit.Log("unlock_vault", false, map[string]interface{}{"error": err.Error()})
		return err
	}

	plaintext, err := env.Open(key)
	if err != nil {
		key.Destroy()
		m.audit.Log("unlock_vault", false, map[string]interface{}{"error": err.Error()})
		return err
	}

	data, err := UnmarshalVaultData(plaintext)
	secure.Wipe(plaintext)
	if err != nil {
		key.Destroy()
		m.audit.Log("unlock_vault", false, map[string]interface{}{"error": err.Error()})
		return err
	}

	m.mu.Lock()
	if m.key != nil {
		m.key.Destroy()
	}
	if m.data != nil {
		m.data.wipe()
	}
	m.key = key
	m.data = data
	m.lastActivity = time.Now()
	m.mu.Unlock()

	m.audit.Log("unlock_vault", true, nil)
	return nil
}

// Lock discards the master key and the decrypted data, wiping both.
// Idempotent: locking an already-locked manager is a no-op.
func (m *Manager) Lock() {
	m.mu.Lock()
	wiped := m.key != nil || m.data != nil
	if m.key != nil {
		m.key.Destroy()
		m.key = nil
	}
	if m.data != nil {
		m.data.wipe()
		m.data = nil
	}
	m.mu.Unlock()

	if wiped {
		m.audit.Log("lock_vault", true, nil)
	}
}

// IsUnlocked reports whether decrypted state is currently held.
func (m *Manager) IsUnlocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.key != nil && m.data != nil
}

// WithData grants exclusive access to the decrypted data for the duration
// of fn. Fails with ErrVaultLocked when locked. The mutator's own error is
// propagated unchanged; activity is only registered on success.
//
// fn runs under the state guard: it must not perform I/O or call back
// into the manager.
func (m *Manager) WithData(fn func(*VaultData) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.key == nil || m.data == nil {
		return ErrVaultLocked
	}
	if err := fn(m.data); err != nil {
		return err
	}
	m.lastActivity = time.Now()
	return nil
}

// Save re-serializes the held data, re-encrypts it under the held key with
// a fresh nonce, and atomically persists it. Fails with ErrVaultLocked
// when locked.
func (m *Manager) Save() error {
	m.mu.Lock()
	if m.key == nil || m.data == nil {
		m.mu.Unlock()
		return ErrVaultLocked
	}

	// Seal under the guard so a concurrent Lock cannot wipe the key out
	// from under the cipher; the write itself happens outside.
	plaintext, err := m.data.Marshal()
	if err != nil {
		m.mu.Unlock()
		m.audit.Log("save_vault", false, map[string]interface{}{"error": "serialize"})
		return err
	}
	env, err := Seal(plaintext, m.key)
	secure.Wipe(plaintext)
	if err != nil {
		m.mu.Unlock()
		m.audit.Log("save_vault", false, map[string]interface{}{"error": "encrypt"})
		return err
	}
	m.mu.Unlock()

	if err := m.store.Save(env.Marshal()); err != nil {
		m.audit.Log("save_vault", false, map[string]interface{}{"error": "io"})
		return ioError(err)
	}

	m.mu.Lock()
	m.lastActivity = time.Now()
	m.mu.Unlock()

	m.audit.Log("save_vault", true, nil)
	return nil
}

// ShouldAutoLock reports whether the vault is unlocked and the inactivity
// window has elapsed. Advisory only: the caller schedules the actual Lock.
func (m *Manager) ShouldAutoLock() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.key != nil && m.data != nil && time.Since(m.lastActivity) >= m.autoLockTimeout
}

// SetAutoLockTimeout replaces the inactivity window.
func (m *Manager) SetAutoLockTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoLockTimeout = timeout
}

// Path returns the vault file path.
func (m *Manager) Path() string {
	return m.store.Path()
}

// Exists reports whether a vault file is present at the target path.
func (m *Manager) Exists() bool {
	return m.store.Exists()
}

// MemoryProtection reports the process-memory protection level achieved at
// construction.
func (m *Manager) MemoryProtection() mem.ProtectionLevel {
	return m.memoryProtection
}

// Close forces a lock-equivalent wipe and releases the process memory lock
// if one was applied. Call it on every teardown path; no secret material
// survives it.
func (m *Manager) Close() error {
	m.Lock()
	if m.memoryLockApplied {
		if err := mem.Unlock(); err != nil {
			debug.Print("memory unlock failed: %v", err)
		}
		m.memoryLockApplied = false
	}
	return nil
}

// sealAndStore serializes and encrypts data under key, then persists the
// envelope atomically. The plaintext buffer is wiped on every path.
func (m *Manager) sealAndStore(data *VaultData, key *MasterKey) error {
	plaintext, err := data.Marshal()
	if err != nil {
		return err
	}
	env, err := Seal(plaintext, key)
	secure.Wipe(plaintext)
	if err != nil {
		return err
	}
	if err := m.store.Save(env.Marshal()); err != nil {
		return ioError(err)
	}
	return nil
}
