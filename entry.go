package ferreus

import (
	"encoding/json"
	"strings"
	"time"
)

// DataVersion is the schema version of the plaintext payload. It is
// independent of the envelope format version.
const DataVersion uint32 = 1

// Entry is a single credential stored in the vault. Entries are encrypted
// together as part of VaultData; individual fields are never persisted in
// the clear.
type Entry struct {
	// AccountName is the human-readable account or service name, used for
	// search and listing.
	AccountName string `json:"account_name"`

	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEntry creates an entry with both timestamps set to now.
func NewEntry(accountName, username, password, notes string) Entry {
	now := time.Now().UTC()
	return Entry{
		AccountName: accountName,
		Username:    username,
		Password:    password,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EntryUpdate carries the fields to change on an existing entry. Nil
// fields are left untouched.
type EntryUpdate struct {
	AccountName *string
	Username    *string
	Password    *string
	Notes       *string
}

func (e *Entry) apply(upd EntryUpdate) {
	modified := false
	if upd.AccountName != nil {
		e.AccountName = *upd.AccountName
		modified = true
	}
	if upd.Username != nil {
		e.Username = *upd.Username
		modified = true
	}
	if upd.Password != nil {
		e.Password = *upd.Password
		modified = true
	}
	if upd.Notes != nil {
		e.Notes = *upd.Notes
		modified = true
	}
	if modified {
		e.UpdatedAt = time.Now().UTC()
	}
}

// VaultData is the plaintext in-memory representation of the vault: a
// schema-versioned, ordered list of entries plus vault-level timestamps.
// The whole structure is serialized and encrypted as a single unit; the
// core treats the serialized form as an opaque payload.
//
// Entries are addressed by position. Indices shift when an entry is
// removed, so callers must not hold indices across mutations.
type VaultData struct {
	Version      uint32    `json:"version"`
	Entries      []Entry   `json:"entries"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

// NewVaultData creates an empty vault payload at the current schema
// version.
func NewVaultData() *VaultData {
	now := time.Now().UTC()
	return &VaultData{
		Version:      DataVersion,
		Entries:      []Entry{},
		CreatedAt:    now,
		LastModified: now,
	}
}

// AddEntry appends an entry.
func (d *VaultData) AddEntry(e Entry) {
	d.Entries = append(d.Entries, e)
	d.touch()
}

// GetEntry returns a copy of the entry at index.
func (d *VaultData) GetEntry(index int) (Entry, error) {
	if index < 0 || index >= len(d.Entries) {
		return Entry{}, ErrEntryNotFound
	}
	return d.Entries[index], nil
}

// UpdateEntry applies upd to the entry at index, refreshing its
// modification timestamp when any field changes.
func (d *VaultData) UpdateEntry(index int, upd EntryUpdate) error {
	if index < 0 || index >= len(d.Entries) {
		return ErrEntryNotFound
	}
	d.Entries[index].apply(upd)
	d.touch()
	return nil
}

// RemoveEntry removes and returns the entry at index. Entries after it
// shift down by one.
func (d *VaultData) RemoveEntry(index int) (Entry, error) {
	if index < 0 || index >= len(d.Entries) {
		return Entry{}, ErrEntryNotFound
	}
	removed := d.Entries[index]
	d.Entries = append(d.Entries[:index], d.Entries[index+1:]...)
	d.touch()
	return removed, nil
}

// FindEntries returns copies of the entries whose account name, username
// or notes contain query, case-insensitively. It operates on decrypted
// in-memory data only.
func (d *VaultData) FindEntries(query string) []Entry {
	q := strings.ToLower(query)

	var matches []Entry
	for _, e := range d.Entries {
		if strings.Contains(strings.ToLower(e.AccountName), q) ||
			strings.Contains(strings.ToLower(e.Username), q) ||
			strings.Contains(strings.ToLower(e.Notes), q) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Len returns the number of entries.
func (d *VaultData) Len() int {
	return len(d.Entries)
}

func (d *VaultData) touch() {
	d.LastModified = time.Now().UTC()
}

// wipe drops all entries so no credential remains reachable from the
// structure. Go strings are immutable, so the character data itself cannot
// be overwritten in place; dropping the references is the strongest
// clearing available at this layer.
func (d *VaultData) wipe() {
	for i := range d.Entries {
		d.Entries[i] = Entry{}
	}
	d.Entries = nil
}

// Marshal serializes the payload for encryption. Callers must wipe the
// returned buffer once it has been sealed.
func (d *VaultData) Marshal() ([]byte, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, ErrSerialization
	}
	return raw, nil
}

// UnmarshalVaultData decodes a decrypted payload. Structural failures
// collapse to ErrSerialization.
func UnmarshalVaultData(raw []byte) (*VaultData, error) {
	var d VaultData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, ErrSerialization
	}
	return &d, nil
}
