package ferreus

import (
	"errors"
	"testing"
	"time"
)

func TestVaultDataAddAndGet(t *testing.T) {
	data := NewVaultData()
	if data.Version != DataVersion {
		t.Fatalf("version %d, want %d", data.Version, DataVersion)
	}
	if data.Len() != 0 {
		t.Fatalf("new vault data should be empty")
	}

	data.AddEntry(NewEntry("github", "dev", "pw1", ""))
	data.AddEntry(NewEntry("bank", "dev@example.com", "pw2", "savings"))

	if data.Len() != 2 {
		t.Fatalf("len %d, want 2", data.Len())
	}
	entry, err := data.GetEntry(1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if entry.AccountName != "bank" {
		t.Fatalf("account %q, want bank", entry.AccountName)
	}

	if _, err := data.GetEntry(2); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("out of range get: got %v, want ErrEntryNotFound", err)
	}
	if _, err := data.GetEntry(-1); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("negative index get: got %v, want ErrEntryNotFound", err)
	}
}

// Removal shifts later entries down: positional addressing, as documented.
func TestVaultDataRemoveShiftsIndices(t *testing.T) {
	data := NewVaultData()
	for _, name := range []string{"a", "b", "c"} {
		data.AddEntry(NewEntry(name, "", "", ""))
	}

	removed, err := data.RemoveEntry(1)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if removed.AccountName != "b" {
		t.Fatalf("removed %q, want b", removed.AccountName)
	}

	entry, err := data.GetEntry(1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if entry.AccountName != "c" {
		t.Fatalf("index 1 now %q, want c", entry.AccountName)
	}

	if _, err := data.RemoveEntry(5); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("out of range remove: got %v, want ErrEntryNotFound", err)
	}
}

func TestVaultDataUpdateEntry(t *testing.T) {
	data := NewVaultData()
	data.AddEntry(NewEntry("mail", "old-user", "old-pw", "note"))

	before, _ := data.GetEntry(0)
	time.Sleep(5 * time.Millisecond)

	newUser := "new-user"
	if err := data.UpdateEntry(0, EntryUpdate{Username: &newUser}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	entry, _ := data.GetEntry(0)
	if entry.Username != "new-user" {
		t.Fatalf("username %q, want new-user", entry.Username)
	}
	if entry.Password != "old-pw" || entry.Notes != "note" {
		t.Fatal("unset fields must not change")
	}
	if !entry.UpdatedAt.After(before.UpdatedAt) {
		t.Fatal("update must refresh the modification timestamp")
	}

	// An empty update leaves the timestamp alone.
	stamp := entry.UpdatedAt
	if err := data.UpdateEntry(0, EntryUpdate{}); err != nil {
		t.Fatalf("empty update failed: %v", err)
	}
	entry, _ = data.GetEntry(0)
	if !entry.UpdatedAt.Equal(stamp) {
		t.Fatal("empty update must not refresh the timestamp")
	}

	if err := data.UpdateEntry(9, EntryUpdate{Username: &newUser}); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("out of range update: got %v, want ErrEntryNotFound", err)
	}
}

func TestVaultDataFindEntries(t *testing.T) {
	data := NewVaultData()
	data.AddEntry(NewEntry("GitHub", "dev", "", ""))
	data.AddEntry(NewEntry("gitlab", "ops", "", ""))
	data.AddEntry(NewEntry("bank", "dev", "", "git credentials backup"))

	if got := len(data.FindEntries("GIT")); got != 3 {
		t.Fatalf("matches %d, want 3 (account, account, notes)", got)
	}
	if got := len(data.FindEntries("dev")); got != 2 {
		t.Fatalf("matches %d, want 2 (usernames)", got)
	}
	if got := len(data.FindEntries("nothing")); got != 0 {
		t.Fatalf("matches %d, want 0", got)
	}
}

func TestVaultDataMarshalRoundTrip(t *testing.T) {
	data := NewVaultData()
	data.AddEntry(NewEntry("github", "dev", "pw", "note"))

	raw, err := data.Marshal()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	decoded, err := UnmarshalVaultData(raw)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.Version != data.Version || decoded.Len() != 1 {
		t.Fatal("decoded payload does not match")
	}
	entry, _ := decoded.GetEntry(0)
	if entry.Password != "pw" {
		t.Fatalf("password %q, want pw", entry.Password)
	}

	if _, err := UnmarshalVaultData([]byte("not json")); !errors.Is(err, ErrSerialization) {
		t.Fatalf("bad payload: got %v, want ErrSerialization", err)
	}
}
