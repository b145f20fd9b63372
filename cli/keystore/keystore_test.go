package keystore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func newTestKeystore(t *testing.T) *FileKeystore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keys.enc")
	return NewFileKeystoreWithKey(path, []byte("test-master-key"))
}

func TestSetGetRoundtrip(t *testing.T) {
	ks := newTestKeystore(t)

	if err := ks.Set("openai", "sk-test-123"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := ks.Get("openai")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "sk-test-123" {
		t.Errorf("Get() = %q, want sk-test-123", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	ks := newTestKeystore(t)

	_, err := ks.Get("openai")
	if err == nil {
		t.Fatal("Get() error = nil, want ErrKeyNotFound")
	}
	if _, ok := err.(*ErrKeyNotFound); !ok {
		t.Errorf("Get() error = %T, want *ErrKeyNotFound", err)
	}
}

func TestSetOverwrites(t *testing.T) {
	ks := newTestKeystore(t)

	if err := ks.Set("openai", "old"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := ks.Set("openai", "new"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := ks.Get("openai")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "new" {
		t.Errorf("Get() = %q, want new", got)
	}
}

func TestDelete(t *testing.T) {
	ks := newTestKeystore(t)

	if err := ks.Set("openai", "sk-test"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := ks.Delete("openai"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := ks.Get("openai"); err == nil {
		t.Error("Get() after Delete() succeeded, want ErrKeyNotFound")
	}
}

func TestDeleteMissingKey(t *testing.T) {
	ks := newTestKeystore(t)

	err := ks.Delete("openai")
	if _, ok := err.(*ErrKeyNotFound); !ok {
		t.Errorf("Delete() error = %T, want *ErrKeyNotFound", err)
	}
}

func TestListSorted(t *testing.T) {
	ks := newTestKeystore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := ks.Set(name, "v"); err != nil {
			t.Fatalf("Set(%s) error = %v", name, err)
		}
	}

	names, err := ks.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestListEmpty(t *testing.T) {
	ks := newTestKeystore(t)

	names, err := ks.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("List() = %v, want empty", names)
	}
}

func TestFileIsEncrypted(t *testing.T) {
	ks := newTestKeystore(t)

	if err := ks.Set("openai", "sk-super-secret"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	raw, err := os.ReadFile(ks.path)
	if err != nil {
		t.Fatalf("read keystore file: %v", err)
	}

	if !bytes.HasPrefix(raw, []byte(magicHeader)) {
		t.Errorf("file does not start with %q header", magicHeader)
	}
	if bytes.Contains(raw, []byte("sk-super-secret")) {
		t.Error("key value appears in plaintext on disk")
	}
}

func TestWrongMasterKeyFailsToDecrypt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.enc")

	ks := NewFileKeystoreWithKey(path, []byte("right-key"))
	if err := ks.Set("openai", "sk-test"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	other := NewFileKeystoreWithKey(path, []byte("wrong-key"))
	if _, err := other.Get("openai"); err == nil {
		t.Error("Get() with wrong master key succeeded, want decrypt failure")
	}
}

func TestFilePermissions(t *testing.T) {
	ks := newTestKeystore(t)

	if err := ks.Set("openai", "sk-test"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	info, err := os.Stat(ks.path)
	if err != nil {
		t.Fatalf("stat keystore file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}
}
