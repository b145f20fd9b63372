package commands

import (
	"strings"
	"testing"

	"github.com/petal-labs/sous/cli/keystore"
)

func TestKeysSetFromPipedInput(t *testing.T) {
	ks := newFakeKeystore(nil)
	ta := newTestApp(t, strings.NewReader("sk-piped-key\n"),
		WithKeystoreFactory(func() (keystore.Keystore, error) {
			return ks, nil
		}))

	if err := ta.run("keys", "set", "openai"); err != nil {
		t.Fatalf("keys set error = %v", err)
	}

	got, err := ks.Get("openai")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "sk-piped-key" {
		t.Errorf("stored key = %q, want sk-piped-key", got)
	}
	if !strings.Contains(ta.stdout.String(), "stored successfully") {
		t.Errorf("stdout = %q, want a confirmation message", ta.stdout.String())
	}
}

func TestKeysSetRejectsEmptyKey(t *testing.T) {
	ta := newTestApp(t, strings.NewReader("\n"))

	if err := ta.run("keys", "set", "openai"); err == nil {
		t.Fatal("keys set with empty key succeeded")
	}
}

func TestKeysGet(t *testing.T) {
	ta := newTestApp(t, strings.NewReader(""))

	if err := ta.run("keys", "get", "openai"); err != nil {
		t.Fatalf("keys get error = %v", err)
	}
	if got := strings.TrimSpace(ta.stdout.String()); got != "sk-test" {
		t.Errorf("stdout = %q, want sk-test", got)
	}
}

func TestKeysGetMissing(t *testing.T) {
	ta := newTestApp(t, strings.NewReader(""),
		WithKeystoreFactory(func() (keystore.Keystore, error) {
			return newFakeKeystore(nil), nil
		}))

	err := ta.run("keys", "get", "openai")
	if err == nil {
		t.Fatal("keys get for missing key succeeded")
	}
	if !strings.Contains(err.Error(), "no key stored") {
		t.Errorf("error = %q, want a no-key message", err)
	}
}

func TestKeysList(t *testing.T) {
	ta := newTestApp(t, strings.NewReader(""),
		WithKeystoreFactory(func() (keystore.Keystore, error) {
			return newFakeKeystore(map[string]string{
				"openai": "sk-1",
				"other":  "sk-2",
			}), nil
		}))

	if err := ta.run("keys", "list"); err != nil {
		t.Fatalf("keys list error = %v", err)
	}

	out := ta.stdout.String()
	if !strings.Contains(out, "openai") || !strings.Contains(out, "other") {
		t.Errorf("stdout = %q, want both provider names", out)
	}
	if strings.Contains(out, "sk-1") || strings.Contains(out, "sk-2") {
		t.Error("stdout leaks key values")
	}
}

func TestKeysListEmpty(t *testing.T) {
	ta := newTestApp(t, strings.NewReader(""),
		WithKeystoreFactory(func() (keystore.Keystore, error) {
			return newFakeKeystore(nil), nil
		}))

	if err := ta.run("keys", "list"); err != nil {
		t.Fatalf("keys list error = %v", err)
	}
	if !strings.Contains(ta.stdout.String(), "No API keys stored") {
		t.Errorf("stdout = %q, want the empty-store message", ta.stdout.String())
	}
}

func TestKeysDelete(t *testing.T) {
	ks := newFakeKeystore(map[string]string{"openai": "sk-test"})
	ta := newTestApp(t, strings.NewReader(""),
		WithKeystoreFactory(func() (keystore.Keystore, error) {
			return ks, nil
		}))

	if err := ta.run("keys", "delete", "openai"); err != nil {
		t.Fatalf("keys delete error = %v", err)
	}
	if _, err := ks.Get("openai"); err == nil {
		t.Error("key still present after delete")
	}
}

func TestKeysDeleteMissing(t *testing.T) {
	ta := newTestApp(t, strings.NewReader(""),
		WithKeystoreFactory(func() (keystore.Keystore, error) {
			return newFakeKeystore(nil), nil
		}))

	err := ta.run("keys", "delete", "openai")
	if err == nil {
		t.Fatal("keys delete for missing key succeeded")
	}
	if !strings.Contains(err.Error(), "no key stored") {
		t.Errorf("error = %q, want a no-key message", err)
	}
}
