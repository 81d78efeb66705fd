package kv

import (
	"path/filepath"
	"testing"
)

func TestFileStore_SetGet(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}

	if _, found, err := s.Get("conversations"); err != nil || found {
		t.Fatalf("expected missing key, got found=%v err=%v", found, err)
	}

	if err := s.Set("conversations", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, found, err := s.Get("conversations")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if string(got) != `{"a":1}` {
		t.Fatalf("unexpected value: %s", got)
	}

	// Overwrite replaces the full value
	if err := s.Set("conversations", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = s.Get("conversations")
	if string(got) != `{"a":2}` {
		t.Fatalf("overwrite not applied: %s", got)
	}
}

func TestFileStore_KeysAreIndependent(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	if err := s.Set("a", []byte("1")); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if err := s.Set("b", []byte("2")); err != nil {
		t.Fatalf("set b: %v", err)
	}
	got, found, _ := s.Get("a")
	if !found || string(got) != "1" {
		t.Fatalf("key a clobbered: found=%v value=%s", found, got)
	}
}
