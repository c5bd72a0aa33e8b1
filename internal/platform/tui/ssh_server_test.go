package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveHostKeyPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys", "nested", "host_key")

	got, err := resolveHostKeyPath(path)
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory was not created: %v", err)
	}
}

func TestSSHServerServeStopsOnCancel(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "results.db")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.store == nil {
		t.Fatal("results database should be open")
	}
	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("host key not generated: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := srv.Serve(ctx); err != nil {
		t.Errorf("Serve: %v", err)
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("active sessions = %d, want 0", srv.ActiveSessions())
	}
	if srv.store != nil {
		t.Error("database should be closed after shutdown")
	}
}
