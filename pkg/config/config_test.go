package config

import (
	"os"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("APP_ENV", "test")
	os.Setenv("HTTP_ADDR", "127.0.0.1:8080")
	os.Setenv("SHUTDOWN_TIMEOUT", "1s")
	os.Setenv("LOG_LEVEL", "info")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	os.Setenv("ASYNQ_CONCURRENCY", "1")
	os.Setenv("BOARD_ACTOR", "tester")
	os.Setenv("GOMAXPROCS", "1")

	tmp := t.TempDir()
	os.Setenv("EXPORT_DIR", tmp)

	c, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if c.ExportDir != tmp {
		t.Fatalf("expected export dir %s, got %s", tmp, c.ExportDir)
	}
	if c.BoardActor != "tester" {
		t.Fatalf("expected actor tester, got %s", c.BoardActor)
	}
}
