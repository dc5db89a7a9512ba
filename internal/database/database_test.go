package database_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/JaimeStill/gallery/internal/config"
	"github.com/JaimeStill/gallery/internal/database"
	"github.com/JaimeStill/gallery/internal/lifecycle"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func testConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Host:            "127.0.0.1",
		Port:            1,
		Name:            "postgres",
		User:            "postgres",
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: "1m",
		ConnTimeout:     "100ms",
		SSLMode:         "disable",
	}
}

func TestNew_DoesNotConnect(t *testing.T) {
	sys, err := database.New(testConfig(), testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	conn := sys.Connection()
	if conn == nil {
		t.Fatal("Connection() returned nil")
	}
	defer conn.Close()

	if got := conn.Stats().MaxOpenConnections; got != 4 {
		t.Errorf("MaxOpenConnections = %d, want 4", got)
	}
}

func TestStart_ClosesOnShutdown(t *testing.T) {
	sys, err := database.New(testConfig(), testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	// The startup ping fails against an unreachable host; startup still completes.
	lc.WaitForStartup()

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	if err := sys.Connection().Ping(); err == nil {
		t.Error("Ping() after shutdown succeeded, want closed pool error")
	}
}
