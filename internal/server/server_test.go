package server_test

import (
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/JaimeStill/gallery/internal/config"
	"github.com/JaimeStill/gallery/internal/lifecycle"
	"github.com/JaimeStill/gallery/internal/server"
)

func TestServer_StartAndShutdown(t *testing.T) {
	cfg := &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            18087,
		ReadTimeout:     "5s",
		WriteTimeout:    "5s",
		ShutdownTimeout: "1s",
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	srv := server.New(cfg, handler, logger)

	lc := lifecycle.New()
	if err := srv.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	url := "http://" + cfg.Addr() + "/"

	var resp *http.Response
	var err error
	for range 50 {
		resp, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	if err := lc.Shutdown(2 * time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	if _, err := http.Get(url); err == nil {
		t.Error("GET after Shutdown() succeeded, want connection error")
	}
}

func TestServer_StartAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() failed: %v", err)
	}
	defer ln.Close()

	_, port, _ := net.SplitHostPort(ln.Addr().String())
	portNum, _ := strconv.Atoi(port)

	cfg := &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            portNum,
		ReadTimeout:     "5s",
		WriteTimeout:    "5s",
		ShutdownTimeout: "1s",
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	srv := server.New(cfg, http.NotFoundHandler(), logger)

	if err := srv.Start(lifecycle.New()); err == nil {
		t.Error("Start() on a bound port succeeded, want error")
	}
}
