package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgrid/pkg/domain"
	"github.com/umputun/newsgrid/pkg/store"
)

func writeTestConfig(t *testing.T, listen string) (configPath, outputPath string) {
	t.Helper()
	dir := t.TempDir()
	outputPath = filepath.Join(dir, "updates.json")
	cfg := fmt.Sprintf(`
server:
  listen: "%s"
regions:
  - {key: europe, name: Europe}
categories: [news]
refresh:
  windows_per_day: 1
  pace: 1ms
  output_file: %s
archive:
  enabled: true
  dsn: "file:%s?mode=rwc"
`, listen, outputPath, filepath.Join(dir, "archive.db"))

	configPath = filepath.Join(dir, "newsgrid.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o600))
	return configPath, outputPath
}

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: configPath})
	require.Error(t, err)
	require.Contains(t, err.Error(), "load config")
}

func TestRun_SingleRun(t *testing.T) {
	configPath, outputPath := writeTestConfig(t, ":0")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// no headline key and no feeds configured, the run falls back to
	// generated filler and needs no network at all
	require.NoError(t, run(ctx, Opts{Config: configPath}))

	doc := store.Load(outputPath)
	bucket := doc.Bucket(domain.WorkItem{Region: "europe", Category: "news"})
	require.NotEmpty(t, bucket)
	for _, a := range bucket {
		assert.True(t, a.Trust.Simulated())
	}
	assert.False(t, doc.LastUpdatedUTC.IsZero())
}

func TestRun_ServiceStartStop(t *testing.T) {
	configPath, outputPath := writeTestConfig(t, "127.0.0.1:18766")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, Opts{Config: configPath, Service: true})
	}()

	// wait for the status server to come up
	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = http.Get("http://127.0.0.1:18766/ping")
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(body))

	// first refresh runs at startup
	require.Eventually(t, func() bool {
		_, err := os.Stat(outputPath)
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-serverErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Error("service shutdown timeout")
	}
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		setupLog(true, "secret1", "secret2")
	})

	t.Run("empty secrets skipped", func(t *testing.T) {
		setupLog(false, "", "")
	})
}
