package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_PlainRendersFetchedCases(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cases":[{"id":1,"title":"Налоговая","organization":"ФНС","rulesGenerated":340,"efficiencyIncrease":12.5}]}`))
	}))
	defer server.Close()

	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "bureaucrat.log")
	cfgPath := writeConfig(t, fmt.Sprintf("cases_url = %q\nlog_file = %q\nlog_level = \"debug\"\n", server.URL+"/get-cases", logPath))

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		ConfigPath: cfgPath,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		Plain:      true,
		Width:      100,
		Out:        &out,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
	assert.Contains(t, out.String(), "Налоговая")
	assert.Contains(t, out.String(), "+340")

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "cases fetched")
}

func TestRun_PlainFetchFailureIsNotFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dir := t.TempDir()
	cfgPath := writeConfig(t, fmt.Sprintf("log_file = %q\n", filepath.Join(dir, "app.log")))

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		ConfigPath: cfgPath,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		CasesURL:   server.URL,
		Plain:      true,
		Out:        &out,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Кейсы пока не опубликованы")
	assert.False(t, strings.Contains(out.String(), "returned status"))
}

func TestRun_InvalidConfigFails(t *testing.T) {
	cfgPath := writeConfig(t, "request_timeout = \"soon\"\n")
	err := Run(context.Background(), Options{ConfigPath: cfgPath, Plain: true, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestRun_MissingContentOverrideFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, fmt.Sprintf("content_file = %q\nlog_file = %q\n",
		filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "app.log")))
	err := Run(context.Background(), Options{ConfigPath: cfgPath, Plain: true, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load content")
}
