package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/todo/internal/adapters/repo/memory"
	"github.com/bnema/todo/internal/adapters/transport/httpserver"
	"github.com/bnema/todo/internal/application"
	"github.com/bnema/todo/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBinaryName(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "todo ")
}

func TestTasksListOnEmptyServer(t *testing.T) {
	server := newTaskServer(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "tasks", "list", "--server", server.URL)
	require.NoError(t, err)
	assert.Contains(t, stdout, "tasks: 0")
	assert.Contains(t, stdout, "No tasks yet.")
}

func TestTasksAddThenListShowsTasksInOrder(t *testing.T) {
	server := newTaskServer(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "tasks", "add", "--server", server.URL, "buy", "milk")
	require.NoError(t, err)
	assert.Equal(t, "Task added\n", stdout)

	_, _, err = executeCLI(t, home, "tasks", "add", "--server", server.URL, "  walk the dog  ")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "tasks", "list", "--server", server.URL)
	require.NoError(t, err)
	assert.Contains(t, stdout, "tasks: 2")
	assert.Contains(t, stdout, "1. buy milk")
	assert.Contains(t, stdout, "2. walk the dog")

	stdout, _, err = executeCLI(t, home, "tasks", "list", "--server", server.URL, "--plain")
	require.NoError(t, err)
	assert.Equal(t, "buy milk\nwalk the dog\n", stdout)
}

func TestTasksAddRejectsBlankInputWithoutCallingServer(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, _, err := executeCLI(t, t.TempDir(), "tasks", "add", "--server", server.URL, "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task content is required")
	assert.Zero(t, calls.Load())
}

func TestTasksAddRequiresArgument(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "tasks", "add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestTasksListJSONOutput(t *testing.T) {
	server := newTaskServer(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "tasks", "add", "--server", server.URL, "buy milk")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "tasks", "list", "--server", server.URL, "--output", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.JSONEq(t, `["buy milk"]`, stdout)
}

func TestTasksListTOMLOutput(t *testing.T) {
	server := newTaskServer(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "tasks", "add", "--server", server.URL, "buy milk")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "tasks", "list", "--server", server.URL, "-o", "toml")
	require.NoError(t, err)

	var decoded struct {
		Version int      `toml:"version"`
		Tasks   []string `toml:"tasks"`
	}
	require.NoError(t, toml.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, 1, decoded.Version)
	assert.Equal(t, []string{"buy milk"}, decoded.Tasks)
}

func TestTasksListRejectsUnknownOutput(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "tasks", "list", "--output", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestTasksListUsesServerFromConfigFile(t *testing.T) {
	server := newTaskServer(t)
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, fmt.Sprintf("[client]\nbase_url = %q\n", server.URL)))

	stdout, _, err := executeCLI(t, home, "tasks", "list", "--plain")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestTasksListReportsServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, `{"error":"Internal Server Error"}`)
	}))
	defer server.Close()

	_, _, err := executeCLI(t, t.TempDir(), "tasks", "list", "--server", server.URL, "--plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch tasks")
	assert.Contains(t, err.Error(), "status 500")
}

func TestTasksAddReportsServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprint(w, `{"error":"Task content is required"}`)
	}))
	defer server.Close()

	stdout, _, err := executeCLI(t, t.TempDir(), "tasks", "add", "--server", server.URL, "buy milk")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTaskContentRequired)
	assert.Empty(t, stdout)
}

func TestExplicitConfigFileMustExist(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "--config", filepath.Join(home, "missing.toml"), "tasks", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestServeRejectsInvalidLogLevel(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "serve", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log.level")
}

func TestServeRunsUntilContextIsCancelled(t *testing.T) {
	home := t.TempDir()
	addr := freeAddr(t)
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<title>To-Do</title>"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Setenv("HOME", home)
	t.Chdir(home)

	root := newRootCmd()
	serveErr := &bytes.Buffer{}
	root.SetOut(&bytes.Buffer{})
	root.SetErr(serveErr)
	root.SetArgs([]string{"serve", "--addr", addr, "--static-dir", static})

	done := make(chan error, 1)
	go func() {
		done <- root.ExecuteContext(ctx)
	}()

	baseURL := "http://" + addr
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/tasks")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	stdout, _, err := executeCLI(t, home, "tasks", "add", "--server", baseURL, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "Task added\n", stdout)

	stdout, _, err = executeCLI(t, home, "tasks", "list", "--server", baseURL, "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["buy milk"]`, stdout)

	resp, err := http.Get(baseURL + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop")
	}
	assert.Contains(t, serveErr.String(), "server listening")
}

func newTaskServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httpserver.New(application.NewService(memory.NewRepository()), httpserver.Options{StaticDir: t.TempDir()}, nil)
	server := httptest.NewServer(srv.Handler())
	t.Cleanup(server.Close)
	return server
}

func freeAddr(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())
	return addr
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Chdir(home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfigFixture(home, contents string) error {
	configDir := filepath.Join(home, ".config", "todo")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(contents), 0o644)
}
