package remedy

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptRunner_PrefersLocalScript(t *testing.T) {
	workDir := t.TempDir()
	local := filepath.Join(workDir, "install.sh")
	require.NoError(t, os.WriteFile(local, []byte("#!/bin/sh\n"), 0o644))

	r := &fakeRunner{}
	s := &ScriptRunner{Runner: r, WorkDir: workDir, ScriptURL: "http://127.0.0.1:1/unreachable"}

	require.NoError(t, s.Run(context.Background(), "bash", true))

	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"bash", local, "--silent"}, r.calls[0])
}

func TestScriptRunner_OmitsSilentFlagInPromptMode(t *testing.T) {
	workDir := t.TempDir()
	local := filepath.Join(workDir, "install.sh")
	require.NoError(t, os.WriteFile(local, []byte("#!/bin/sh\n"), 0o644))

	r := &fakeRunner{}
	s := &ScriptRunner{Runner: r, WorkDir: workDir}

	require.NoError(t, s.Run(context.Background(), "bash", false))

	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"bash", local}, r.calls[0])
}

func TestScriptRunner_DownloadsAndCleansUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("#!/bin/sh\n"))
	}))
	defer srv.Close()

	tempDir := t.TempDir()
	r := &fakeRunner{}
	s := &ScriptRunner{
		Runner:    r,
		WorkDir:   t.TempDir(), // no local install.sh here
		ScriptURL: srv.URL,
		TempDir:   tempDir,
	}

	require.NoError(t, s.Run(context.Background(), "bash", true))

	require.Len(t, r.calls, 1)
	assert.Contains(t, r.calls[0][1], "prism-install-")
	assertDirEmpty(t, tempDir)
}

func TestScriptRunner_CleansUpWhenScriptFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("#!/bin/sh\nexit 3\n"))
	}))
	defer srv.Close()

	tempDir := t.TempDir()
	r := &fakeRunner{runErr: errors.New("exit status 3")}
	s := &ScriptRunner{
		Runner:    r,
		WorkDir:   t.TempDir(),
		ScriptURL: srv.URL,
		TempDir:   tempDir,
	}

	err := s.Run(context.Background(), "bash", true)

	require.Error(t, err)
	assertDirEmpty(t, tempDir)
}

func TestScriptRunner_CleansUpWhenDownloadFails(t *testing.T) {
	fastRetries(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	tempDir := t.TempDir()
	r := &fakeRunner{}
	s := &ScriptRunner{
		Runner:    r,
		WorkDir:   t.TempDir(),
		ScriptURL: srv.URL,
		TempDir:   tempDir,
	}

	err := s.Run(context.Background(), "bash", true)

	require.Error(t, err)
	assert.Empty(t, r.calls, "the script must not run when the download failed")
	assertDirEmpty(t, tempDir)
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary script files must be cleaned up")
}
