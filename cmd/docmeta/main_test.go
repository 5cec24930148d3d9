package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/docmeta/cmd/docmeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

const pageHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Release Notes</title>
	<meta name="description" content="What changed in 2.0">
	<meta property="og:title" content="Release Notes">
	<link rel="canonical" href="https://example.com/releases">
</head>
<body><p>Notes</p></body>
</html>`

// writePage writes an HTML page into dir and returns its path.
func writePage(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := main.NewMain()
			m.DBPath = filepath.Join(t.TempDir(), "test.db")

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(testContext(), tt.args, stdout, stderr)

			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "Usage: docmeta")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: docmeta")
}

func TestRun_HelpWithoutCreatingDB(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "should-not-exist.db")

	m := main.NewMain()
	m.DBPath = dbPath

	err := m.Run(testContext(), []string{"--help"}, &bytes.Buffer{}, &bytes.Buffer{})

	require.NoError(t, err)
	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr), "database file should not be created for --help")
}

func TestRun_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prints JSON without opening the database", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := writePage(t, dir, "page.html", pageHTML)
		dbPath := filepath.Join(dir, "unused.db")

		m := main.NewMain()
		m.DBPath = dbPath

		stdout := &bytes.Buffer{}
		err := m.Run(testContext(), []string{"extract", page}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"title": "Release Notes"`)
		assert.Contains(t, stdout.String(), `"canonical": "https://example.com/releases"`)
		assert.Contains(t, stdout.String(), `"viewport": null`)

		_, statErr := os.Stat(dbPath)
		assert.True(t, os.IsNotExist(statErr), "database file should not be created without --save")
	})

	t.Run("prints XML when requested", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := writePage(t, dir, "page.html", pageHTML)

		m := main.NewMain()
		m.DBPath = filepath.Join(dir, "unused.db")

		stdout := &bytes.Buffer{}
		err := m.Run(testContext(), []string{"extract", "--format", "xml", page}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "<metadata>")
		assert.Contains(t, stdout.String(), "<title>Release Notes</title>")
	})

	t.Run("logs extraction when verbose", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := writePage(t, dir, "page.html", pageHTML)

		m := main.NewMain()
		m.DBPath = filepath.Join(dir, "unused.db")

		stderr := &bytes.Buffer{}
		err := m.Run(testContext(), []string{"--verbose", "extract", page}, &bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "msg=extract")
		assert.Contains(t, stderr.String(), `title="Release Notes"`)
	})
}

func TestRun_SaveListShowDelete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	page := writePage(t, dir, "page.html", pageHTML)

	m := main.NewMain()
	m.DBPath = filepath.Join(dir, "test.db")

	stdout := &bytes.Buffer{}
	err := m.Run(testContext(), []string{"extract", "--save", page}, stdout, &bytes.Buffer{})
	require.NoError(t, err)

	stdout.Reset()
	m = main.NewMain()
	m.DBPath = filepath.Join(dir, "test.db")
	err = m.Run(testContext(), []string{"list"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)

	line := strings.TrimSpace(stdout.String())
	assert.Contains(t, line, page)
	assert.Contains(t, line, "Release Notes")
	id := strings.Fields(line)[0]

	stdout.Reset()
	m = main.NewMain()
	m.DBPath = filepath.Join(dir, "test.db")
	err = m.Run(testContext(), []string{"show", id}, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"description": "What changed in 2.0"`)

	stdout.Reset()
	m = main.NewMain()
	m.DBPath = filepath.Join(dir, "test.db")
	err = m.Run(testContext(), []string{"delete", id, "--force"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Deleted record "+id)

	stdout.Reset()
	m = main.NewMain()
	m.DBPath = filepath.Join(dir, "test.db")
	err = m.Run(testContext(), []string{"list"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No records found")
}
