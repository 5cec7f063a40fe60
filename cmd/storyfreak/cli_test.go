package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyfreak/internal/domain"
	"storyfreak/internal/stories"
	"storyfreak/internal/users"
)

// run executes the command tree against files in dir
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, ".storyfreak.toml"),
		"--storage", filepath.Join(dir, "storage.toml"),
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func listUsers(t *testing.T, dir string) []domain.User {
	t.Helper()
	out, err := run(t, dir, "users", "list", "--json")
	require.NoError(t, err)
	var list []domain.User
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	return list
}

func TestUsersListSeedsStorage(t *testing.T) {
	dir := t.TempDir()

	list := listUsers(t, dir)
	assert.Equal(t, users.Seed(), list)
	assert.FileExists(t, filepath.Join(dir, "storage.toml"))
	assert.FileExists(t, filepath.Join(dir, "storyfreak.log"))
}

func TestConfigLoadIsLogged(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "stories")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "storyfreak.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"config loaded"`)
}

func TestCorruptStorageFallsBackToSeed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "storage.toml"),
		[]byte("storyfreak-users = '{not json'\n"), 0o644))

	assert.Equal(t, users.Seed(), listUsers(t, dir))

	data, err := os.ReadFile(filepath.Join(dir, "storyfreak.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Stored users are unreadable")
}

func TestUsersListTable(t *testing.T) {
	out, err := run(t, t.TempDir(), "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Sarah Wilson")
	assert.NotContains(t, out, "›")
}

func TestUsersAddUpdateDelete(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "users", "add", "--name", "Ada Lovelace", "--email", "ada@example.com", "--status", "pending")
	require.NoError(t, err)
	assert.Equal(t, "Added Ada Lovelace (id 7)\n", out)

	_, err = run(t, dir, "users", "update", "7", "--role", "Engineer")
	require.NoError(t, err)

	list := listUsers(t, dir)
	require.Len(t, list, 7)
	assert.Equal(t, domain.User{
		ID: "7", Name: "Ada Lovelace", Email: "ada@example.com", Role: "Engineer", Status: domain.StatusPending,
	}, list[6])

	_, err = run(t, dir, "users", "delete", "7")
	require.NoError(t, err)
	assert.Len(t, listUsers(t, dir), 6)
}

func TestUsersAddRejectsBadStatus(t *testing.T) {
	_, err := run(t, t.TempDir(), "users", "add", "--name", "X", "--email", "x@example.com", "--status", "gone")
	assert.Error(t, err)
}

func TestUsersMissingID(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "users", "delete", "99")
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	_, err = run(t, dir, "users", "update", "99", "--name", "Nobody")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUsersReset(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "users", "delete", "1")
	require.NoError(t, err)

	out, err := run(t, dir, "users", "reset")
	require.NoError(t, err)
	assert.Equal(t, "Restored 6 users\n", out)
	assert.Equal(t, users.Seed(), listUsers(t, dir))
}

func TestStoriesList(t *testing.T) {
	out, err := run(t, t.TempDir(), "stories")
	require.NoError(t, err)
	for _, s := range stories.All() {
		assert.Contains(t, out, s.ID)
	}
}

func TestStoriesShow(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "stories", "show", "datatable--empty", "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "No data found")

	_, err = run(t, dir, "stories", "show", "datatable--nope")
	assert.ErrorIs(t, err, stories.ErrUnknownStory)

	_, err = run(t, dir, "stories", "show", "datatable--empty", "--theme", "sepia")
	assert.Error(t, err)
}

func TestConfigInitWritesFile(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "config", "init")
	require.NoError(t, err)
	path := filepath.Join(dir, ".storyfreak.toml")
	assert.Equal(t, "Wrote "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "storage_path")

	out, err = run(t, dir, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}
