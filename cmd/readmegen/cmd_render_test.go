package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestReadProfileFlat(t *testing.T) {
	got, err := readProfile(writeFile(t, `{"name":"Ada","username":"ada","bio":""}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Ada", "username": "ada", "bio": ""}, got)
}

func TestReadProfileNested(t *testing.T) {
	got, err := readProfile(writeFile(t, `{"profile":{"skills":"Go"}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"skills": "Go"}, got)
}

func TestReadProfileRejectsNonStrings(t *testing.T) {
	_, err := readProfile(writeFile(t, `{"name":42}`))
	assert.Error(t, err)

	_, err = readProfile(writeFile(t, `[1,2]`))
	assert.Error(t, err)

	_, err = readProfile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
