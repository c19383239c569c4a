package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGitHubUser(t *testing.T) {
	require.NoError(t, ValidateGitHubUser([]byte(`{"login":"alice","public_repos":12}`)))
	require.NoError(t, ValidateGitHubUser([]byte(`{"public_repos":0}`)))

	err := ValidateGitHubUser([]byte(`{"login":"alice"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidShape))

	err = ValidateGitHubUser([]byte(`{"public_repos":"twelve"}`))
	assert.True(t, errors.Is(err, ErrInvalidShape))

	err = ValidateGitHubUser([]byte(`[]`))
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestValidateGitHubUserMalformed(t *testing.T) {
	err := ValidateGitHubUser([]byte(`{"public_repos":`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidShape))
}

func TestValidateGitHubRepos(t *testing.T) {
	require.NoError(t, ValidateGitHubRepos([]byte(`[]`)))
	require.NoError(t, ValidateGitHubRepos([]byte(`[{"language":"Go"},{"language":null},{}]`)))

	err := ValidateGitHubRepos([]byte(`{"message":"Not Found"}`))
	assert.True(t, errors.Is(err, ErrInvalidShape))

	err = ValidateGitHubRepos([]byte(`[{"language":42}]`))
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestValidateFieldUpdate(t *testing.T) {
	require.NoError(t, ValidateFieldUpdate([]byte(`{"value":""}`)))
	require.NoError(t, ValidateFieldUpdate([]byte(`{"value":"<b>raw</b>"}`)))

	assert.ErrorIs(t, ValidateFieldUpdate([]byte(`{}`)), ErrInvalidShape)
	assert.ErrorIs(t, ValidateFieldUpdate([]byte(`{"value":3}`)), ErrInvalidShape)
}
