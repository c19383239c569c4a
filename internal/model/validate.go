package model

import (
	"embed"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidShape marks a document that parsed as JSON but did not match
// the expected schema.
var ErrInvalidShape = errors.New("unexpected JSON shape")

//go:embed schema/*.json
var schemaFS embed.FS

var (
	githubUserSchema  = mustSchema("schema/github_user.schema.json")
	githubReposSchema = mustSchema("schema/github_repos.schema.json")
	fieldUpdateSchema = mustSchema("schema/field_update.schema.json")
)

func mustSchema(name string) *gojsonschema.Schema {
	b, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("model: read %s: %v", name, err))
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
	if err != nil {
		panic(fmt.Sprintf("model: compile %s: %v", name, err))
	}
	return s
}

// ValidateGitHubUser checks a /users/{username} response body.
func ValidateGitHubUser(raw []byte) error {
	return validate(githubUserSchema, "github user", raw)
}

// ValidateGitHubRepos checks a /users/{username}/repos response body.
func ValidateGitHubRepos(raw []byte) error {
	return validate(githubReposSchema, "github repos", raw)
}

// ValidateFieldUpdate checks the body of a field update request.
func ValidateFieldUpdate(raw []byte) error {
	return validate(fieldUpdateSchema, "field update", raw)
}

func validate(schema *gojsonschema.Schema, what string, raw []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("%s: %w: %s", what, ErrInvalidShape, msgs)
}
