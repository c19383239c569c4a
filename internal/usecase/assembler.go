package usecase

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"text/template"

	"readme-generator/internal/domain"
	"readme-generator/templates"
)

// repoCountFallback is printed when no repository count is known.
const repoCountFallback = "N/A"

// Sink receives a rendered document, e.g. an HTTP download or a file write.
type Sink interface {
	Deliver(ctx context.Context, doc domain.Document) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, doc domain.Document) error

func (f SinkFunc) Deliver(ctx context.Context, doc domain.Document) error { return f(ctx, doc) }

var readmeTemplate = template.Must(
	template.New("readme").
		Funcs(template.FuncMap{"component": encodeURIComponent}).
		Parse(templates.Readme),
)

type readmeView struct {
	Name          string
	Bio           string
	Skills        string
	Projects      string
	Contributions string
	Username      string
	BannerImage   string
	GifURL        string
	Details       string
	RepoCount     string
	Languages     []string
}

// RenderReadme renders the profile README. Field values are substituted
// as-is, without any escaping.
func RenderReadme(fields domain.Fields, stats domain.Stats) ([]byte, error) {
	view := readmeView{
		Name:          fields.Get(domain.FieldName),
		Bio:           fields.Get(domain.FieldBio),
		Skills:        fields.Get(domain.FieldSkills),
		Projects:      fields.Get(domain.FieldProjects),
		Contributions: fields.Get(domain.FieldContributions),
		Username:      fields.Get(domain.FieldUsername),
		BannerImage:   fields.Get(domain.FieldBannerImage),
		GifURL:        fields.Get(domain.FieldGifURL),
		Details:       fields.Get(domain.FieldDetails),
		RepoCount:     repoCountFallback,
		Languages:     stats.Languages,
	}
	if stats.RepoCount != 0 {
		view.RepoCount = strconv.Itoa(stats.RepoCount)
	}

	var buf bytes.Buffer
	if err := readmeTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render readme: %w", err)
	}
	return buf.Bytes(), nil
}

// NewReadme renders fields and stats into a downloadable README document.
func NewReadme(fields domain.Fields, stats domain.Stats) (domain.Document, error) {
	body, err := RenderReadme(fields, stats)
	if err != nil {
		return domain.Document{}, err
	}
	return domain.Document{
		Filename:    domain.ReadmeFilename,
		ContentType: domain.ReadmeContentType,
		Body:        body,
	}, nil
}

// uriComponentReplacer undoes the escapes url.QueryEscape applies to
// characters a URI component leaves alone.
var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func encodeURIComponent(s string) string {
	return uriComponentReplacer.Replace(url.QueryEscape(s))
}
