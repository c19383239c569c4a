// Package form is the terminal rendition of the profile form: nine text
// inputs bound to the profile fields.
package form

import (
	"github.com/charmbracelet/huh"

	"readme-generator/internal/domain"
	"readme-generator/internal/usecase"
)

// Labels maps each known field to its input label.
var Labels = map[string]string{
	domain.FieldName:          "Name",
	domain.FieldUsername:      "GitHub Username",
	domain.FieldBannerImage:   "Banner Image URL",
	domain.FieldGifURL:        "GIF URL",
	domain.FieldBio:           "Bio",
	domain.FieldSkills:        "Skills",
	domain.FieldProjects:      "Projects (URLs) | You can find all my projects here",
	domain.FieldContributions: "Contributions",
	domain.FieldDetails:       "Details",
}

// Answers holds the raw input values keyed by field name.
type Answers map[string]*string

func NewAnswers() Answers {
	a := make(Answers, len(domain.FieldNames))
	for _, n := range domain.FieldNames {
		v := ""
		a[n] = &v
	}
	return a
}

// Build constructs the form. Identity fields and free text are split into
// two groups like the two columns of the web form.
func Build(a Answers) *huh.Form {
	input := func(name string) huh.Field {
		return huh.NewInput().Title(Labels[name]).Value(a[name])
	}
	text := func(name string) huh.Field {
		return huh.NewText().Title(Labels[name]).Value(a[name])
	}

	identity := huh.NewGroup(
		input(domain.FieldName),
		input(domain.FieldUsername),
		input(domain.FieldBannerImage),
		input(domain.FieldGifURL),
	).Title("GitHub Readme Generator").
		Description("Fill in at least five fields to generate a README.")

	about := huh.NewGroup(
		input(domain.FieldBio),
		input(domain.FieldSkills),
		input(domain.FieldProjects),
		input(domain.FieldContributions),
		text(domain.FieldDetails),
	)

	return huh.NewForm(identity, about).WithTheme(huh.ThemeCatppuccin())
}

// Apply feeds every answered field into the session, in form order. A
// terminal form only reports final values, so a field counts as touched
// when it is non-empty. Returns the number of fields applied.
func Apply(s *usecase.Session, a Answers) int {
	n := 0
	for _, name := range domain.FieldNames {
		v, ok := a[name]
		if !ok || v == nil || *v == "" {
			continue
		}
		s.SetField(name, *v)
		n++
	}
	return n
}
