package domain

// Profile field names bound to the form inputs.
const (
	FieldName          = "name"
	FieldBio           = "bio"
	FieldSkills        = "skills"
	FieldProjects      = "projects"
	FieldContributions = "contributions"
	FieldUsername      = "username"
	FieldBannerImage   = "bannerImage"
	FieldGifURL        = "gifURL"
	FieldDetails       = "details"
)

// FieldNames lists the known fields in form order.
var FieldNames = []string{
	FieldName,
	FieldUsername,
	FieldBannerImage,
	FieldGifURL,
	FieldBio,
	FieldSkills,
	FieldProjects,
	FieldContributions,
	FieldDetails,
}

// Fields maps a field name to its free-form text. Values are treated as
// immutable once published; use With to derive an updated copy.
type Fields map[string]string

// EmptyFields returns every known field set to the empty string.
func EmptyFields() Fields {
	f := make(Fields, len(FieldNames))
	for _, n := range FieldNames {
		f[n] = ""
	}
	return f
}

// Get returns the value stored under name, or "" when absent.
func (f Fields) Get(name string) string {
	return f[name]
}

// With returns a copy of f with name set to value.
func (f Fields) With(name, value string) Fields {
	out := make(Fields, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[name] = value
	return out
}

// Stats is the GitHub enrichment snapshot for the last fetched username.
type Stats struct {
	RepoCount int      `json:"repo_count"`
	Languages []string `json:"languages"`
}
