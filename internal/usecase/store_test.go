package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"readme-generator/internal/domain"
)

func TestProfileStoreDefaults(t *testing.T) {
	s := NewProfileStore()
	assert.Equal(t, domain.EmptyFields(), s.Fields())
	assert.Empty(t, s.Touched())
	assert.False(t, s.Ready())
}

func TestSetFieldReturnsPrevious(t *testing.T) {
	s := NewProfileStore()
	assert.Equal(t, "", s.SetField(domain.FieldName, "Ada"))
	assert.Equal(t, "Ada", s.SetField(domain.FieldName, "Grace"))
	assert.Equal(t, "Grace", s.Fields().Get(domain.FieldName))
}

func TestSetFieldTouchesOnce(t *testing.T) {
	s := NewProfileStore()
	s.SetField(domain.FieldBio, "a")
	s.SetField(domain.FieldBio, "b")
	s.SetField(domain.FieldBio, "")
	assert.Equal(t, []string{domain.FieldBio}, s.Touched())
}

func TestSetFieldAcceptsUnknownNames(t *testing.T) {
	s := NewProfileStore()
	s.SetField("twitterHandle", "@ada")
	assert.Equal(t, "@ada", s.Fields().Get("twitterHandle"))
	assert.Equal(t, []string{"twitterHandle"}, s.Touched())
}

func TestReadyGate(t *testing.T) {
	t.Run("four distinct names stay locked", func(t *testing.T) {
		s := NewProfileStore()
		for i := 0; i < 10; i++ {
			for _, n := range []string{domain.FieldName, domain.FieldBio, domain.FieldSkills, domain.FieldProjects} {
				s.SetField(n, "x")
			}
		}
		assert.False(t, s.Ready())
	})

	t.Run("five distinct names unlock", func(t *testing.T) {
		s := NewProfileStore()
		for _, n := range []string{domain.FieldName, domain.FieldBio, domain.FieldSkills, domain.FieldProjects, domain.FieldDetails} {
			s.SetField(n, "x")
		}
		assert.True(t, s.Ready())
	})

	t.Run("cleared values still count", func(t *testing.T) {
		s := NewProfileStore()
		for _, n := range []string{domain.FieldName, domain.FieldBio, domain.FieldSkills, domain.FieldProjects, domain.FieldDetails} {
			s.SetField(n, "x")
			s.SetField(n, "")
		}
		assert.True(t, s.Ready())
	})
}

func TestResetClearsEverything(t *testing.T) {
	s := NewProfileStore()
	for _, n := range domain.FieldNames {
		s.SetField(n, "value-"+n)
	}
	s.SetField("extra", "x")
	s.Reset()

	assert.Equal(t, domain.EmptyFields(), s.Fields())
	assert.Empty(t, s.Touched())
	assert.False(t, s.Ready())
}

func TestFieldsSnapshotIsStable(t *testing.T) {
	s := NewProfileStore()
	s.SetField(domain.FieldName, "Ada")
	snap := s.Fields()
	s.SetField(domain.FieldName, "Grace")
	s.Reset()
	assert.Equal(t, "Ada", snap.Get(domain.FieldName))
}
