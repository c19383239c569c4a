package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankLanguages(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"nulls only", []string{"", ""}, []string{}},
		{"counts and nulls", []string{"Go", "Go", "Rust", ""}, []string{"Go", "Rust"}},
		{"ties keep first seen", []string{"Rust", "Go", "Python", "Go", "Rust"}, []string{"Rust", "Go", "Python"}},
		{"higher count overtakes", []string{"Shell", "Go", "Go", "TypeScript", "TypeScript", "TypeScript"}, []string{"TypeScript", "Go", "Shell"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RankLanguages(tt.in))
		})
	}
}
