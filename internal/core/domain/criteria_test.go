package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProfile() *Profile {
	return &Profile{
		ID:       "1",
		Name:     "Ana Silva",
		Role:     "Frontend Developer",
		Summary:  "Builds accessible interfaces",
		Location: "São Paulo",
		Area:     "Tech",
		Skills:   []string{"JavaScript", "React", "CSS"},
	}
}

func TestCriteria_IsActive(t *testing.T) {
	assert.False(t, Criteria{}.IsActive())
	assert.True(t, Criteria{Search: "a"}.IsActive())
	assert.True(t, Criteria{Area: "Tech"}.IsActive())
	assert.True(t, Criteria{City: "Recife"}.IsActive())
	assert.True(t, Criteria{Technology: "Go"}.IsActive())
}

func TestCriteria_Matches(t *testing.T) {
	p := testProfile()

	tests := []struct {
		name     string
		criteria Criteria
		expected bool
	}{
		{"zero criteria", Criteria{}, true},
		{"search name lowercase", Criteria{Search: "ana"}, true},
		{"search role", Criteria{Search: "FRONTEND"}, true},
		{"search summary", Criteria{Search: "accessible"}, true},
		{"search location ignored", Criteria{Search: "paulo"}, false},
		{"search miss", Criteria{Search: "backend"}, false},
		{"area exact", Criteria{Area: "Tech"}, true},
		{"area case sensitive", Criteria{Area: "tech"}, false},
		{"city exact", Criteria{City: "São Paulo"}, true},
		{"city partial is a miss", Criteria{City: "Paulo"}, false},
		{"technology substring", Criteria{Technology: "java"}, true},
		{"technology case insensitive", Criteria{Technology: "REACT"}, true},
		{"technology miss", Criteria{Technology: "Python"}, false},
		{"all match", Criteria{Search: "ana", Area: "Tech", City: "São Paulo", Technology: "css"}, true},
		{"one fails", Criteria{Search: "ana", Area: "Design"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.criteria.Matches(p))
		})
	}
}

func TestCriteria_Matches_JavaVariants(t *testing.T) {
	js := &Profile{Skills: []string{"JavaScript"}}
	java := &Profile{Skills: []string{"Java"}}
	c := Criteria{Technology: "java"}

	assert.True(t, c.Matches(js))
	assert.True(t, c.Matches(java))
}

func TestCriteria_Matches_NoSkills(t *testing.T) {
	p := &Profile{Name: "No Skills"}

	assert.True(t, Criteria{}.Matches(p))
	assert.False(t, Criteria{Technology: "go"}.Matches(p))
}
