package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraduationDisplay_BothParts(t *testing.T) {
	g := Graduation{Degree: "B.Tech Computer Science", Institution: "IIT Delhi"}
	assert.Equal(t, "B.Tech Computer Science - IIT Delhi", g.Display())
}

func TestGraduationDisplay_DegreeOnly(t *testing.T) {
	g := Graduation{Degree: "MBA"}
	assert.Equal(t, "MBA", g.Display())
}

func TestGraduationDisplay_InstitutionOnly(t *testing.T) {
	g := Graduation{Institution: "Stanford University"}
	assert.Equal(t, "Stanford University", g.Display())
}

func TestGraduationDisplay_Empty(t *testing.T) {
	assert.Equal(t, "", Graduation{}.Display())
}

func TestGraduationDisplay_TrimsWhitespace(t *testing.T) {
	g := Graduation{Degree: "  BSc ", Institution: " MIT  "}
	assert.Equal(t, "BSc - MIT", g.Display())
}
