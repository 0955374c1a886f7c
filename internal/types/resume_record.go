// Package types provides type definitions for structured data used throughout the resume-intake system.
package types

import "strings"

// RawResumeRecord is one semi-structured record as produced by the extraction
// service. Every field is optional: the service makes no guarantees about
// presence or shape, so consumers must treat missing values as empty strings.
type RawResumeRecord struct {
	Name            string           `json:"name"`
	Mobile          string           `json:"mobile"`
	Email           string           `json:"email"`
	Graduation      Graduation       `json:"graduation"`
	WorkExperiences []WorkExperience `json:"work_experiences"`
}

// Graduation holds the educational qualification of a candidate
type Graduation struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
}

// Display collapses the graduation into a single display string of the form
// "<Degree> - <Institution>". When either side is empty the separator is
// dropped; when both are empty the result is the empty string.
func (g Graduation) Display() string {
	degree := strings.TrimSpace(g.Degree)
	institution := strings.TrimSpace(g.Institution)
	switch {
	case degree == "":
		return institution
	case institution == "":
		return degree
	default:
		return degree + " - " + institution
	}
}

// WorkExperience is a single employment stint as extracted from a resume.
// Duration is free text ("Jan 2019 - Present", "2020-2022") and is interpreted
// by the duration package.
type WorkExperience struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	Duration string `json:"duration"`
}
