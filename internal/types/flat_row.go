package types

// FlatRow is one tabular row produced by flattening a RawResumeRecord: one row
// per work experience, or a single placeholder row when the record carries no
// experiences. Identity fields are copied verbatim onto every row the record
// produces.
type FlatRow struct {
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
	Graduation string `json:"graduation"`

	Company  string `json:"company"`
	Role     string `json:"role"`
	Duration string `json:"duration"`
}
