package flatten

import "github.com/jonathan/resume-intake/internal/types"

// Flatten produces one row per work experience, each inheriting the record's
// identity fields. A record with no experiences yields exactly one row with
// empty Company, Role and Duration so the candidate still appears in the
// output. Flatten is total: it never fails, whatever the record's content.
func Flatten(record *types.RawResumeRecord) []types.FlatRow {
	if record == nil {
		return nil
	}

	base := types.FlatRow{
		Name:       record.Name,
		Mobile:     record.Mobile,
		Email:      record.Email,
		Graduation: record.Graduation.Display(),
	}

	if len(record.WorkExperiences) == 0 {
		return []types.FlatRow{base}
	}

	rows := make([]types.FlatRow, 0, len(record.WorkExperiences))
	for _, exp := range record.WorkExperiences {
		row := base
		row.Company = exp.Company
		row.Role = exp.Role
		row.Duration = exp.Duration
		rows = append(rows, row)
	}
	return rows
}
