package models

// InternalMarks defines the internal assessment marks row for one student.
// One row per register number; saves upsert the measurable columns.
// Mark fields are pointers so unassessed components stay NULL rather than 0.
type InternalMarks struct {
	ID            int64    `json:"id,omitempty" db:"id"`
	StudentRegNo  string   `json:"student_reg_no" db:"student_reg_no"`
	Year          string   `json:"year" db:"year"`
	Section       string   `json:"section" db:"section"`
	Department    string   `json:"department" db:"department"`
	Cat1Marks     *float64 `json:"cat1_marks" db:"cat1_marks"`
	Cat2Marks     *float64 `json:"cat2_marks" db:"cat2_marks"`
	Sac1Marks     *float64 `json:"sac1_marks" db:"sac1_marks"`
	Sac2Marks     *float64 `json:"sac2_marks" db:"sac2_marks"`
	Sac3Marks     *float64 `json:"sac3_marks" db:"sac3_marks"`
	Sac4Marks     *float64 `json:"sac4_marks" db:"sac4_marks"`
	Sac5Marks     *float64 `json:"sac5_marks" db:"sac5_marks"`
	InternalTotal *float64 `json:"internal_total" db:"internal_total"`
}

// MarksRosterRow is a student joined with their marks row, if any.
type MarksRosterRow struct {
	StudentName    string         `json:"student_name"`
	RegisterNumber string         `json:"register_number"`
	Marks          *InternalMarks `json:"marks"`
}
