package models

// Student defines the student model based on the 'students' table.
// register_number is the stable business key attendance and marks rows hang
// off; it must never change once such rows exist.
type Student struct {
	ID             int64  `json:"id" db:"id"`
	StudentName    string `json:"student_name" db:"student_name"`
	RegisterNumber string `json:"register_number" db:"register_number"`
	RollNumber     string `json:"roll_number" db:"roll_number"`
	YearOfStudy    string `json:"year_of_study" db:"year_of_study"` // display label, e.g. "2nd Year"
	Department     string `json:"department" db:"department"`
	Section        string `json:"section" db:"section"`
	Semester       string `json:"semester" db:"semester"`
	FromYear       string `json:"from_year" db:"from_year"`
	ToYear         string `json:"to_year" db:"to_year"`
}

// RosterEntry is the slim student projection used by class rosters.
type RosterEntry struct {
	StudentName    string `json:"student_name" db:"student_name"`
	RegisterNumber string `json:"register_number" db:"register_number"`
}
