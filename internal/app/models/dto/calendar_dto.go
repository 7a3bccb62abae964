package dto

import (
	"bytes"
	"fmt"

	"github.com/archiva/campusconnect/internal/app/models"
)

// WorkingDayFlag accepts the working-day marker in any of the shapes clients
// send it: true/false, 1/0, or "1"/"0".
type WorkingDayFlag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *WorkingDayFlag) UnmarshalJSON(data []byte) error {
	switch string(bytes.Trim(data, `"`)) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	default:
		return fmt.Errorf("invalid working-day flag: %s", data)
	}
	return nil
}

// CalendarImportEntry is one entry of a bulk calendar import. Entries with a
// missing date, flag, or activity are skipped, not rejected.
type CalendarImportEntry struct {
	Date         string          `json:"date"`
	IsWorkingDay *WorkingDayFlag `json:"is_working_day"`
	Activity     string          `json:"activity"`
}

// CalendarUpdateRequest is the single-entry upsert body.
type CalendarUpdateRequest struct {
	CalendarDate        string          `json:"calendar_date"`
	IsWorkingDay        *WorkingDayFlag `json:"is_working_day"`
	ActivityDescription string          `json:"activity_description"`
}

// CalendarMonthResponse is the GET /api/admin/calendar payload.
type CalendarMonthResponse struct {
	Envelope
	Data []models.CalendarDay `json:"data"`
}

// CalendarDayResponse is the GET /api/calendar/date/:date payload. Absent
// rows are synthesized as default working days.
type CalendarDayResponse struct {
	Envelope
	Data models.CalendarDay `json:"data"`
}
