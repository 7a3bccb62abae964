package services

import (
	"context"
	"testing"

	"github.com/archiva/campusconnect/internal/app/models/dto"
)

// A batch where no entry carries a register number writes nothing and
// succeeds. The zero-value service proves the repository is never reached.
func TestMarksSaveBatchEmptyInputIsNoOp(t *testing.T) {
	svc := &MarksService{}

	req := dto.MarksSaveRequest{
		Year:       "2",
		Section:    "A",
		Department: "CSE",
	}
	if err := svc.SaveBatch(context.Background(), req); err != nil {
		t.Errorf("empty marks batch: unexpected error %v", err)
	}

	req.MarksData = []dto.StudentMarksEntry{{RegNo: "  "}, {RegNo: ""}}
	if err := svc.SaveBatch(context.Background(), req); err != nil {
		t.Errorf("all-skipped marks batch: unexpected error %v", err)
	}
}
