package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository             *UserRepository
	StaffRepository            *StaffRepository
	StudentRepository          *StudentRepository
	TimetableRepository        *TimetableRepository
	AttendanceRepository       *AttendanceRepository
	MarksRepository            *MarksRepository
	CalendarRepository         *CalendarRepository
	LessonPlanRepository       *LessonPlanRepository
	PushSubscriptionRepository *PushSubscriptionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:             NewUserRepository(db),
		StaffRepository:            NewStaffRepository(db),
		StudentRepository:          NewStudentRepository(db),
		TimetableRepository:        NewTimetableRepository(db),
		AttendanceRepository:       NewAttendanceRepository(db),
		MarksRepository:            NewMarksRepository(db),
		CalendarRepository:         NewCalendarRepository(db),
		LessonPlanRepository:       NewLessonPlanRepository(db),
		PushSubscriptionRepository: NewPushSubscriptionRepository(db),
	}
}
