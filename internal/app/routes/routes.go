package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/archiva/campusconnect/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	staffController *controllers.StaffController,
	studentController *controllers.StudentController,
	timetableController *controllers.TimetableController,
	attendanceController *controllers.AttendanceController,
	marksController *controllers.MarksController,
	calendarController *controllers.CalendarController,
	lessonPlanController *controllers.LessonPlanController,
	pushController *controllers.PushController,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.POST("/login", authController.Login)

	api := router.Group("/api")

	// Profile routes
	api.GET("/profile", authController.GetProfile)
	api.POST("/profile/picture", authController.UpdateProfilePicture)
	api.PATCH("/profile/password", authController.UpdatePassword)

	// Staff-facing routes
	staff := api.Group("/staff")
	{
		staff.GET("/timetables/today", timetableController.GetToday)
		staff.GET("/timetables/:staffId", timetableController.GetByStaffID)
		staff.GET("/department/:department", staffController.GetByDepartment)
		staff.GET("/details/:staffId", staffController.GetDetails)
		staff.GET("/my-classes/:email", timetableController.GetMyClasses)
		staff.GET("/my-courses/:email", timetableController.GetMyCourses)
	}

	// Department head routes
	hod := api.Group("/hod")
	{
		hod.GET("/classes/:department", timetableController.GetDepartmentClasses)
		hod.GET("/attendance/by-date-range/:department/:year/:section", attendanceController.GetReport)
		hod.GET("/attendance/:department/:year/:section", attendanceController.GetRecent)
	}

	// Class rosters and batch saves
	api.GET("/students/:department/:year/:section", studentController.GetRoster)
	api.GET("/marks/:department/:year/:section", marksController.GetRoster)
	api.POST("/marks/save", marksController.Save)
	api.POST("/attendance/save", attendanceController.Save)

	// Lesson plan files
	lessonPlans := api.Group("/lesson-plans")
	{
		lessonPlans.POST("/upload", lessonPlanController.Upload)
		lessonPlans.GET("/:course_code", lessonPlanController.List)
		lessonPlans.DELETE("/delete/:file_id", lessonPlanController.Delete)
	}

	// Calendar lookups available to all clients
	api.GET("/calendar/date/:date", calendarController.GetDay)

	// Push notifications
	api.POST("/save-subscription", pushController.SaveSubscription)
	api.POST("/send-notification", pushController.SendNotification)

	// Admin routes
	admin := api.Group("/admin")
	{
		admin.GET("/staff-list", staffController.ListBasic)

		admin.GET("/staff", staffController.List)
		admin.GET("/staff/:id", staffController.GetByID)
		admin.POST("/staff", staffController.Create)
		admin.PUT("/staff/:id", staffController.Update)
		admin.DELETE("/staff/:id", staffController.Delete)

		admin.GET("/students", studentController.List)
		admin.GET("/students/class/:year/:section", studentController.ListByClass)
		admin.GET("/students/:id", studentController.GetByID)
		admin.POST("/students", studentController.Create)
		admin.PUT("/students/:id", studentController.Update)
		admin.DELETE("/students/:id", studentController.Delete)

		admin.GET("/timetables/:staff_email", timetableController.GetByStaffEmail)
		admin.POST("/timetables", timetableController.Create)
		admin.PUT("/timetables/:id", timetableController.Update)
		admin.DELETE("/timetables/:id", timetableController.Delete)

		admin.GET("/calendar", calendarController.GetMonth)
		admin.POST("/calendar/update", calendarController.Update)
		admin.POST("/calendar/bulk-import", calendarController.BulkImport)
	}
}
