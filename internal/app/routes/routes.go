package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oztrk/teacherhub/internal/app/controllers"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	teacherController *controllers.TeacherController,
	courseController *controllers.CourseController,
) {
	router.GET("/health", healthController.HealthCheck)

	teachers := router.Group("/teachers")
	{
		teachers.POST("", teacherController.CreateTeacher)
		teachers.GET("", teacherController.GetAllTeachers)
		teachers.GET("/:id", teacherController.GetTeacherByID)
		teachers.PUT("/:id", teacherController.UpdateTeacher)
		teachers.DELETE("/:id", teacherController.DeleteTeacher)
	}

	courses := router.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("/:teacher_id", courseController.GetCoursesForTeacher)
		courses.GET("/:teacher_id/:id", courseController.GetCourseByID)
		courses.PUT("/:teacher_id/:id", courseController.UpdateCourse)
		courses.DELETE("/:teacher_id/:id", courseController.DeleteCourse)
	}
}
