package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oztrk/teacherhub/internal/app/models"
	"github.com/oztrk/teacherhub/internal/app/models/dto"
	"github.com/oztrk/teacherhub/internal/app/services"
	"github.com/oztrk/teacherhub/internal/middleware"
)

// CourseController handles course-related requests. All routes except
// creation carry the owning teacher's id in the path.
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController.
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a new course under the teacher named in the payload
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.CreateCourse true "Course information"
// @Success 201 {object} dto.SuccessResponse "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var payload models.CreateCourse
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid course data"})
		return
	}

	if _, err := c.courseService.CreateCourse(ctx, payload); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "course created successfully"})
}

// GetCoursesForTeacher lists a teacher's courses
// @Summary List courses of a teacher
// @Description Retrieves all courses for a teacher; zero courses yields an empty list
// @Tags courses
// @Produce json
// @Param teacher_id path int true "Teacher ID"
// @Success 200 {array} models.Course "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{teacher_id} [get]
func (c *CourseController) GetCoursesForTeacher(ctx *gin.Context) {
	teacherID, ok := parseIDParam(ctx, "teacher_id")
	if !ok {
		return
	}

	courses, err := c.courseService.GetCoursesForTeacher(ctx, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID retrieves one course
// @Summary Get course details
// @Description Retrieves one course by its composite (teacher, course) key
// @Tags courses
// @Produce json
// @Param teacher_id path int true "Teacher ID"
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid path parameters"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{teacher_id}/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	teacherID, ok := parseIDParam(ctx, "teacher_id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, teacherID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// UpdateCourse applies a partial update
// @Summary Update course
// @Description Applies a partial update; absent fields keep their stored values
// @Tags courses
// @Accept json
// @Produce json
// @Param teacher_id path int true "Teacher ID"
// @Param id path int true "Course ID"
// @Param request body models.UpdateCourse true "Fields to update"
// @Success 200 {object} dto.SuccessResponse "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{teacher_id}/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	teacherID, ok := parseIDParam(ctx, "teacher_id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var payload models.UpdateCourse
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid course data"})
		return
	}

	confirmation, err := c.courseService.UpdateCourse(ctx, teacherID, courseID, payload)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: confirmation})
}

// DeleteCourse removes one course
// @Summary Delete course
// @Description Deletes one course by its composite (teacher, course) key
// @Tags courses
// @Produce json
// @Param teacher_id path int true "Teacher ID"
// @Param id path int true "Course ID"
// @Success 200 {object} dto.SuccessResponse "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid path parameters"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{teacher_id}/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	teacherID, ok := parseIDParam(ctx, "teacher_id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	confirmation, err := c.courseService.DeleteCourse(ctx, teacherID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: confirmation})
}
