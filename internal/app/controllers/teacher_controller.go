package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oztrk/teacherhub/internal/app/models"
	"github.com/oztrk/teacherhub/internal/app/models/dto"
	"github.com/oztrk/teacherhub/internal/app/services"
	"github.com/oztrk/teacherhub/internal/middleware"
)

// TeacherController handles teacher-related requests.
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController.
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// parseIDParam extracts a positive integer path parameter. A malformed
// value is reported as invalid input before the service is invoked.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: name + " must be a valid number"})
		return 0, false
	}
	return id, true
}

// CreateTeacher handles teacher creation
// @Summary Create a new teacher
// @Description Creates a new teacher with the provided information
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body models.CreateTeacher true "Teacher information"
// @Success 201 {object} dto.SuccessResponse "Teacher created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var payload models.CreateTeacher
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid teacher data"})
		return
	}

	if _, err := c.teacherService.CreateTeacher(ctx, payload); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "teacher created successfully"})
}

// GetAllTeachers lists all teachers
// @Summary Get all teachers
// @Description Retrieves all teachers; an empty table is reported as not found
// @Tags teachers
// @Produce json
// @Success 200 {array} models.Teacher "Teachers retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "No teachers found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teachers)
}

// GetTeacherByID retrieves a teacher by id
// @Summary Get teacher by ID
// @Description Retrieves a specific teacher by its ID
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} models.Teacher "Teacher retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// UpdateTeacher applies a partial update
// @Summary Update teacher
// @Description Applies a partial update; absent fields keep their stored values
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param request body models.UpdateTeacher true "Fields to update"
// @Success 200 {object} dto.SuccessResponse "Teacher updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var payload models.UpdateTeacher
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid teacher data"})
		return
	}

	confirmation, err := c.teacherService.UpdateTeacher(ctx, id, payload)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: confirmation})
}

// DeleteTeacher removes a teacher
// @Summary Delete teacher
// @Description Deletes a teacher by its ID
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.SuccessResponse "Teacher deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	confirmation, err := c.teacherService.DeleteTeacher(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: confirmation})
}
