package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oztrk/teacherhub/internal/app/models"
	"github.com/oztrk/teacherhub/internal/app/state"
	"github.com/oztrk/teacherhub/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubTeacherService returns canned results per operation.
type stubTeacherService struct {
	teacher  *models.Teacher
	teachers []models.Teacher
	message  string
	err      error
}

func (s *stubTeacherService) CreateTeacher(ctx context.Context, payload models.CreateTeacher) (*models.Teacher, error) {
	return s.teacher, s.err
}

func (s *stubTeacherService) GetAllTeachers(ctx context.Context) ([]models.Teacher, error) {
	return s.teachers, s.err
}

func (s *stubTeacherService) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.teacher, s.err
}

func (s *stubTeacherService) UpdateTeacher(ctx context.Context, id int64, payload models.UpdateTeacher) (string, error) {
	return s.message, s.err
}

func (s *stubTeacherService) DeleteTeacher(ctx context.Context, id int64) (string, error) {
	return s.message, s.err
}

type stubCourseService struct {
	course  *models.Course
	courses []models.Course
	message string
	err     error
}

func (s *stubCourseService) CreateCourse(ctx context.Context, payload models.CreateCourse) (*models.Course, error) {
	return s.course, s.err
}

func (s *stubCourseService) GetCoursesForTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	return s.courses, s.err
}

func (s *stubCourseService) GetCourseByID(ctx context.Context, teacherID, courseID int64) (*models.Course, error) {
	return s.course, s.err
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, teacherID, courseID int64, payload models.UpdateCourse) (string, error) {
	return s.message, s.err
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, teacherID, courseID int64) (string, error) {
	return s.message, s.err
}

func teacherRouter(svc *stubTeacherService) *gin.Engine {
	router := gin.New()
	c := NewTeacherController(svc)
	router.POST("/teachers", c.CreateTeacher)
	router.GET("/teachers", c.GetAllTeachers)
	router.GET("/teachers/:id", c.GetTeacherByID)
	router.PUT("/teachers/:id", c.UpdateTeacher)
	router.DELETE("/teachers/:id", c.DeleteTeacher)
	return router
}

func courseRouter(svc *stubCourseService) *gin.Engine {
	router := gin.New()
	c := NewCourseController(svc)
	router.POST("/courses", c.CreateCourse)
	router.GET("/courses/:teacher_id", c.GetCoursesForTeacher)
	router.GET("/courses/:teacher_id/:id", c.GetCourseByID)
	router.PUT("/courses/:teacher_id/:id", c.UpdateCourse)
	router.DELETE("/courses/:teacher_id/:id", c.DeleteCourse)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateTeacherReturnsCreated(t *testing.T) {
	svc := &stubTeacherService{teacher: &models.Teacher{ID: 1}}
	w := doJSON(t, teacherRouter(svc), http.MethodPost, "/teachers",
		`{"name":"A New Teacher","picture_url":"https://example/img.jpg","profile":"profile text"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "teacher created successfully")
}

func TestCreateTeacherMissingRequiredFieldIsBadRequest(t *testing.T) {
	svc := &stubTeacherService{}
	w := doJSON(t, teacherRouter(svc), http.MethodPost, "/teachers", `{"name":"only a name"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestGetAllTeachersEmptyTableMapsToNotFound(t *testing.T) {
	svc := &stubTeacherService{err: apperrors.NewNotFoundError("no teachers found")}
	w := doJSON(t, teacherRouter(svc), http.MethodGet, "/teachers", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"no teachers found"}`, w.Body.String())
}

func TestGetTeacherByIDReturnsRow(t *testing.T) {
	svc := &stubTeacherService{teacher: &models.Teacher{
		ID:         3,
		Name:       "A New Teacher",
		PictureURL: "https://example/img.jpg",
		Profile:    "profile text",
	}}
	w := doJSON(t, teacherRouter(svc), http.MethodGet, "/teachers/3", "")

	require.Equal(t, http.StatusOK, w.Code)

	var teacher models.Teacher
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teacher))
	assert.Equal(t, int64(3), teacher.ID)
	assert.Equal(t, "A New Teacher", teacher.Name)
}

func TestGetTeacherByIDMalformedParamIsBadRequest(t *testing.T) {
	svc := &stubTeacherService{}
	w := doJSON(t, teacherRouter(svc), http.MethodGet, "/teachers/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTeacherDBErrorMapsToInternal(t *testing.T) {
	svc := &stubTeacherService{err: apperrors.NewDBError("unable to update teacher")}
	w := doJSON(t, teacherRouter(svc), http.MethodPut, "/teachers/3", `{"name":"Renamed"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"unable to update teacher"}`, w.Body.String())
}

func TestDeleteTeacherMissingMapsToNotFound(t *testing.T) {
	svc := &stubTeacherService{err: apperrors.NewNotFoundError("teacher id not found")}
	w := doJSON(t, teacherRouter(svc), http.MethodDelete, "/teachers/9999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCoursesForTeacherEmptyListIsOK(t *testing.T) {
	svc := &stubCourseService{courses: []models.Course{}}
	w := doJSON(t, courseRouter(svc), http.MethodGet, "/courses/1", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetCourseByIDSerializesNullColumns(t *testing.T) {
	lang := "English"
	svc := &stubCourseService{course: &models.Course{
		ID:        2,
		TeacherID: 1,
		Name:      "Test course",
		Language:  &lang,
	}}
	w := doJSON(t, courseRouter(svc), http.MethodGet, "/courses/1/2", "")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Test course", body["name"])
	assert.Equal(t, "English", body["language"])
	// Null columns are present in the full row read, not omitted.
	require.Contains(t, body, "description")
	assert.Nil(t, body["description"])
}

func TestCreateCourseMissingNameIsBadRequest(t *testing.T) {
	svc := &stubCourseService{}
	w := doJSON(t, courseRouter(svc), http.MethodPost, "/courses", `{"teacher_id":1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCourseReturnsConfirmation(t *testing.T) {
	svc := &stubCourseService{message: "updated 1 record"}
	w := doJSON(t, courseRouter(svc), http.MethodPut, "/courses/1/2",
		`{"name":"Course name changed","language":"Chinese"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"updated 1 record"}`, w.Body.String())
}

func TestDeleteCourseMissingMapsToNotFound(t *testing.T) {
	svc := &stubCourseService{err: apperrors.NewNotFoundError("course id not found")}
	w := doJSON(t, courseRouter(svc), http.MethodDelete, "/courses/1/9999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"course id not found"}`, w.Body.String())
}

func TestHealthCheckCountsVisits(t *testing.T) {
	appState := state.New("I'm good. You've already asked me", nil)
	router := gin.New()
	router.GET("/health", NewHealthController(appState).HealthCheck)

	w := doJSON(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "asked me 1 times")

	w = doJSON(t, router, http.MethodGet, "/health", "")
	assert.Contains(t, w.Body.String(), "asked me 2 times")
}
