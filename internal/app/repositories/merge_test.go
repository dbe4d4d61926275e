package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oztrk/teacherhub/internal/app/models"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

func TestMergeTeacherAllAbsentKeepsStoredValues(t *testing.T) {
	current := models.Teacher{
		ID:         3,
		Name:       "A New Teacher",
		PictureURL: "https://example/img.jpg",
		Profile:    "profile text",
	}

	merged := mergeTeacher(current, models.UpdateTeacher{})

	assert.Equal(t, current, merged)
}

func TestMergeTeacherReplacesOnlyPresentFields(t *testing.T) {
	current := models.Teacher{
		ID:         3,
		Name:       "A New Teacher",
		PictureURL: "https://example/img.jpg",
		Profile:    "profile text",
	}

	merged := mergeTeacher(current, models.UpdateTeacher{
		Name: strPtr("Renamed Teacher"),
	})

	assert.Equal(t, "Renamed Teacher", merged.Name)
	assert.Equal(t, current.PictureURL, merged.PictureURL)
	assert.Equal(t, current.Profile, merged.Profile)
	assert.Equal(t, current.ID, merged.ID)
}

func TestMergeCourseSingleFieldLeavesOthersStored(t *testing.T) {
	created := time.Date(2025, 7, 12, 10, 15, 0, 0, time.UTC)
	current := models.Course{
		ID:        1,
		TeacherID: 1,
		Name:      "Test course",
		Time:      timePtr(created),
		Language:  strPtr("English"),
		Level:     strPtr("Beginner"),
	}

	values := mergeCourse(current, models.UpdateCourse{
		Name:     strPtr("Course name changed"),
		Language: strPtr("Chinese"),
	})

	assert.Equal(t, "Course name changed", values.Name)
	assert.Equal(t, "Chinese", values.Language)
	assert.Equal(t, created, values.Time)
	assert.Equal(t, "Beginner", values.Level)
}

func TestMergeCourseNullStoredColumnsFallToTypeDefaults(t *testing.T) {
	// description/format/structure/duration/price are null at rest and
	// absent from the payload: the rewrite uses type defaults, never null.
	current := models.Course{
		ID:        2,
		TeacherID: 1,
		Name:      "Test course",
	}

	values := mergeCourse(current, models.UpdateCourse{})

	assert.Equal(t, "Test course", values.Name)
	assert.Equal(t, "", values.Description)
	assert.Equal(t, "", values.Format)
	assert.Equal(t, "", values.Structure)
	assert.Equal(t, "", values.Duration)
	assert.Equal(t, "", values.Language)
	assert.Equal(t, "", values.Level)
	assert.Equal(t, 0, values.Price)
	assert.True(t, values.Time.IsZero())
}

func TestMergeCoursePresentFieldsWinOverStored(t *testing.T) {
	current := models.Course{
		ID:        2,
		TeacherID: 1,
		Name:      "Test course",
		Price:     intPtr(100),
	}

	newTime := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	values := mergeCourse(current, models.UpdateCourse{
		Time:  timePtr(newTime),
		Price: intPtr(250),
	})

	assert.Equal(t, newTime, values.Time)
	assert.Equal(t, 250, values.Price)
	assert.Equal(t, "Test course", values.Name)
}
