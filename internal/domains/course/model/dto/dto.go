package dto

import (
	"net/http"

	"nihom/internal/domains/course/model"
	"nihom/shared"
)

// UpdateCourseRequest replaces every editable field of a course. The slug is
// assigned at seed time and immutable through this API.
type UpdateCourseRequest struct {
	Title            string `validate:"required"`
	ShortDescription string `validate:"required"`
	ImageURL         string `validate:"required"`
	IsActive         bool
	DisplayOrder     int
}

func (u *UpdateCourseRequest) FromForm(r *http.Request) (err error) {
	u.Title = r.FormValue(model.FieldTitle)
	u.ShortDescription = r.FormValue(model.FieldShortDescription)
	u.ImageURL = r.FormValue(model.FieldImageURL)

	if u.IsActive, err = shared.FormBool(r, model.FieldIsActive, true); err != nil {
		return err
	}

	if u.DisplayOrder, err = shared.FormInt(r, model.FieldDisplayOrder, 0); err != nil {
		return err
	}

	return nil
}

func (u *UpdateCourseRequest) ToFieldMap() map[string]any {
	return map[string]any{
		model.FieldTitle:            u.Title,
		model.FieldShortDescription: u.ShortDescription,
		model.FieldImageURL:         u.ImageURL,
		model.FieldIsActive:         u.IsActive,
		model.FieldDisplayOrder:     u.DisplayOrder,
	}
}

type CourseResponse struct {
	ID               int64  `json:"id"`
	Slug             string `json:"slug"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	ImageURL         string `json:"image_url"`
	IsActive         bool   `json:"is_active"`
	DisplayOrder     int    `json:"display_order"`
}

func (r *CourseResponse) FromModel(m model.Course) {
	r.ID = m.ID
	r.Slug = m.Slug
	r.Title = m.Title
	r.ShortDescription = m.ShortDescription
	r.ImageURL = m.ImageURL
	r.IsActive = m.IsActive
	r.DisplayOrder = m.DisplayOrder
}

func CourseResponsesFromModels(models []model.Course) []CourseResponse {
	responses := make([]CourseResponse, len(models))
	for i, m := range models {
		responses[i].FromModel(m)
	}

	return responses
}
