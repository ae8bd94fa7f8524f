package dto

import (
	"net/http"

	"nihom/internal/domains/gallery/model"
	"nihom/shared"
)

// CreateGalleryImageRequest and UpdateGalleryImageRequest carry the same
// fields; the caption may stay empty.
type CreateGalleryImageRequest struct {
	ImageURL     string `validate:"required"`
	AltText      string `validate:"required"`
	Caption      string
	IsActive     bool
	DisplayOrder int
}

func (c *CreateGalleryImageRequest) FromForm(r *http.Request) (err error) {
	c.ImageURL = r.FormValue(model.FieldImageURL)
	c.AltText = r.FormValue(model.FieldAltText)
	c.Caption = r.FormValue(model.FieldCaption)

	if c.IsActive, err = shared.FormBool(r, model.FieldIsActive, true); err != nil {
		return err
	}

	if c.DisplayOrder, err = shared.FormInt(r, model.FieldDisplayOrder, 0); err != nil {
		return err
	}

	return nil
}

func (c *CreateGalleryImageRequest) ToModel() model.GalleryImage {
	return model.GalleryImage{
		ImageURL:     c.ImageURL,
		AltText:      c.AltText,
		Caption:      c.Caption,
		IsActive:     c.IsActive,
		DisplayOrder: c.DisplayOrder,
	}
}

type UpdateGalleryImageRequest struct {
	ImageURL     string `validate:"required"`
	AltText      string `validate:"required"`
	Caption      string
	IsActive     bool
	DisplayOrder int
}

func (u *UpdateGalleryImageRequest) FromForm(r *http.Request) (err error) {
	u.ImageURL = r.FormValue(model.FieldImageURL)
	u.AltText = r.FormValue(model.FieldAltText)
	u.Caption = r.FormValue(model.FieldCaption)

	if u.IsActive, err = shared.FormBool(r, model.FieldIsActive, true); err != nil {
		return err
	}

	if u.DisplayOrder, err = shared.FormInt(r, model.FieldDisplayOrder, 0); err != nil {
		return err
	}

	return nil
}

func (u *UpdateGalleryImageRequest) ToFieldMap() map[string]any {
	return map[string]any{
		model.FieldImageURL:     u.ImageURL,
		model.FieldAltText:      u.AltText,
		model.FieldCaption:      u.Caption,
		model.FieldIsActive:     u.IsActive,
		model.FieldDisplayOrder: u.DisplayOrder,
	}
}

type GalleryImageResponse struct {
	ID           int64  `json:"id"`
	ImageURL     string `json:"image_url"`
	AltText      string `json:"alt_text"`
	Caption      string `json:"caption"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

func (r *GalleryImageResponse) FromModel(m model.GalleryImage) {
	r.ID = m.ID
	r.ImageURL = m.ImageURL
	r.AltText = m.AltText
	r.Caption = m.Caption
	r.IsActive = m.IsActive
	r.DisplayOrder = m.DisplayOrder
}

func GalleryImageResponsesFromModels(models []model.GalleryImage) []GalleryImageResponse {
	responses := make([]GalleryImageResponse, len(models))
	for i, m := range models {
		responses[i].FromModel(m)
	}

	return responses
}

// CreatedResponse confirms a gallery insert and reports the assigned id.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
