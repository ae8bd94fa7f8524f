package model

const (
	TableName  = "gallery_images"
	EntityName = "gallery_image"

	FieldID           = "id"
	FieldImageURL     = "image_url"
	FieldAltText      = "alt_text"
	FieldCaption      = "caption"
	FieldIsActive     = "is_active"
	FieldDisplayOrder = "display_order"
)

type GalleryImage struct {
	ID           int64  `db:"id"`
	ImageURL     string `db:"image_url"`
	AltText      string `db:"alt_text"`
	Caption      string `db:"caption"`
	IsActive     bool   `db:"is_active"`
	DisplayOrder int    `db:"display_order"`
}
