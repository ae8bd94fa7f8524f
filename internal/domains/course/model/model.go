package model

const (
	TableName  = "courses"
	EntityName = "course"

	FieldID               = "id"
	FieldSlug             = "slug"
	FieldTitle            = "title"
	FieldShortDescription = "short_description"
	FieldImageURL         = "image_url"
	FieldIsActive         = "is_active"
	FieldDisplayOrder     = "display_order"
)

type Course struct {
	ID               int64  `db:"id"`
	Slug             string `db:"slug"`
	Title            string `db:"title"`
	ShortDescription string `db:"short_description"`
	ImageURL         string `db:"image_url"`
	IsActive         bool   `db:"is_active"`
	DisplayOrder     int    `db:"display_order"`
}
