package dto

import (
	"net/http"

	"nihom/internal/domains/content/model"
	"nihom/shared"
)

// Every update payload is a full replacement of the singleton row: each
// declared field is required unless it has an explicit default.

type UpdateHeroRequest struct {
	BadgeText     string `validate:"required"`
	TitleLine1    string `validate:"required"`
	TitleLine2    string `validate:"required"`
	SubtitleWord1 string `validate:"required"`
	SubtitleWord2 string `validate:"required"`
	SubtitleWord3 string `validate:"required"`
	Description   string `validate:"required"`
	StatStudents  int
	StatPrograms  int
	StatFaculty   int
}

func (u *UpdateHeroRequest) FromForm(r *http.Request) (err error) {
	u.BadgeText = r.FormValue(model.FieldBadgeText)
	u.TitleLine1 = r.FormValue(model.FieldTitleLine1)
	u.TitleLine2 = r.FormValue(model.FieldTitleLine2)
	u.SubtitleWord1 = r.FormValue(model.FieldSubtitleWord1)
	u.SubtitleWord2 = r.FormValue(model.FieldSubtitleWord2)
	u.SubtitleWord3 = r.FormValue(model.FieldSubtitleWord3)
	u.Description = r.FormValue(model.FieldDescription)

	if u.StatStudents, err = shared.FormRequiredInt(r, model.FieldStatStudents); err != nil {
		return err
	}

	if u.StatPrograms, err = shared.FormRequiredInt(r, model.FieldStatPrograms); err != nil {
		return err
	}

	if u.StatFaculty, err = shared.FormRequiredInt(r, model.FieldStatFaculty); err != nil {
		return err
	}

	return nil
}

func (u *UpdateHeroRequest) ToFieldMap() map[string]any {
	return map[string]any{
		model.FieldBadgeText:     u.BadgeText,
		model.FieldTitleLine1:    u.TitleLine1,
		model.FieldTitleLine2:    u.TitleLine2,
		model.FieldSubtitleWord1: u.SubtitleWord1,
		model.FieldSubtitleWord2: u.SubtitleWord2,
		model.FieldSubtitleWord3: u.SubtitleWord3,
		model.FieldDescription:   u.Description,
		model.FieldStatStudents:  u.StatStudents,
		model.FieldStatPrograms:  u.StatPrograms,
		model.FieldStatFaculty:   u.StatFaculty,
	}
}

type HeroResponse struct {
	ID            int64  `json:"id"`
	BadgeText     string `json:"badge_text"`
	TitleLine1    string `json:"title_line1"`
	TitleLine2    string `json:"title_line2"`
	SubtitleWord1 string `json:"subtitle_word1"`
	SubtitleWord2 string `json:"subtitle_word2"`
	SubtitleWord3 string `json:"subtitle_word3"`
	Description   string `json:"description"`
	StatStudents  int    `json:"stat_students"`
	StatPrograms  int    `json:"stat_programs"`
	StatFaculty   int    `json:"stat_faculty"`
}

func (r *HeroResponse) FromModel(m model.HeroContent) {
	r.ID = m.ID
	r.BadgeText = m.BadgeText
	r.TitleLine1 = m.TitleLine1
	r.TitleLine2 = m.TitleLine2
	r.SubtitleWord1 = m.SubtitleWord1
	r.SubtitleWord2 = m.SubtitleWord2
	r.SubtitleWord3 = m.SubtitleWord3
	r.Description = m.Description
	r.StatStudents = m.StatStudents
	r.StatPrograms = m.StatPrograms
	r.StatFaculty = m.StatFaculty
}

type UpdateAboutRequest struct {
	SectionTag   string `validate:"required"`
	SectionTitle string `validate:"required"`
	LeadText     string `validate:"required"`
	Paragraph1   string `validate:"required"`
	Paragraph2   string `validate:"required"`
	Paragraph3   string `validate:"required"`
}

func (u *UpdateAboutRequest) FromForm(r *http.Request) error {
	u.SectionTag = r.FormValue(model.FieldSectionTag)
	u.SectionTitle = r.FormValue(model.FieldSectionTitle)
	u.LeadText = r.FormValue(model.FieldLeadText)
	u.Paragraph1 = r.FormValue(model.FieldParagraph1)
	u.Paragraph2 = r.FormValue(model.FieldParagraph2)
	u.Paragraph3 = r.FormValue(model.FieldParagraph3)

	return nil
}

func (u *UpdateAboutRequest) ToFieldMap() map[string]any {
	return map[string]any{
		model.FieldSectionTag:   u.SectionTag,
		model.FieldSectionTitle: u.SectionTitle,
		model.FieldLeadText:     u.LeadText,
		model.FieldParagraph1:   u.Paragraph1,
		model.FieldParagraph2:   u.Paragraph2,
		model.FieldParagraph3:   u.Paragraph3,
	}
}

type AboutResponse struct {
	ID           int64  `json:"id"`
	SectionTag   string `json:"section_tag"`
	SectionTitle string `json:"section_title"`
	LeadText     string `json:"lead_text"`
	Paragraph1   string `json:"paragraph1"`
	Paragraph2   string `json:"paragraph2"`
	Paragraph3   string `json:"paragraph3"`
}

func (r *AboutResponse) FromModel(m model.AboutContent) {
	r.ID = m.ID
	r.SectionTag = m.SectionTag
	r.SectionTitle = m.SectionTitle
	r.LeadText = m.LeadText
	r.Paragraph1 = m.Paragraph1
	r.Paragraph2 = m.Paragraph2
	r.Paragraph3 = m.Paragraph3
}

type UpdateMissionVisionRequest struct {
	MissionText string `validate:"required"`
	VisionText  string `validate:"required"`
}

func (u *UpdateMissionVisionRequest) FromForm(r *http.Request) error {
	u.MissionText = r.FormValue(model.FieldMissionText)
	u.VisionText = r.FormValue(model.FieldVisionText)

	return nil
}

func (u *UpdateMissionVisionRequest) ToFieldMap() map[string]any {
	return map[string]any{
		model.FieldMissionText: u.MissionText,
		model.FieldVisionText:  u.VisionText,
	}
}

type MissionVisionResponse struct {
	ID          int64  `json:"id"`
	MissionText string `json:"mission_text"`
	VisionText  string `json:"vision_text"`
}

func (r *MissionVisionResponse) FromModel(m model.MissionVision) {
	r.ID = m.ID
	r.MissionText = m.MissionText
	r.VisionText = m.VisionText
}

type UpdateContactRequest struct {
	Location string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
}

func (u *UpdateContactRequest) FromForm(r *http.Request) error {
	u.Location = r.FormValue(model.FieldLocation)
	u.Email = r.FormValue(model.FieldEmail)
	u.Phone = r.FormValue(model.FieldPhone)

	return nil
}

func (u *UpdateContactRequest) ToFieldMap() map[string]any {
	return map[string]any{
		model.FieldLocation: u.Location,
		model.FieldEmail:    u.Email,
		model.FieldPhone:    u.Phone,
	}
}

type ContactResponse struct {
	ID       int64  `json:"id"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (r *ContactResponse) FromModel(m model.ContactInfo) {
	r.ID = m.ID
	r.Location = m.Location
	r.Email = m.Email
	r.Phone = m.Phone
}
