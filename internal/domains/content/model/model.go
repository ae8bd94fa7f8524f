package model

// The four singleton content types. Each table is seeded with exactly one
// row at bootstrap and only ever mutated afterwards.

const (
	FieldID = "id"
)

const (
	HeroTableName  = "hero_content"
	HeroEntityName = "hero content"

	FieldBadgeText     = "badge_text"
	FieldTitleLine1    = "title_line1"
	FieldTitleLine2    = "title_line2"
	FieldSubtitleWord1 = "subtitle_word1"
	FieldSubtitleWord2 = "subtitle_word2"
	FieldSubtitleWord3 = "subtitle_word3"
	FieldDescription   = "description"
	FieldStatStudents  = "stat_students"
	FieldStatPrograms  = "stat_programs"
	FieldStatFaculty   = "stat_faculty"
)

type HeroContent struct {
	ID            int64  `db:"id"`
	BadgeText     string `db:"badge_text"`
	TitleLine1    string `db:"title_line1"`
	TitleLine2    string `db:"title_line2"`
	SubtitleWord1 string `db:"subtitle_word1"`
	SubtitleWord2 string `db:"subtitle_word2"`
	SubtitleWord3 string `db:"subtitle_word3"`
	Description   string `db:"description"`
	StatStudents  int    `db:"stat_students"`
	StatPrograms  int    `db:"stat_programs"`
	StatFaculty   int    `db:"stat_faculty"`
}

const (
	AboutTableName  = "about_content"
	AboutEntityName = "about content"

	FieldSectionTag   = "section_tag"
	FieldSectionTitle = "section_title"
	FieldLeadText     = "lead_text"
	FieldParagraph1   = "paragraph1"
	FieldParagraph2   = "paragraph2"
	FieldParagraph3   = "paragraph3"
)

type AboutContent struct {
	ID           int64  `db:"id"`
	SectionTag   string `db:"section_tag"`
	SectionTitle string `db:"section_title"`
	LeadText     string `db:"lead_text"`
	Paragraph1   string `db:"paragraph1"`
	Paragraph2   string `db:"paragraph2"`
	Paragraph3   string `db:"paragraph3"`
}

const (
	MissionVisionTableName  = "mission_vision"
	MissionVisionEntityName = "mission/vision"

	FieldMissionText = "mission_text"
	FieldVisionText  = "vision_text"
)

type MissionVision struct {
	ID          int64  `db:"id"`
	MissionText string `db:"mission_text"`
	VisionText  string `db:"vision_text"`
}

const (
	ContactTableName  = "contact_info"
	ContactEntityName = "contact info"

	FieldLocation = "location"
	FieldEmail    = "email"
	FieldPhone    = "phone"
)

type ContactInfo struct {
	ID       int64  `db:"id"`
	Location string `db:"location"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
}
