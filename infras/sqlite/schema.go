package sqlite

// Schema DDL for the seven content tables. The singleton tables (hero,
// about, mission/vision, contact) hold exactly one row after seeding.
const (
	createHeroContent = `CREATE TABLE IF NOT EXISTS hero_content (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    badge_text TEXT NOT NULL DEFAULT '',
    title_line1 TEXT NOT NULL DEFAULT '',
    title_line2 TEXT NOT NULL DEFAULT '',
    subtitle_word1 TEXT NOT NULL DEFAULT '',
    subtitle_word2 TEXT NOT NULL DEFAULT '',
    subtitle_word3 TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    stat_students INTEGER NOT NULL DEFAULT 0,
    stat_programs INTEGER NOT NULL DEFAULT 0,
    stat_faculty INTEGER NOT NULL DEFAULT 0
);`

	createAboutContent = `CREATE TABLE IF NOT EXISTS about_content (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    section_tag TEXT NOT NULL DEFAULT '',
    section_title TEXT NOT NULL DEFAULT '',
    lead_text TEXT NOT NULL DEFAULT '',
    paragraph1 TEXT NOT NULL DEFAULT '',
    paragraph2 TEXT NOT NULL DEFAULT '',
    paragraph3 TEXT NOT NULL DEFAULT ''
);`

	createMissionVision = `CREATE TABLE IF NOT EXISTS mission_vision (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    mission_text TEXT NOT NULL DEFAULT '',
    vision_text TEXT NOT NULL DEFAULT ''
);`

	createCourses = `CREATE TABLE IF NOT EXISTS courses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL DEFAULT '',
    short_description TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT '',
    is_active INTEGER NOT NULL DEFAULT 1,
    display_order INTEGER NOT NULL DEFAULT 0
);`

	createGalleryImages = `CREATE TABLE IF NOT EXISTS gallery_images (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    image_url TEXT NOT NULL DEFAULT '',
    alt_text TEXT NOT NULL DEFAULT '',
    caption TEXT NOT NULL DEFAULT '',
    is_active INTEGER NOT NULL DEFAULT 1,
    display_order INTEGER NOT NULL DEFAULT 0
);`

	createContactInfo = `CREATE TABLE IF NOT EXISTS contact_info (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    location TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT ''
);`

	createAdminUsers = `CREATE TABLE IF NOT EXISTS admin_users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    email TEXT NOT NULL DEFAULT ''
);`
)

var schemaDDL = []string{
	createHeroContent,
	createAboutContent,
	createMissionVision,
	createCourses,
	createGalleryImages,
	createContactInfo,
	createAdminUsers,
}
