package sqlite

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"nihom/config"
	"nihom/shared/password"
)

type seedCourse struct {
	slug         string
	title        string
	description  string
	imageURL     string
	displayOrder int
}

type seedGalleryImage struct {
	imageURL     string
	altText      string
	displayOrder int
}

var seedCourses = []seedCourse{
	{
		slug:         "bakery-pastry",
		title:        "Bakery and Pastry Production",
		description:  "Master the art of baking and pastry making with hands-on training in modern techniques and traditional methods.",
		imageURL:     "Nihom Web_extracted/images/bakery-pastry-production.jpg",
		displayOrder: 1,
	},
	{
		slug:         "food-beverage-production",
		title:        "Food and Beverage Production",
		description:  "Learn professional cooking techniques, menu planning, and kitchen management from expert chefs.",
		imageURL:     "Nihom Web_extracted/images/food-beverage-production.jpg",
		displayOrder: 2,
	},
	{
		slug:         "food-beverage-service",
		title:        "Food and Beverage Service",
		description:  "Develop excellence in service management, customer relations, and hospitality operations.",
		imageURL:     "Nihom Web_extracted/images/food-beverage-service.jpg",
		displayOrder: 3,
	},
}

var seedGallery = []seedGalleryImage{
	{imageURL: "Various Photos_extracted/images/gallery-1.jpg", altText: "Bakery and Pastry Production - NIHOM", displayOrder: 1},
	{imageURL: "Various Photos_extracted/images/gallery-2.jpg", altText: "Bakery and Pastry Training - NIHOM", displayOrder: 2},
	{imageURL: "Various Photos_extracted/images/gallery-3.jpg", altText: "Pastry Arts - NIHOM", displayOrder: 3},
	{imageURL: "Various Photos_extracted/images/gallery-4.jpg", altText: "Food and Beverage Production - NIHOM", displayOrder: 4},
	{imageURL: "Various Photos_extracted/images/gallery-5.jpg", altText: "Culinary Training - NIHOM", displayOrder: 5},
	{imageURL: "Various Photos_extracted/images/gallery-6.jpg", altText: "Food and Beverage Service - NIHOM", displayOrder: 6},
}

// EnsureSeedData populates the store on first run: one admin identity plus
// one default row per singleton table and the initial course and gallery
// lists. The check and every insert run in one transaction, so a crash
// mid-seed leaves an empty store that reseeds on the next start. A nonempty
// admin table means the store is already initialized and nothing happens.
func (c *Connection) EnsureSeedData(cfg *config.Config) error {
	var admins int
	if err := c.DB.Get(&admins, "SELECT COUNT(id) FROM admin_users"); err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}

	if admins > 0 {
		return nil
	}

	// The bootstrap credential comes from configuration; the hash is
	// computed here so no password hash is ever checked into the source.
	hash, err := password.Hash(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	tx, err := c.DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(
		"INSERT INTO admin_users (username, password, email) VALUES (?, ?, ?)",
		cfg.Admin.Username, hash, cfg.Admin.Email,
	); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO hero_content
		    (badge_text, title_line1, title_line2, subtitle_word1, subtitle_word2, subtitle_word3, description, stat_students, stat_programs, stat_faculty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		"Since 2020 | Bangladesh Navy",
		"Navy Institute of",
		"Hospitality Management",
		"Excellence",
		"in Culinary Arts",
		"& Hospitality Education",
		"Developing skilled human resources in culinary and hospitality management, adhering to global standards",
		500, 3, 50,
	); err != nil {
		return fmt.Errorf("failed to seed hero content: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO about_content (section_tag, section_title, lead_text, paragraph1, paragraph2, paragraph3)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"About Us",
		"Navy Institute of Hospitality Management",
		"Navy Institute of Hospitality Management (NIHOM) is a renowned organization run under the supervision of Bangladesh Navy. It is located at Labonchora, Khulna.",
		"As an independent institution with its own Board of Governors, NIHOM is dedicated to provide exceptional education and training in the field of hospitality management. It is situated at the campus of School of Logistics and Management (SOLAM) of Bangladesh Navy.",
		"At Navy Institute of Hospitality Management, we offer a range of comprehensive programs specializing in areas such as Bakery and Pastry Production, Food and Beverage Production and Food and Beverage Service. Our institute boasts state-of-the-art equipment and furniture, providing our students with a hands-on learning experience in a modern and conducive environment.",
		"We take pride in our team of highly skilled teachers, trainers, chefs, and demonstrators who work tirelessly to ensure our students to receive the highest quality education. Their expertise and commitment play a crucial role in shaping the future professionals of the culinary and hospitality industry.",
	); err != nil {
		return fmt.Errorf("failed to seed about content: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO mission_vision (mission_text, vision_text) VALUES (?, ?)",
		"The mission of Navy Institute of Hospitality Management (NIHOM) is to preserve and elevate the culinary arts in the form of practical and theoretical training. Through our various courses like food and beverage production, bakery and pastry production, food and beverage service we aim to inspire the students, make them skilled and confident in the culinary and service profession.",
		"Our vision of Navy Institute of Hospitality Management (NIHOM) extends beyond educating and training students to achieve professional excellence in the Hospitality Industry. We aspire to shape the individuals as qualified for future through unlocking true potential of them and nurturing their individual growth.",
	); err != nil {
		return fmt.Errorf("failed to seed mission/vision: %w", err)
	}

	for _, course := range seedCourses {
		if _, err := tx.Exec(
			`INSERT INTO courses (slug, title, short_description, image_url, is_active, display_order)
			 VALUES (?, ?, ?, ?, 1, ?)`,
			course.slug, course.title, course.description, course.imageURL, course.displayOrder,
		); err != nil {
			return fmt.Errorf("failed to seed course %s: %w", course.slug, err)
		}
	}

	for _, image := range seedGallery {
		if _, err := tx.Exec(
			`INSERT INTO gallery_images (image_url, alt_text, caption, is_active, display_order)
			 VALUES (?, ?, '', 1, ?)`,
			image.imageURL, image.altText, image.displayOrder,
		); err != nil {
			return fmt.Errorf("failed to seed gallery image %s: %w", image.imageURL, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO contact_info (location, email, phone) VALUES (?, ?, ?)",
		"Labonchora, Khulna\nCampus of School of Logistics and Management (SOLAM)\nBangladesh Navy",
		"info@nihom.edu.bd",
		"Contact number coming soon",
	); err != nil {
		return fmt.Errorf("failed to seed contact info: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	log.Info().Str("username", cfg.Admin.Username).Msg("Database initialized with seed data")

	return nil
}
