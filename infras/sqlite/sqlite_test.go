package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nihom/config"
	"nihom/shared/password"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "admin123"
	cfg.Admin.Email = "admin@example.com"

	return cfg
}

func openTestDB(t *testing.T) *Connection {
	t.Helper()

	conn, err := Open(":memory:", 5000)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

func TestOpenAppliesSchema(t *testing.T) {
	conn := openTestDB(t)

	tables := []string{
		"hero_content", "about_content", "mission_vision",
		"courses", "gallery_images", "contact_info", "admin_users",
	}

	for _, table := range tables {
		var count int
		err := conn.DB.Get(&count, "SELECT COUNT(*) FROM "+table)
		require.NoError(t, err, "table %s should exist", table)
		assert.Zero(t, count, "table %s should start empty", table)
	}
}

func TestSeedPopulatesDefaults(t *testing.T) {
	conn := openTestDB(t)

	require.NoError(t, conn.EnsureSeedData(testConfig()))

	counts := map[string]int{
		"admin_users":    1,
		"hero_content":   1,
		"about_content":  1,
		"mission_vision": 1,
		"contact_info":   1,
		"courses":        3,
		"gallery_images": 6,
	}

	for table, want := range counts {
		var got int
		require.NoError(t, conn.DB.Get(&got, "SELECT COUNT(*) FROM "+table))
		assert.Equal(t, want, got, "table %s", table)
	}

	var slugs []string
	require.NoError(t, conn.DB.Select(&slugs, "SELECT slug FROM courses ORDER BY display_order ASC, id ASC"))
	assert.Equal(t, []string{"bakery-pastry", "food-beverage-production", "food-beverage-service"}, slugs)
}

func TestSeedIsIdempotent(t *testing.T) {
	conn := openTestDB(t)

	require.NoError(t, conn.EnsureSeedData(testConfig()))
	require.NoError(t, conn.EnsureSeedData(testConfig()))

	var admins int
	require.NoError(t, conn.DB.Get(&admins, "SELECT COUNT(*) FROM admin_users"))
	assert.Equal(t, 1, admins)

	var courses int
	require.NoError(t, conn.DB.Get(&courses, "SELECT COUNT(*) FROM courses"))
	assert.Equal(t, 3, courses)
}

func TestSeedStoresPasswordHash(t *testing.T) {
	conn := openTestDB(t)
	cfg := testConfig()

	require.NoError(t, conn.EnsureSeedData(cfg))

	var stored string
	require.NoError(t, conn.DB.Get(&stored, "SELECT password FROM admin_users WHERE username = ?", cfg.Admin.Username))

	assert.NotEqual(t, cfg.Admin.Password, stored)
	assert.NoError(t, password.Verify(cfg.Admin.Password, stored))
}

func TestOpenReusesExistingFile(t *testing.T) {
	path := t.TempDir() + "/test.db"

	conn, err := Open(path, 5000)
	require.NoError(t, err)
	require.NoError(t, conn.EnsureSeedData(testConfig()))
	require.NoError(t, conn.Close())

	conn, err = Open(path, 5000)
	require.NoError(t, err)
	defer conn.Close()

	var courses int
	require.NoError(t, conn.DB.Get(&courses, "SELECT COUNT(*) FROM courses"))
	assert.Equal(t, 3, courses)
}
