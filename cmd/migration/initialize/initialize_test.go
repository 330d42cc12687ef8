package initialize

import (
	"crm/config"
	"crm/internal/database"
	"crm/internal/logger"
	. "crm/internal/models"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) database.DB {
	t.Helper()

	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "crm_test.db"),
	}

	db, err := database.NewSQL(testConfig)
	require.NoError(t, err)
	_, err = db.Migrate()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func TestInitializeTables_CreatesDefaultTemplates(t *testing.T) {
	db := newTestDB(t)
	log := logger.New("test")

	require.NoError(t, InitializeTables(db.SQL, config.Config{}, log))

	var templates []MessageTemplate
	require.NoError(t, db.SQL.Order("name").Find(&templates).Error)
	require.Len(t, templates, 4)

	names := make([]string, 0, len(templates))
	for _, template := range templates {
		names = append(names, template.Name)
		assert.Contains(t, template.Content, "{name}")
	}
	assert.Equal(t, []string{"Exam Reminder", "Initial Follow-up", "Training Check", "Welcome Licensed"}, names)
}

func TestInitializeTables_Idempotent(t *testing.T) {
	db := newTestDB(t)
	log := logger.New("test")

	require.NoError(t, InitializeTables(db.SQL, config.Config{}, log))

	// An operator-edited template must survive a rerun untouched.
	require.NoError(t, db.SQL.Model(&MessageTemplate{}).
		Where("name = ?", "Training Check").
		Update("content", "Hey {name}, custom wording").Error)

	require.NoError(t, InitializeTables(db.SQL, config.Config{}, log))

	var count int64
	require.NoError(t, db.SQL.Model(&MessageTemplate{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)

	var edited MessageTemplate
	require.NoError(t, db.SQL.First(&edited, "name = ?", "Training Check").Error)
	assert.Equal(t, "Hey {name}, custom wording", edited.Content)
}
