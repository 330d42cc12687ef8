package database

import (
	migrate "github.com/rubenv/sql-migrate"
)

// migrationSource holds the full schema as in-memory sql-migrate
// migrations. The schema mirrors the production sqlite file: recruits with
// their stage/contact timestamps, the append-only communications log,
// message templates, and the peripheral mentors/meetings/goals tables.
var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "001_create_recruits",
			Up: []string{`
				CREATE TABLE IF NOT EXISTS recruits (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					email TEXT,
					phone TEXT,
					stage TEXT DEFAULT 'New',
					notes TEXT,
					source TEXT DEFAULT 'Manual',
					priority INTEGER DEFAULT 1,
					last_contact DATETIME,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			},
			Down: []string{"DROP TABLE recruits"},
		},
		{
			Id: "002_create_communications",
			Up: []string{`
				CREATE TABLE IF NOT EXISTS communications (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					recruit_id INTEGER NOT NULL,
					message_type TEXT DEFAULT 'manual',
					content TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (recruit_id) REFERENCES recruits(id)
				)`,
				"CREATE INDEX IF NOT EXISTS idx_communications_recruit_id ON communications(recruit_id)",
			},
			Down: []string{"DROP TABLE communications"},
		},
		{
			Id: "003_create_message_templates",
			Up: []string{`
				CREATE TABLE IF NOT EXISTS message_templates (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					stage TEXT,
					content TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			},
			Down: []string{"DROP TABLE message_templates"},
		},
		{
			Id: "004_create_mentors",
			Up: []string{`
				CREATE TABLE IF NOT EXISTS mentors (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					email TEXT,
					phone TEXT,
					specialty TEXT,
					status TEXT DEFAULT 'Active',
					notes TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			},
			Down: []string{"DROP TABLE mentors"},
		},
		{
			Id: "005_create_meetings",
			Up: []string{`
				CREATE TABLE IF NOT EXISTS meetings (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					title TEXT NOT NULL,
					recruit_id INTEGER,
					mentor_id INTEGER,
					meeting_date TEXT,
					status TEXT DEFAULT 'Scheduled',
					notes TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (recruit_id) REFERENCES recruits(id),
					FOREIGN KEY (mentor_id) REFERENCES mentors(id)
				)`,
			},
			Down: []string{"DROP TABLE meetings"},
		},
		{
			Id: "006_create_goals",
			Up: []string{`
				CREATE TABLE IF NOT EXISTS goals (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					title TEXT NOT NULL,
					description TEXT,
					target_date TEXT,
					status TEXT DEFAULT 'Not Started',
					progress INTEGER DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			},
			Down: []string{"DROP TABLE goals"},
		},
		{
			Id: "007_index_recruits_stage",
			Up: []string{
				"CREATE INDEX IF NOT EXISTS idx_recruits_stage ON recruits(stage)",
				"CREATE INDEX IF NOT EXISTS idx_recruits_last_contact ON recruits(last_contact)",
			},
			Down: []string{
				"DROP INDEX idx_recruits_stage",
				"DROP INDEX idx_recruits_last_contact",
			},
		},
	},
}

// Migrate applies all pending schema migrations.
func (s *DB) Migrate() (int, error) {
	log := s.log.Function("Migrate")

	sqlDB, err := s.SQL.DB()
	if err != nil {
		return 0, log.Err("failed to get database from GORM", err)
	}

	applied, err := migrate.Exec(sqlDB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return 0, log.Err("failed to run migrations", err)
	}

	if applied > 0 {
		log.Info("Applied migrations", "count", applied)
	}

	return applied, nil
}
