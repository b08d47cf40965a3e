package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Posture analyses table - one row per analysis pass. Metric
		// columns are nullable: NULL means the metric was unmeasured.
		`CREATE TABLE IF NOT EXISTS posture_analyses (
			id TEXT PRIMARY KEY,
			shoulder_slope_degrees REAL,
			hip_slope_degrees REAL,
			head_tilt_degrees REAL,
			knee_valgus_angle REAL,
			posture_score REAL NOT NULL,
			metrics TEXT NOT NULL DEFAULT '{}',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Recommendations table - corrective advice tied to an analysis
		`CREATE TABLE IF NOT EXISTS recommendations (
			id TEXT PRIMARY KEY,
			analysis_id TEXT REFERENCES posture_analyses(id) ON DELETE CASCADE,
			category TEXT NOT NULL CHECK(category IN ('exercise', 'nutrition', 'posture', 'lifestyle', 'recovery')),
			priority TEXT NOT NULL CHECK(priority IN ('low', 'medium', 'high', 'critical')),
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			action_steps TEXT NOT NULL DEFAULT '[]',
			is_completed INTEGER NOT NULL DEFAULT 0,
			completed_at DATETIME,
			expires_at DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Weight log table - dated weight entries feeding progress deltas
		`CREATE TABLE IF NOT EXISTS weight_log (
			id TEXT PRIMARY KEY,
			weight REAL NOT NULL,
			recorded_at DATETIME NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_recommendations_analysis_id ON recommendations(analysis_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_completed ON recommendations(is_completed)`,
		`CREATE INDEX IF NOT EXISTS idx_weight_log_recorded_at ON weight_log(recorded_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
