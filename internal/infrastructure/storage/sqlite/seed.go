package sqlite

// Default rows inserted at startup. INSERT OR IGNORE keeps repeated
// initialization from duplicating rows or clobbering records that have
// been modified since (an admin whose permissions were changed keeps
// the change).
func (s *Storage) seedDefaults() error {
	defaultUsers := []struct {
		username    string
		password    string
		permissions string
	}{
		{"admin", "password", `{"patient_mgmt": "Edit", "user_mgmt": "Edit", "appointments": "Edit"}`},
		{"doc", "password", `{"patient_mgmt": "View", "user_mgmt": "None", "appointments": "View"}`},
	}

	for _, u := range defaultUsers {
		_, err := s.db.Exec(`
			INSERT OR IGNORE INTO users (username, password, permissions)
			VALUES (?, ?, ?)
		`, u.username, u.password, u.permissions)
		if err != nil {
			return err
		}
	}

	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO modules (id, href, title, description, icon) VALUES
		('patient_mgmt', '/patients', 'Patient Management', 'View, add, and edit patient records.', 'Users'),
		('user_mgmt', '/users', 'User Management', 'Add, remove, and manage system users.', 'User'),
		('appointments', '/appointments', 'Appointments', 'Manage patient appointments.', 'Calendar')
	`)
	return err
}
