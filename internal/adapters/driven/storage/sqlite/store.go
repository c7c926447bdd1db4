package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/profdir/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/profdir/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driven"
	"github.com/custodia-labs/profdir/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.ProfileSource = (*Store)(nil)

// Store is a SQLite-backed profile collection.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens or creates the database at path and applies migrations.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: path,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// OpenSource opens an existing database for reading profiles. Unlike
// NewStore it never creates the file.
func OpenSource(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	return NewStore(path)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Location returns the database file path.
func (s *Store) Location() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_profiles.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		logger.Debug("Applied migration %s to %s", name, s.path)
	}

	return nil
}

// SchemaVersion returns the latest applied migration.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	return version, err
}

// Load returns every profile in import order.
func (s *Store) Load(ctx context.Context) ([]domain.Profile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, role, summary, location, area, photo,
			skills, soft_skills, experiences, education, projects,
			certifications, languages, interests
		FROM profiles
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}

	logger.Debug("Read %d profiles from %s", len(profiles), s.path)
	return profiles, nil
}

// Count returns the number of stored profiles.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting profiles: %w", err)
	}
	return n, nil
}

// Import replaces the stored collection with profiles in a single
// transaction. The collection is validated first; on any error the
// previous contents are kept.
func (s *Store) Import(ctx context.Context, profiles []domain.Profile) error {
	if err := domain.ValidateProfiles(profiles); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM profiles"); err != nil {
		return fmt.Errorf("clearing profiles: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO profiles (id, position, name, role, summary, location, area, photo,
			skills, soft_skills, experiences, education, projects,
			certifications, languages, interests)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range profiles {
		p := &profiles[i]
		lists, err := encodeLists(p)
		if err != nil {
			return fmt.Errorf("encoding profile %q: %w", p.ID, err)
		}
		args := append([]any{p.ID, i, p.Name, p.Role, p.Summary, p.Location, p.Area, p.Photo}, lists...)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting profile %q: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	logger.Info("Imported %d profiles into %s", len(profiles), s.path)
	return nil
}

// encodeLists returns the JSON list columns in schema order.
func encodeLists(p *domain.Profile) ([]any, error) {
	values := []any{
		p.Skills,
		p.SoftSkills,
		jsonfile.ExperiencesFromDomain(p.Experiences),
		jsonfile.EducationFromDomain(p.Education),
		jsonfile.ProjectsFromDomain(p.Projects),
		p.Certifications,
		jsonfile.LanguagesFromDomain(p.Languages),
		p.Interests,
	}
	out := make([]any, len(values))
	for i, v := range values {
		encoded, err := marshalList(v)
		if err != nil {
			return nil, err
		}
		out[i] = encoded
	}
	return out, nil
}

// marshalList encodes nil slices as an empty array.
func marshalList(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(data) == "null" {
		return "[]", nil
	}
	return string(data), nil
}

func scanProfile(rows *sql.Rows) (*domain.Profile, error) {
	var (
		p                                              domain.Profile
		skills, softSkills, experiences, education     string
		projects, certifications, languages, interests string
	)
	err := rows.Scan(&p.ID, &p.Name, &p.Role, &p.Summary, &p.Location, &p.Area, &p.Photo,
		&skills, &softSkills, &experiences, &education, &projects,
		&certifications, &languages, &interests)
	if err != nil {
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	var (
		exp  []jsonfile.Experience
		edu  []jsonfile.Education
		proj []jsonfile.Project
		lang []jsonfile.Language
	)
	decode := []struct {
		column string
		raw    string
		dest   any
	}{
		{"skills", skills, &p.Skills},
		{"soft_skills", softSkills, &p.SoftSkills},
		{"experiences", experiences, &exp},
		{"education", education, &edu},
		{"projects", projects, &proj},
		{"certifications", certifications, &p.Certifications},
		{"languages", languages, &lang},
		{"interests", interests, &p.Interests},
	}
	for _, d := range decode {
		if err := json.Unmarshal([]byte(d.raw), d.dest); err != nil {
			return nil, fmt.Errorf("profile %q column %s: %w", p.ID, d.column, errors.Join(domain.ErrInvalidInput, err))
		}
	}

	p.Experiences = jsonfile.ExperiencesToDomain(exp)
	p.Education = jsonfile.EducationToDomain(edu)
	p.Projects = jsonfile.ProjectsToDomain(proj)
	p.Languages = jsonfile.LanguagesToDomain(lang)
	p.Skills = nilIfEmpty(p.Skills)
	p.SoftSkills = nilIfEmpty(p.SoftSkills)
	p.Certifications = nilIfEmpty(p.Certifications)
	p.Interests = nilIfEmpty(p.Interests)
	return &p, nil
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
