package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"iscol-site/internal/registration"
)

type RegistrationRepository struct {
	DB *pgxpool.Pool
}

func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{DB: db}
}

// Upsert inserts a cleaned registration record, replacing an earlier import
// of the same email.
func (r *RegistrationRepository) Upsert(ctx context.Context, rec registration.Record) error {
	query := `
		INSERT INTO registrations(registered_at, full_name, email, affiliation, affiliation_normalized, attending, role, submitted_paper, driving)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (email) DO UPDATE SET
			registered_at = EXCLUDED.registered_at,
			full_name = EXCLUDED.full_name,
			affiliation = EXCLUDED.affiliation,
			affiliation_normalized = EXCLUDED.affiliation_normalized,
			attending = EXCLUDED.attending,
			role = EXCLUDED.role,
			submitted_paper = EXCLUDED.submitted_paper,
			driving = EXCLUDED.driving,
			imported_at = NOW()
	`

	var registeredAt *time.Time
	if !rec.Timestamp.IsZero() {
		registeredAt = &rec.Timestamp
	}

	_, err := r.DB.Exec(ctx, query,
		registeredAt,
		rec.FullName,
		rec.Email,
		rec.Affiliation,
		strings.Join(rec.Affiliations, ", "),
		rec.Attending,
		rec.Role,
		rec.Paper,
		rec.Driving,
	)
	return err
}

// ImportAll stores every cleaned record that carries a valid email. Records
// without one cannot be keyed and are skipped; the count of stored records is
// returned.
func (r *RegistrationRepository) ImportAll(ctx context.Context, records []registration.Record) (int, error) {
	stored := 0
	for _, rec := range records {
		if rec.Email == "" {
			continue
		}
		if err := r.Upsert(ctx, rec); err != nil {
			return stored, fmt.Errorf("storing registration %s: %w", rec.Email, err)
		}
		stored++
	}
	return stored, nil
}

// CountByAttendance returns stored registrations grouped by attendance answer.
func (r *RegistrationRepository) CountByAttendance(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.Query(ctx, "SELECT attending, COUNT(*) FROM registrations GROUP BY attending")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var attending string
		var count int
		if err := rows.Scan(&attending, &count); err != nil {
			return nil, err
		}
		counts[attending] = count
	}

	return counts, rows.Err()
}
