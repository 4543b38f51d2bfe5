package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aanjaneya24/me-api-playground/internal/domain/profile"
	"github.com/Aanjaneya24/me-api-playground/pkg/apperror"
	"github.com/Aanjaneya24/me-api-playground/pkg/logger"
)

type sqliteProfileRepo struct {
	store  *Store
	logger logger.Logger
}

func NewProfileRepo(store *Store, logger logger.Logger) profile.Repository {
	return &sqliteProfileRepo{store: store, logger: logger}
}

// Get assembles the whole aggregate inside one transaction so the read never
// observes a half-committed write.
func (r *sqliteProfileRepo) Get(ctx context.Context) (*profile.Aggregate, error) {
	var agg *profile.Aggregate

	err := r.store.WithTx(ctx, func(tx *sql.Tx) error {
		var p profile.Profile
		err := tx.QueryRowContext(ctx,
			`SELECT id, name, email, education, updated_at FROM profile ORDER BY id LIMIT 1`,
		).Scan(&p.ID, &p.Name, &p.Email, &p.Education, &p.UpdatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NewNotFound("profile", "no profile has been created yet")
		}
		if err != nil {
			return apperror.NewInternal("failed to query profile", err)
		}

		skills, err := r.querySkills(ctx, tx, p.ID)
		if err != nil {
			return err
		}
		projects, err := r.queryProjects(ctx, tx, p.ID)
		if err != nil {
			return err
		}
		work, err := r.queryWork(ctx, tx, p.ID)
		if err != nil {
			return err
		}
		links, err := r.queryLinks(ctx, tx, p.ID)
		if err != nil {
			return err
		}

		agg = &profile.Aggregate{
			Name:      p.Name,
			Email:     p.Email,
			Education: p.Education,
			Skills:    skills,
			Projects:  projects,
			Work:      work,
			Links:     links,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return agg, nil
}

// Create inserts the profile row, captures its generated id, and tags every
// supplied child row with it, all in one transaction. The single-profile
// invariant is checked inside the same transaction.
func (r *sqliteProfileRepo) Create(ctx context.Context, in profile.CreateInput) (int64, error) {
	var profileID int64

	err := r.store.WithTx(ctx, func(tx *sql.Tx) error {
		var existing int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM profile LIMIT 1`).Scan(&existing)
		if err == nil {
			return apperror.NewConflict("profile", "a profile already exists, use update instead")
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return apperror.NewInternal("failed to check for existing profile", err)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO profile (name, email, education) VALUES (?, ?, ?)`,
			in.Name, in.Email, in.Education,
		)
		if err != nil {
			return apperror.NewInternal("failed to insert profile", err)
		}
		profileID, err = res.LastInsertId()
		if err != nil {
			return apperror.NewInternal("failed to read generated profile id", err)
		}

		if err := insertSkills(ctx, tx, profileID, in.Skills); err != nil {
			return err
		}
		if err := insertProjects(ctx, tx, profileID, in.Projects); err != nil {
			return err
		}
		if err := insertWork(ctx, tx, profileID, in.Work); err != nil {
			return err
		}
		if in.Links != nil {
			if err := insertLinks(ctx, tx, profileID, *in.Links); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return profileID, nil
}

// Update merges scalar columns with COALESCE (nil pointer keeps the stored
// value) and replaces each supplied child collection wholesale: delete every
// row for the profile, reinsert the new set. A nil collection is left alone.
func (r *sqliteProfileRepo) Update(ctx context.Context, in profile.UpdateInput) error {
	return r.store.WithTx(ctx, func(tx *sql.Tx) error {
		var profileID int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM profile LIMIT 1`).Scan(&profileID)
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NewNotFound("profile", "no profile to update, create one first")
		}
		if err != nil {
			return apperror.NewInternal("failed to look up profile", err)
		}

		if in.HasScalarChange() {
			_, err := tx.ExecContext(ctx,
				`UPDATE profile SET
					name = COALESCE(?, name),
					email = COALESCE(?, email),
					education = COALESCE(?, education),
					updated_at = CURRENT_TIMESTAMP
				WHERE id = ?`,
				in.Name, in.Email, in.Education, profileID,
			)
			if err != nil {
				return apperror.NewInternal("failed to update profile columns", err)
			}
		}

		if in.Skills != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM skills WHERE profile_id = ?`, profileID); err != nil {
				return apperror.NewInternal("failed to clear skills", err)
			}
			if err := insertSkills(ctx, tx, profileID, in.Skills); err != nil {
				return err
			}
		}

		if in.Projects != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE profile_id = ?`, profileID); err != nil {
				return apperror.NewInternal("failed to clear projects", err)
			}
			if err := insertProjects(ctx, tx, profileID, in.Projects); err != nil {
				return err
			}
		}

		if in.Work != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM work WHERE profile_id = ?`, profileID); err != nil {
				return apperror.NewInternal("failed to clear work entries", err)
			}
			if err := insertWork(ctx, tx, profileID, in.Work); err != nil {
				return err
			}
		}

		if in.Links != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM links WHERE profile_id = ?`, profileID); err != nil {
				return apperror.NewInternal("failed to clear links", err)
			}
			if err := insertLinks(ctx, tx, profileID, *in.Links); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sqliteProfileRepo) querySkills(ctx context.Context, tx *sql.Tx, profileID int64) ([]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT skill_name FROM skills WHERE profile_id = ?`, profileID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	defer rows.Close()

	skills := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperror.NewInternal("failed to scan skill row", err)
		}
		skills = append(skills, name)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return skills, nil
}

func (r *sqliteProfileRepo) queryProjects(ctx context.Context, tx *sql.Tx, profileID int64) ([]profile.Project, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, title, description, link FROM projects WHERE profile_id = ?`, profileID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	defer rows.Close()

	projects := make([]profile.Project, 0)
	for rows.Next() {
		var p profile.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Link); err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *sqliteProfileRepo) queryWork(ctx context.Context, tx *sql.Tx, profileID int64) ([]profile.WorkEntry, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT company, position, duration, description FROM work WHERE profile_id = ?`, profileID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query work entries", err)
	}
	defer rows.Close()

	work := make([]profile.WorkEntry, 0)
	for rows.Next() {
		var w profile.WorkEntry
		if err := rows.Scan(&w.Company, &w.Position, &w.Duration, &w.Description); err != nil {
			return nil, apperror.NewInternal("failed to scan work row", err)
		}
		work = append(work, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work rows", err)
	}
	return work, nil
}

func (r *sqliteProfileRepo) queryLinks(ctx context.Context, tx *sql.Tx, profileID int64) (profile.Links, error) {
	var l profile.Links
	err := tx.QueryRowContext(ctx,
		`SELECT github, linkedin, portfolio FROM links WHERE profile_id = ?`, profileID,
	).Scan(&l.Github, &l.Linkedin, &l.Portfolio)
	if errors.Is(err, sql.ErrNoRows) {
		// Absent links are a valid state, rendered as an empty set.
		return profile.Links{}, nil
	}
	if err != nil {
		return profile.Links{}, apperror.NewInternal("failed to query links", err)
	}
	return l, nil
}

func insertSkills(ctx context.Context, tx *sql.Tx, profileID int64, skills []string) error {
	for _, skill := range skills {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO skills (profile_id, skill_name) VALUES (?, ?)`, profileID, skill)
		if err != nil {
			return apperror.NewInternal("failed to insert skill", err)
		}
	}
	return nil
}

func insertProjects(ctx context.Context, tx *sql.Tx, profileID int64, projects []profile.ProjectInput) error {
	for _, p := range projects {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO projects (profile_id, title, description, link) VALUES (?, ?, ?, ?)`,
			profileID, p.Title, p.Description, p.Link)
		if err != nil {
			return apperror.NewInternal("failed to insert project", err)
		}
	}
	return nil
}

func insertWork(ctx context.Context, tx *sql.Tx, profileID int64, work []profile.WorkInput) error {
	for _, w := range work {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO work (profile_id, company, position, duration, description) VALUES (?, ?, ?, ?, ?)`,
			profileID, w.Company, w.Position, w.Duration, w.Description)
		if err != nil {
			return apperror.NewInternal("failed to insert work entry", err)
		}
	}
	return nil
}

func insertLinks(ctx context.Context, tx *sql.Tx, profileID int64, links profile.LinksInput) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO links (profile_id, github, linkedin, portfolio) VALUES (?, ?, ?, ?)`,
		profileID, links.Github, links.Linkedin, links.Portfolio)
	if err != nil {
		return apperror.NewInternal("failed to insert links", err)
	}
	return nil
}
