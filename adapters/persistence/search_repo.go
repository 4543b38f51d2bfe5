package persistence

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/Aanjaneya24/me-api-playground/internal/domain/profile"
	"github.com/Aanjaneya24/me-api-playground/internal/domain/search"
	"github.com/Aanjaneya24/me-api-playground/pkg/apperror"
	"github.com/Aanjaneya24/me-api-playground/pkg/logger"
)

type sqliteSearchRepo struct {
	store  *Store
	logger logger.Logger
}

func NewSearchRepo(store *Store, logger logger.Logger) search.Repository {
	return &sqliteSearchRepo{store: store, logger: logger}
}

// likeTerm wraps the query for substring containment. No escaping of % or _:
// literal wildcards in the query keep their LIKE meaning.
func likeTerm(query string) string {
	return "%" + query + "%"
}

func (r *sqliteSearchRepo) ListProjects(ctx context.Context, query string) ([]profile.Project, error) {
	builder := sq.Select("id", "title", "description", "link").From("projects")
	if query != "" {
		term := likeTerm(query)
		builder = builder.Where(sq.Or{
			sq.Like{"title": term},
			sq.Like{"description": term},
		})
	}
	builder = builder.OrderBy("created_at DESC", "id DESC")

	return r.queryProjects(ctx, builder)
}

func (r *sqliteSearchRepo) ListSkills(ctx context.Context) ([]string, error) {
	builder := sq.Select("skill_name").Options("DISTINCT").From("skills").OrderBy("skill_name")
	return r.querySkillNames(ctx, builder)
}

// Search runs four independent substring scans. Every slot comes back as a
// non-nil collection even when nothing matches.
func (r *sqliteSearchRepo) Search(ctx context.Context, query string) (*search.Results, error) {
	term := likeTerm(query)
	results := &search.Results{
		Profile:  make([]search.ProfileMatch, 0),
		Skills:   make([]string, 0),
		Projects: make([]profile.Project, 0),
		Work:     make([]profile.WorkEntry, 0),
	}

	profileBuilder := sq.Select("name", "email", "education").From("profile").
		Where(sq.Or{
			sq.Like{"name": term},
			sq.Like{"email": term},
			sq.Like{"education": term},
		})
	if err := r.queryInto(ctx, profileBuilder, func(rows *sql.Rows) error {
		var m search.ProfileMatch
		if err := rows.Scan(&m.Name, &m.Email, &m.Education); err != nil {
			return err
		}
		results.Profile = append(results.Profile, m)
		return nil
	}); err != nil {
		return nil, err
	}

	skillsBuilder := sq.Select("skill_name").Options("DISTINCT").From("skills").
		Where(sq.Like{"skill_name": term})
	skills, err := r.querySkillNames(ctx, skillsBuilder)
	if err != nil {
		return nil, err
	}
	results.Skills = skills

	projectsBuilder := sq.Select("id", "title", "description", "link").From("projects").
		Where(sq.Or{
			sq.Like{"title": term},
			sq.Like{"description": term},
		})
	projects, err := r.queryProjects(ctx, projectsBuilder)
	if err != nil {
		return nil, err
	}
	results.Projects = projects

	workBuilder := sq.Select("company", "position", "duration", "description").From("work").
		Where(sq.Or{
			sq.Like{"company": term},
			sq.Like{"position": term},
			sq.Like{"description": term},
		})
	if err := r.queryInto(ctx, workBuilder, func(rows *sql.Rows) error {
		var w profile.WorkEntry
		if err := rows.Scan(&w.Company, &w.Position, &w.Duration, &w.Description); err != nil {
			return err
		}
		results.Work = append(results.Work, w)
		return nil
	}); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *sqliteSearchRepo) queryProjects(ctx context.Context, builder sq.SelectBuilder) ([]profile.Project, error) {
	projects := make([]profile.Project, 0)
	err := r.queryInto(ctx, builder, func(rows *sql.Rows) error {
		var p profile.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Link); err != nil {
			return err
		}
		projects = append(projects, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *sqliteSearchRepo) querySkillNames(ctx context.Context, builder sq.SelectBuilder) ([]string, error) {
	names := make([]string, 0)
	err := r.queryInto(ctx, builder, func(rows *sql.Rows) error {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *sqliteSearchRepo) queryInto(ctx context.Context, builder sq.SelectBuilder, scan func(*sql.Rows) error) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build search query", err)
	}

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return apperror.NewInternal("failed to execute search query", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return apperror.NewInternal("failed to scan search row", err)
		}
	}
	if err := rows.Err(); err != nil {
		return apperror.NewInternal("error iterating search rows", err)
	}
	return nil
}
