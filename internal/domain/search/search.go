package search

import (
	"context"

	"github.com/Aanjaneya24/me-api-playground/internal/domain/profile"
)

// ProfileMatch is the slice of profile columns a search can hit. It is
// returned as a list for shape uniformity even though at most one profile
// exists.
type ProfileMatch struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Education string `json:"education"`
}

// Results always carries all four slots; a slot with no matches is an empty
// collection, never nil.
type Results struct {
	Profile  []ProfileMatch      `json:"profile"`
	Skills   []string            `json:"skills"`
	Projects []profile.Project   `json:"projects"`
	Work     []profile.WorkEntry `json:"work"`
}

type Repository interface {
	// ListProjects returns every project when query is empty, otherwise the
	// projects whose title or description contains query as a substring.
	// Ordered by creation time, newest first.
	ListProjects(ctx context.Context, query string) ([]profile.Project, error)

	// ListSkills returns all distinct skill names, lexicographically ordered.
	ListSkills(ctx context.Context) ([]string, error)

	// Search fans a substring scan out across profile, skills, projects and
	// work entries.
	Search(ctx context.Context, query string) (*Results, error)
}
