package profile

import (
	"context"
	"time"
)

// Profile is the identity root. The system holds at most one of these.
type Profile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Education string    `json:"education"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type WorkEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Links struct {
	Github    string `json:"github"`
	Linkedin  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

// Aggregate is the profile plus every owned child collection, read as one
// consistency unit.
type Aggregate struct {
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Education string      `json:"education"`
	Skills    []string    `json:"skills"`
	Projects  []Project   `json:"projects"`
	Work      []WorkEntry `json:"work"`
	Links     Links       `json:"links"`
}

type ProjectInput struct {
	Title       string
	Description string
	Link        string
}

type WorkInput struct {
	Company     string
	Position    string
	Duration    string
	Description string
}

type LinksInput struct {
	Github    string
	Linkedin  string
	Portfolio string
}

// CreateInput carries the whole aggregate for the create path. Optional text
// fields default to the empty string, never NULL.
type CreateInput struct {
	Name      string
	Email     string
	Education string
	Skills    []string
	Projects  []ProjectInput
	Work      []WorkInput
	Links     *LinksInput
}

// UpdateInput distinguishes absent from empty: a nil scalar pointer keeps the
// stored value, a nil collection leaves that table untouched, while a non-nil
// collection (even empty) replaces the stored set wholesale.
type UpdateInput struct {
	Name      *string
	Email     *string
	Education *string
	Skills    []string
	Projects  []ProjectInput
	Work      []WorkInput
	Links     *LinksInput
}

func (in UpdateInput) HasScalarChange() bool {
	return in.Name != nil || in.Email != nil || in.Education != nil
}

type Repository interface {
	Get(ctx context.Context) (*Aggregate, error)
	Create(ctx context.Context, in CreateInput) (int64, error)
	Update(ctx context.Context, in UpdateInput) error
}
