package http

import (
	"github.com/Aanjaneya24/me-api-playground/internal/domain/profile"
	"github.com/Aanjaneya24/me-api-playground/internal/domain/search"
)

// Profile DTOs

type ProjectPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type WorkPayload struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type LinksPayload struct {
	Github    string `json:"github"`
	Linkedin  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

type CreateProfileRequest struct {
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Education string           `json:"education"`
	Skills    []string         `json:"skills"`
	Projects  []ProjectPayload `json:"projects"`
	Work      []WorkPayload    `json:"work"`
	Links     *LinksPayload    `json:"links"`
}

// UpdateProfileRequest keeps absent and empty apart: omitted scalars decode to
// nil pointers, omitted collections to nil slices, so the repository can tell
// "keep" from "replace with nothing".
type UpdateProfileRequest struct {
	Name      *string          `json:"name"`
	Email     *string          `json:"email"`
	Education *string          `json:"education"`
	Skills    []string         `json:"skills"`
	Projects  []ProjectPayload `json:"projects"`
	Work      []WorkPayload    `json:"work"`
	Links     *LinksPayload    `json:"links"`
}

type ProfileDTO struct {
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Education string        `json:"education"`
	Skills    []string      `json:"skills"`
	Projects  []ProjectDTO  `json:"projects"`
	Work      []WorkPayload `json:"work"`
	Links     LinksPayload  `json:"links"`
}

type ProjectDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

func (req *CreateProfileRequest) ToDomainInput() profile.CreateInput {
	in := profile.CreateInput{
		Name:      req.Name,
		Email:     req.Email,
		Education: req.Education,
		Skills:    req.Skills,
		Projects:  toProjectInputs(req.Projects),
		Work:      toWorkInputs(req.Work),
	}
	if req.Links != nil {
		in.Links = &profile.LinksInput{
			Github:    req.Links.Github,
			Linkedin:  req.Links.Linkedin,
			Portfolio: req.Links.Portfolio,
		}
	}
	return in
}

func (req *UpdateProfileRequest) ToDomainInput() profile.UpdateInput {
	in := profile.UpdateInput{
		Name:      req.Name,
		Email:     req.Email,
		Education: req.Education,
		Skills:    req.Skills,
		Projects:  toProjectInputs(req.Projects),
		Work:      toWorkInputs(req.Work),
	}
	if req.Links != nil {
		in.Links = &profile.LinksInput{
			Github:    req.Links.Github,
			Linkedin:  req.Links.Linkedin,
			Portfolio: req.Links.Portfolio,
		}
	}
	return in
}

func toProjectInputs(payloads []ProjectPayload) []profile.ProjectInput {
	if payloads == nil {
		return nil
	}
	inputs := make([]profile.ProjectInput, len(payloads))
	for i, p := range payloads {
		inputs[i] = profile.ProjectInput{
			Title:       p.Title,
			Description: p.Description,
			Link:        p.Link,
		}
	}
	return inputs
}

func toWorkInputs(payloads []WorkPayload) []profile.WorkInput {
	if payloads == nil {
		return nil
	}
	inputs := make([]profile.WorkInput, len(payloads))
	for i, w := range payloads {
		inputs[i] = profile.WorkInput{
			Company:     w.Company,
			Position:    w.Position,
			Duration:    w.Duration,
			Description: w.Description,
		}
	}
	return inputs
}

func ToProfileDTO(agg *profile.Aggregate) ProfileDTO {
	dto := ProfileDTO{
		Name:      agg.Name,
		Email:     agg.Email,
		Education: agg.Education,
		Skills:    agg.Skills,
		Work:      make([]WorkPayload, len(agg.Work)),
		Links: LinksPayload{
			Github:    agg.Links.Github,
			Linkedin:  agg.Links.Linkedin,
			Portfolio: agg.Links.Portfolio,
		},
	}
	dto.Projects = toProjectDTOs(agg.Projects)
	for i, w := range agg.Work {
		dto.Work[i] = WorkPayload{
			Company:     w.Company,
			Position:    w.Position,
			Duration:    w.Duration,
			Description: w.Description,
		}
	}
	return dto
}

func toProjectDTOs(projects []profile.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ProjectDTO{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Link:        p.Link,
		}
	}
	return dtos
}

// Search DTOs

type SearchResultsDTO struct {
	Profile  []ProfileMatchDTO `json:"profile"`
	Skills   []string          `json:"skills"`
	Projects []ProjectDTO      `json:"projects"`
	Work     []WorkPayload     `json:"work"`
}

type ProfileMatchDTO struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Education string `json:"education"`
}

func ToSearchResultsDTO(res *search.Results) SearchResultsDTO {
	dto := SearchResultsDTO{
		Profile:  make([]ProfileMatchDTO, len(res.Profile)),
		Skills:   res.Skills,
		Projects: toProjectDTOs(res.Projects),
		Work:     make([]WorkPayload, len(res.Work)),
	}
	for i, m := range res.Profile {
		dto.Profile[i] = ProfileMatchDTO{Name: m.Name, Email: m.Email, Education: m.Education}
	}
	for i, w := range res.Work {
		dto.Work[i] = WorkPayload{
			Company:     w.Company,
			Position:    w.Position,
			Duration:    w.Duration,
			Description: w.Description,
		}
	}
	return dto
}
