package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/Aanjaneya24/me-api-playground/internal/domain/profile"
	"github.com/Aanjaneya24/me-api-playground/internal/domain/search"
	"github.com/Aanjaneya24/me-api-playground/pkg/apperror"
	"github.com/Aanjaneya24/me-api-playground/pkg/logger"
)

type SearchUseCase struct {
	searchRepo search.Repository
	logger     logger.Logger
}

func NewSearchUseCase(sr search.Repository, log logger.Logger) *SearchUseCase {
	return &SearchUseCase{
		searchRepo: sr,
		logger:     log,
	}
}

type ListProjectsInput struct {
	Query string
}

type ListProjectsOutput struct {
	Projects []profile.Project
}

func (uc *SearchUseCase) ExecuteListProjects(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	projects, err := uc.searchRepo.ListProjects(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	return &ListProjectsOutput{Projects: projects}, nil
}

type ListSkillsOutput struct {
	Skills []string
}

func (uc *SearchUseCase) ExecuteListSkills(ctx context.Context) (*ListSkillsOutput, error) {
	skills, err := uc.searchRepo.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	return &ListSkillsOutput{Skills: skills}, nil
}

type GlobalSearchInput struct {
	Query string
}

type GlobalSearchOutput struct {
	Results *search.Results
}

func (uc *SearchUseCase) ExecuteGlobalSearch(ctx context.Context, input GlobalSearchInput) (*GlobalSearchOutput, error) {
	if input.Query == "" {
		return nil, apperror.NewInvalidInput("search query parameter 'q' is required", nil)
	}

	uc.logger.Info("Executing global search", zap.String("query", input.Query))
	results, err := uc.searchRepo.Search(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	return &GlobalSearchOutput{Results: results}, nil
}
