package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aanjaneya24/me-api-playground/internal/domain/profile"
	"github.com/Aanjaneya24/me-api-playground/internal/domain/search"
	"github.com/Aanjaneya24/me-api-playground/pkg/logger"
)

func setupSearchRepo(t *testing.T) (search.Repository, profile.Repository) {
	t.Helper()
	store := setupTestStore(t)
	log := logger.NewNop()
	return NewSearchRepo(store, log), NewProfileRepo(store, log)
}

func seedSearchFixture(t *testing.T, repo profile.Repository) {
	t.Helper()
	_, err := repo.Create(context.Background(), profile.CreateInput{
		Name:      "John Doe",
		Email:     "john.doe@example.com",
		Education: "B.Tech in Computer Science",
		Skills:    []string{"Python", "Go", "SQL", "Go"},
		Projects: []profile.ProjectInput{
			{Title: "E-commerce API", Description: "RESTful API for an online store"},
			{Title: "Weather Dashboard", Description: "Forecasting with data visualization"},
			{Title: "Task Manager", Description: "Full-stack task management"},
		},
		Work: []profile.WorkInput{
			{Company: "Tech Startup Inc.", Position: "Intern", Description: "Backend services"},
		},
	})
	require.NoError(t, err)
}

func TestSearchRepo_ListProjects_All(t *testing.T) {
	searchRepo, profileRepo := setupSearchRepo(t)
	seedSearchFixture(t, profileRepo)

	projects, err := searchRepo.ListProjects(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, projects, 3)
	// Newest first.
	assert.Equal(t, "Task Manager", projects[0].Title)
	assert.Equal(t, "E-commerce API", projects[2].Title)
}

func TestSearchRepo_ListProjects_FilterIsCaseInsensitive(t *testing.T) {
	searchRepo, profileRepo := setupSearchRepo(t)
	seedSearchFixture(t, profileRepo)

	projects, err := searchRepo.ListProjects(context.Background(), "weather")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Weather Dashboard", projects[0].Title)
}

func TestSearchRepo_ListProjects_MatchesDescription(t *testing.T) {
	searchRepo, profileRepo := setupSearchRepo(t)
	seedSearchFixture(t, profileRepo)

	projects, err := searchRepo.ListProjects(context.Background(), "online store")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "E-commerce API", projects[0].Title)
}

func TestSearchRepo_ListProjects_NoMatchIsEmptyNotError(t *testing.T) {
	searchRepo, profileRepo := setupSearchRepo(t)
	seedSearchFixture(t, profileRepo)

	projects, err := searchRepo.ListProjects(context.Background(), "zzz-no-match")
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestSearchRepo_ListSkills_DistinctAndSorted(t *testing.T) {
	searchRepo, profileRepo := setupSearchRepo(t)
	seedSearchFixture(t, profileRepo)

	skills, err := searchRepo.ListSkills(context.Background())
	require.NoError(t, err)
	// "Go" was stored twice; distinct query collapses it.
	assert.Equal(t, []string{"Go", "Python", "SQL"}, skills)
}

func TestSearchRepo_ListSkills_EmptyStore(t *testing.T) {
	searchRepo, _ := setupSearchRepo(t)

	skills, err := searchRepo.ListSkills(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestSearchRepo_Search_AllSlotsEmptyOnNoMatch(t *testing.T) {
	searchRepo, profileRepo := setupSearchRepo(t)
	seedSearchFixture(t, profileRepo)

	results, err := searchRepo.Search(context.Background(), "zzz-no-match")
	require.NoError(t, err)
	require.NotNil(t, results)

	assert.NotNil(t, results.Profile)
	assert.NotNil(t, results.Skills)
	assert.NotNil(t, results.Projects)
	assert.NotNil(t, results.Work)
	assert.Empty(t, results.Profile)
	assert.Empty(t, results.Skills)
	assert.Empty(t, results.Projects)
	assert.Empty(t, results.Work)
}

func TestSearchRepo_Search_FansOutAcrossEntities(t *testing.T) {
	searchRepo, profileRepo := setupSearchRepo(t)
	seedSearchFixture(t, profileRepo)
	ctx := context.Background()

	byName, err := searchRepo.Search(ctx, "John")
	require.NoError(t, err)
	require.Len(t, byName.Profile, 1)
	assert.Equal(t, "John Doe", byName.Profile[0].Name)

	bySkill, err := searchRepo.Search(ctx, "Pyth")
	require.NoError(t, err)
	assert.Equal(t, []string{"Python"}, bySkill.Skills)

	byProject, err := searchRepo.Search(ctx, "weather")
	require.NoError(t, err)
	require.Len(t, byProject.Projects, 1)
	assert.Equal(t, "Weather Dashboard", byProject.Projects[0].Title)

	byWork, err := searchRepo.Search(ctx, "Startup")
	require.NoError(t, err)
	require.Len(t, byWork.Work, 1)
	assert.Equal(t, "Tech Startup Inc.", byWork.Work[0].Company)
}

func TestSearchRepo_Search_WildcardsPassThrough(t *testing.T) {
	searchRepo, profileRepo := setupSearchRepo(t)
	seedSearchFixture(t, profileRepo)

	// % is not escaped, so it keeps its LIKE meaning and matches everything.
	results, err := searchRepo.Search(context.Background(), "%")
	require.NoError(t, err)
	assert.Len(t, results.Profile, 1)
	assert.Len(t, results.Projects, 3)
	assert.NotEmpty(t, results.Skills)
}
