package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/Aanjaneya24/me-api-playground/adapters/persistence"
	profileUC "github.com/Aanjaneya24/me-api-playground/internal/application/usecase/profile"
	searchUC "github.com/Aanjaneya24/me-api-playground/internal/application/usecase/search"
	"github.com/Aanjaneya24/me-api-playground/pkg/logger"
)

type APIE2ETestSuite struct {
	suite.Suite
	store  *persistence.Store
	router *gin.Engine
}

func (s *APIE2ETestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	store, err := persistence.NewStore(":memory:", log)
	s.Require().NoError(err)
	s.store = store

	profileRepo := persistence.NewProfileRepo(store, log)
	searchRepo := persistence.NewSearchRepo(store, log)

	profileHandler := NewProfileHandler(profileUC.NewProfileUseCase(profileRepo, log), log)
	searchHandler := NewSearchHandler(searchUC.NewSearchUseCase(searchRepo, log), log)

	s.router = NewRouter(profileHandler, searchHandler, log, []string{"*"})
}

func (s *APIE2ETestSuite) TearDownTest() {
	_ = s.store.Close()
}

func (s *APIE2ETestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *APIE2ETestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *APIE2ETestSuite) createSampleProfile() {
	rec := s.do(http.MethodPost, "/api/profile", map[string]any{
		"name":      "John Doe",
		"email":     "john.doe@example.com",
		"education": "B.Tech",
		"skills":    []string{"Go", "SQL"},
		"projects": []map[string]string{
			{"title": "Weather Dashboard", "description": "Forecasting app"},
		},
		"work": []map[string]string{
			{"company": "Acme", "position": "Engineer"},
		},
		"links": map[string]string{"github": "https://github.com/john"},
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *APIE2ETestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/api/health", nil)
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]string
	s.decode(rec, &body)
	s.Equal("OK", body["status"])
}

func (s *APIE2ETestSuite) TestGetProfile_NotFound() {
	rec := s.do(http.MethodGet, "/api/profile", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APIE2ETestSuite) TestCreateProfile_MissingEmail() {
	rec := s.do(http.MethodPost, "/api/profile", map[string]any{"name": "John"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APIE2ETestSuite) TestCreateProfile_ThenGet() {
	s.createSampleProfile()

	rec := s.do(http.MethodGet, "/api/profile", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Name   string   `json:"name"`
		Email  string   `json:"email"`
		Skills []string `json:"skills"`
		Links  struct {
			Github string `json:"github"`
		} `json:"links"`
	}
	s.decode(rec, &body)
	s.Equal("John Doe", body.Name)
	s.Equal("john.doe@example.com", body.Email)
	s.ElementsMatch([]string{"Go", "SQL"}, body.Skills)
	s.Equal("https://github.com/john", body.Links.Github)
}

func (s *APIE2ETestSuite) TestCreateProfile_ConflictOnSecondCreate() {
	s.createSampleProfile()

	rec := s.do(http.MethodPost, "/api/profile", map[string]any{
		"name":  "Other",
		"email": "other@example.com",
	})
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *APIE2ETestSuite) TestUpdateProfile_NotFound() {
	rec := s.do(http.MethodPut, "/api/profile", map[string]any{"name": "New"})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APIE2ETestSuite) TestUpdateProfile_ReplacesSkillsAndKeepsScalars() {
	s.createSampleProfile()

	rec := s.do(http.MethodPut, "/api/profile", map[string]any{
		"skills": []string{"Rust"},
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/profile", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Name   string   `json:"name"`
		Skills []string `json:"skills"`
	}
	s.decode(rec, &body)
	s.Equal("John Doe", body.Name)
	s.Equal([]string{"Rust"}, body.Skills)
}

func (s *APIE2ETestSuite) TestUpdateProfile_EmptyBodyChangesNothing() {
	s.createSampleProfile()

	rec := s.do(http.MethodPut, "/api/profile", map[string]any{})
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/profile", nil)
	var body struct {
		Name   string   `json:"name"`
		Skills []string `json:"skills"`
	}
	s.decode(rec, &body)
	s.Equal("John Doe", body.Name)
	s.ElementsMatch([]string{"Go", "SQL"}, body.Skills)
}

func (s *APIE2ETestSuite) TestListSkills() {
	s.createSampleProfile()

	rec := s.do(http.MethodGet, "/api/skills", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var skills []string
	s.decode(rec, &skills)
	s.Equal([]string{"Go", "SQL"}, skills)
}

func (s *APIE2ETestSuite) TestListProjects_Filtered() {
	s.createSampleProfile()

	rec := s.do(http.MethodGet, "/api/projects?q=weather", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var projects []map[string]any
	s.decode(rec, &projects)
	s.Require().Len(projects, 1)
	s.Equal("Weather Dashboard", projects[0]["title"])

	rec = s.do(http.MethodGet, "/api/projects?q=zzz-no-match", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &projects)
	s.Empty(projects)
}

func (s *APIE2ETestSuite) TestGlobalSearch_RequiresQuery() {
	rec := s.do(http.MethodGet, "/api/search", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APIE2ETestSuite) TestGlobalSearch_AllSlotsAlwaysPresent() {
	s.createSampleProfile()

	rec := s.do(http.MethodGet, "/api/search?q=zzz-no-match", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	s.decode(rec, &body)
	for _, slot := range []string{"profile", "skills", "projects", "work"} {
		s.Require().Contains(body, slot)
		s.Equal("[]", string(body[slot]), "slot %q must be an empty array, not null", slot)
	}
}

func (s *APIE2ETestSuite) TestGlobalSearch_Matches() {
	s.createSampleProfile()

	rec := s.do(http.MethodGet, "/api/search?q=john", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Profile []map[string]string `json:"profile"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Profile, 1)
	s.Equal("John Doe", body.Profile[0]["name"])
}

func (s *APIE2ETestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/nope", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	var body map[string]string
	s.decode(rec, &body)
	s.Equal("Endpoint not found", body["error"])
}

func TestAPIE2ETestSuite(t *testing.T) {
	suite.Run(t, new(APIE2ETestSuite))
}
