package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	searchUC "github.com/Aanjaneya24/me-api-playground/internal/application/usecase/search"
	"github.com/Aanjaneya24/me-api-playground/pkg/logger"
)

type SearchHandler struct {
	searchUseCase *searchUC.SearchUseCase
	logger        logger.Logger
}

func NewSearchHandler(uc *searchUC.SearchUseCase, log logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchUseCase: uc,
		logger:        log,
	}
}

func (h *SearchHandler) ListSkills(c *gin.Context) {
	output, err := h.searchUseCase.ExecuteListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Skills)
}

func (h *SearchHandler) ListProjects(c *gin.Context) {
	input := searchUC.ListProjectsInput{Query: c.Query("q")}
	output, err := h.searchUseCase.ExecuteListProjects(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toProjectDTOs(output.Projects))
}

func (h *SearchHandler) GlobalSearch(c *gin.Context) {
	input := searchUC.GlobalSearchInput{Query: c.Query("q")}
	output, err := h.searchUseCase.ExecuteGlobalSearch(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToSearchResultsDTO(output.Results))
}
