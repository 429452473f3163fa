package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mir-dating/backend/internal/domain"
	"github.com/mir-dating/backend/internal/infrastructure/gemini"
	"github.com/mir-dating/backend/internal/usecase/questionnaire"
)

type QuestionnaireHandler struct {
	questUseCase *questionnaire.QuestionnaireUseCase
}

func NewQuestionnaireHandler(questUseCase *questionnaire.QuestionnaireUseCase) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		questUseCase: questUseCase,
	}
}

// listQuery bounds pagination: limit in [1,100] defaulting to 10,
// offset >= 0 defaulting to 0.
type listQuery struct {
	Limit  int `form:"limit,default=10" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// Create handles POST /questionnaire
// @Summary Create questionnaire
// @Description Submit a new dating profile
// @Tags questionnaire
// @Accept json
// @Produce json
// @Param request body questionnaire.QuestionnaireRequest true "Questionnaire data"
// @Success 201 {object} domain.Questionnaire
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /questionnaire [post]
func (h *QuestionnaireHandler) Create(c *gin.Context) {
	var req questionnaire.QuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	quest, err := h.questUseCase.Create(c.Request.Context(), &req, actorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create questionnaire",
		})
		return
	}

	c.JSON(http.StatusCreated, quest)
}

// List handles GET /questionnaire/list
// @Summary List questionnaires
// @Description List all questionnaires, paginated
// @Tags questionnaire
// @Security CookieAuth
// @Produce json
// @Param limit query int false "Page size (1-100, default 10)"
// @Param offset query int false "Offset from the start (default 0)"
// @Success 200 {array} domain.Questionnaire
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /questionnaire/list [get]
func (h *QuestionnaireHandler) List(c *gin.Context) {
	var query listQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid pagination parameters",
		})
		return
	}

	quests, err := h.questUseCase.List(c.Request.Context(), query.Limit, query.Offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list questionnaires",
		})
		return
	}

	c.JSON(http.StatusOK, quests)
}

// Update handles PATCH /questionnaire/:quest_id
// @Summary Update questionnaire
// @Description Replace every field of a questionnaire, hobbies included
// @Tags questionnaire
// @Accept json
// @Produce json
// @Param quest_id path string true "Questionnaire ID"
// @Param request body questionnaire.QuestionnaireRequest true "New values"
// @Success 200 {object} domain.Questionnaire
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /questionnaire/{quest_id} [patch]
func (h *QuestionnaireHandler) Update(c *gin.Context) {
	questID, err := uuid.Parse(c.Param("quest_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid quest_id",
		})
		return
	}

	var req questionnaire.QuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	quest, err := h.questUseCase.Update(c.Request.Context(), questID, &req, actorID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrQuestionnaireNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "questionnaire not found",
			})
		case errors.Is(err, domain.ErrNotOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "questionnaire belongs to another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to update questionnaire",
			})
		}
		return
	}

	c.JSON(http.StatusOK, quest)
}

// Delete handles DELETE /questionnaire/:quest_id
// @Summary Delete questionnaire
// @Description Remove a questionnaire and its hobbies
// @Tags questionnaire
// @Security CookieAuth
// @Param quest_id path string true "Questionnaire ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /questionnaire/{quest_id} [delete]
func (h *QuestionnaireHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	questID, err := uuid.Parse(c.Param("quest_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid quest_id",
		})
		return
	}

	if err := h.questUseCase.Delete(c.Request.Context(), questID, userID.(int64)); err != nil {
		switch {
		case errors.Is(err, domain.ErrQuestionnaireNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "questionnaire not found",
			})
		case errors.Is(err, domain.ErrNotOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "questionnaire belongs to another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to delete questionnaire",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// SuggestAbout handles POST /questionnaire/suggest-about
// @Summary Suggest about text
// @Description Generate candidate "about" texts for a profile
// @Tags questionnaire
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body questionnaire.SuggestAboutRequest true "Profile hints"
// @Success 200 {object} map[string][]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /questionnaire/suggest-about [post]
func (h *QuestionnaireHandler) SuggestAbout(c *gin.Context) {
	var req questionnaire.SuggestAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	suggestions, err := h.questUseCase.SuggestAbout(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, gemini.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error: "suggestion service unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to generate suggestions",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// actorID returns the authenticated user's id when the route resolved one
func actorID(c *gin.Context) *int64 {
	value, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id, ok := value.(int64)
	if !ok {
		return nil
	}
	return &id
}
