package controllers

import (
	"giftly/internal/models/request_models"
	"giftly/internal/services"
	"giftly/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RecommendController struct {
	recommendService services.RecommendServiceInterface
}

func NewRecommendController(recommendService services.RecommendServiceInterface) *RecommendController {
	return &RecommendController{
		recommendService: recommendService,
	}
}

// Recommend godoc
// @Summary Get gift recommendations
// @Description Run the recommendation pipeline for a quiz form
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body request_models.QuizForm true "Quiz answers"
// @Success 200 {object} response_models.RecommendResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /recommend [post]
func (r *RecommendController) Recommend(c *gin.Context) {
	var form request_models.QuizForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	form.Normalize()

	result, err := r.recommendService.Recommend(c.Request.Context(), form)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Recommendations generated successfully")
}

// GetSession godoc
// @Summary Get a past recommendation session
// @Description Fetch a stored session by id
// @Tags Recommendations
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /sessions/{id} [get]
func (r *RecommendController) GetSession(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session id is required")
		return
	}

	session, err := r.recommendService.GetSession(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session fetched successfully")
}
