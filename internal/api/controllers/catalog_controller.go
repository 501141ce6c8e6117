package controllers

import (
	"giftly/internal/models/request_models"
	"giftly/internal/services"
	"giftly/pkg/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetProduct godoc
// @Summary Get a product
// @Description Fetch a single catalog product by id
// @Tags Catalog
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} response_models.CandidateProduct
// @Failure 404 {object} utils.APIResponse
// @Router /products/{id} [get]
func (p *CatalogController) GetProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Product id is required")
		return
	}

	product, err := p.catalogService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Product fetched successfully")
}

// ListProducts godoc
// @Summary List products
// @Description Fetch a paginated list of catalog products
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /products [get]
func (p *CatalogController) ListProducts(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	products, err := p.catalogService.ListProducts(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Products fetched successfully")
}

// CreateProduct godoc
// @Summary Create a product
// @Description Add a product to the catalog (admin only)
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.CreateProductRequest true "Product payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /products [post]
func (p *CatalogController) CreateProduct(c *gin.Context) {
	var req request_models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := p.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Product created successfully")
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Update catalog product fields (admin only)
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Product id"
// @Param request body request_models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /products/{id} [put]
func (p *CatalogController) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Product id is required")
		return
	}

	var req request_models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.catalogService.UpdateProduct(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Product updated successfully")
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Remove a product from the catalog (admin only)
// @Tags Catalog
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /products/{id} [delete]
func (p *CatalogController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Product id is required")
		return
	}

	if err := p.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Product deleted successfully")
}

// GetStats godoc
// @Summary Get catalog stats
// @Description Product count and top categories; reports offline status on database failure
// @Tags Catalog
// @Produce json
// @Success 200 {object} response_models.SystemStats
// @Router /stats [get]
func (p *CatalogController) GetStats(c *gin.Context) {
	stats := p.catalogService.GetSystemStats(c.Request.Context())
	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}
