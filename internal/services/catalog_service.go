package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"giftly/internal/models/db_models"
	"giftly/internal/models/request_models"
	"giftly/internal/models/response_models"
	"giftly/internal/repositories"
	"giftly/pkg/utils"
)

const topCategoryCount = 5

type CatalogServiceInterface interface {
	GetProductByID(ctx context.Context, id string) (*response_models.CandidateProduct, error)
	ListProducts(ctx context.Context, page, pageSize int) ([]response_models.CandidateProduct, error)
	CreateProduct(ctx context.Context, request request_models.CreateProductRequest) (uuid.UUID, error)
	UpdateProduct(ctx context.Context, id string, request request_models.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id string) error

	// GetSystemStats never fails: on a database error it reports zero
	// counts with an "offline" status instead.
	GetSystemStats(ctx context.Context) response_models.SystemStats
}

type CatalogService struct {
	productRepo repositories.ProductRepository
}

func NewCatalogService(productRepo repositories.ProductRepository) CatalogServiceInterface {
	return &CatalogService{
		productRepo: productRepo,
	}
}

func (s *CatalogService) GetProductByID(ctx context.Context, id string) (*response_models.CandidateProduct, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("product lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	candidate := toCandidateProduct(*product)
	return &candidate, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, page, pageSize int) ([]response_models.CandidateProduct, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	products, err := s.productRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("product list failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	candidates := make([]response_models.CandidateProduct, len(products))
	for i, product := range products {
		candidates[i] = toCandidateProduct(product)
	}
	return candidates, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, request request_models.CreateProductRequest) (uuid.UUID, error) {
	product := &db_models.Product{
		Title:       request.Title,
		Description: request.Description,
		Category:    request.Category,
		Tags:        request.Tags,
		PriceMin:    request.PriceMin,
		PriceMax:    request.PriceMax,
		AmazonURL:   request.AmazonURL,
		ImageURL:    request.ImageURL,
		Locale:      request.Locale,
		Active:      true,
	}
	if request.Active != nil {
		product.Active = *request.Active
	}
	id, err := s.productRepo.Create(ctx, product)
	if err != nil {
		log.Printf("product create failed: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, request request_models.UpdateProductRequest) error {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("product lookup failed: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrProductNotFound
	}

	if request.Title != nil {
		existing.Title = *request.Title
	}
	if request.Description != nil {
		existing.Description = *request.Description
	}
	if request.Category != nil {
		existing.Category = *request.Category
	}
	if request.Tags != nil {
		existing.Tags = *request.Tags
	}
	if request.PriceMin != nil {
		existing.PriceMin = *request.PriceMin
	}
	if request.PriceMax != nil {
		existing.PriceMax = *request.PriceMax
	}
	if request.AmazonURL != nil {
		existing.AmazonURL = *request.AmazonURL
	}
	if request.ImageURL != nil {
		existing.ImageURL = request.ImageURL
	}
	if request.Active != nil {
		existing.Active = *request.Active
	}

	if err := s.productRepo.Update(ctx, existing); err != nil {
		log.Printf("product update failed: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}
	if err := s.productRepo.Delete(ctx, parsed); err != nil {
		log.Printf("product delete failed: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) GetSystemStats(ctx context.Context) response_models.SystemStats {
	offline := response_models.SystemStats{
		ProductCount:  0,
		TopCategories: []response_models.CategoryCount{},
		Status:        "offline",
	}

	count, err := s.productRepo.CountActive(ctx)
	if err != nil {
		log.Printf("stats count failed: %v", err)
		return offline
	}
	rows, err := s.productRepo.TopCategories(ctx, topCategoryCount)
	if err != nil {
		log.Printf("stats categories failed: %v", err)
		return offline
	}

	categories := make([]response_models.CategoryCount, len(rows))
	for i, row := range rows {
		categories[i] = response_models.CategoryCount{
			Category: row.Category,
			Count:    row.Count,
		}
	}
	return response_models.SystemStats{
		ProductCount:  count,
		TopCategories: categories,
		Status:        "online",
	}
}
