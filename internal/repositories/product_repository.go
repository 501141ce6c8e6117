package repositories

import (
	"context"
	"errors"
	"strings"

	"giftly/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter narrows the catalog query. BudgetMin/BudgetMax describe the
// requested budget range; a product qualifies when its own price range
// overlaps it. Terms, when present, are OR-combined case-insensitive
// substring matches over title, category and the raw tags string.
type ProductFilter struct {
	Locale    string
	BudgetMin int
	BudgetMax int
	Terms     []string
	Limit     int
}

type ProductRepository interface {
	FindActiveProducts(ctx context.Context, filter ProductFilter) ([]db_models.Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]db_models.Product, error)

	GetByID(ctx context.Context, id string) (*db_models.Product, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Product, error)
	Create(ctx context.Context, product *db_models.Product) (uuid.UUID, error)
	Update(ctx context.Context, product *db_models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	CountActive(ctx context.Context) (int64, error)
	TopCategories(ctx context.Context, limit int) ([]CategoryCountRow, error)
}

type CategoryCountRow struct {
	Category string `gorm:"column:category"`
	Count    int64  `gorm:"column:count"`
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindActiveProducts(ctx context.Context, filter ProductFilter) ([]db_models.Product, error) {
	query := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("locale = ?", filter.Locale).
		Where("price_max >= ?", filter.BudgetMin).
		Where("price_min <= ?", filter.BudgetMax)

	if len(filter.Terms) > 0 {
		var clauses []string
		var args []interface{}
		for _, term := range filter.Terms {
			pattern := "%" + term + "%"
			clauses = append(clauses, "(title ILIKE ? OR category ILIKE ? OR tags ILIKE ?)")
			args = append(args, pattern, pattern, pattern)
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	var products []db_models.Product
	if err := query.Limit(filter.Limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) ListByIDs(ctx context.Context, ids []string) ([]db_models.Product, error) {
	var products []db_models.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*db_models.Product, error) {
	var product db_models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Product, error) {
	var products []db_models.Product
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Create(ctx context.Context, product *db_models.Product) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return uuid.Nil, err
	}
	return product.ID, nil
}

func (r *productRepository) Update(ctx context.Context, product *db_models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(product)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Product{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *productRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Product{}).
		Where("active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *productRepository) TopCategories(ctx context.Context, limit int) ([]CategoryCountRow, error) {
	var rows []CategoryCountRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Product{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
