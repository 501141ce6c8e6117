package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"giftly/internal/models/db_models"
	"giftly/internal/models/request_models"
	"giftly/internal/models/response_models"
	"giftly/internal/repositories"
	mem "giftly/pkg/memcache"
)

// fakeProductRepo serves canned products and mirrors the SQL filter
// semantics of the real repository: active+locale+price overlap, with
// OR-combined substring terms.
type fakeProductRepo struct {
	products []db_models.Product
	failWith error
}

func (f *fakeProductRepo) FindActiveProducts(_ context.Context, filter repositories.ProductFilter) ([]db_models.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []db_models.Product
	for _, p := range f.products {
		if !p.Active || p.Locale != filter.Locale {
			continue
		}
		if p.PriceMax < filter.BudgetMin || p.PriceMin > filter.BudgetMax {
			continue
		}
		if len(filter.Terms) > 0 && !matchesAnyTerm(p, filter.Terms) {
			continue
		}
		out = append(out, p)
		if len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func matchesAnyTerm(p db_models.Product, terms []string) bool {
	haystack := strings.ToLower(p.Title + " " + p.Category + " " + p.Tags)
	for _, term := range terms {
		if strings.Contains(haystack, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func (f *fakeProductRepo) ListByIDs(_ context.Context, ids []string) ([]db_models.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []db_models.Product
	for _, p := range f.products {
		if _, ok := want[p.ID.String()]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*db_models.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.products {
		if f.products[i].ID.String() == id {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List(_ context.Context, page, pageSize int) ([]db_models.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	start := (page - 1) * pageSize
	if start >= len(f.products) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(f.products) {
		end = len(f.products)
	}
	return f.products[start:end], nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *db_models.Product) (uuid.UUID, error) {
	if f.failWith != nil {
		return uuid.Nil, f.failWith
	}
	product.ID = uuid.New()
	f.products = append(f.products, *product)
	return product.ID, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *db_models.Product) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.products {
		if f.products[i].ID == product.ID {
			f.products[i] = *product
			return nil
		}
	}
	return fmt.Errorf("not found")
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeProductRepo) CountActive(_ context.Context) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var count int64
	for _, p := range f.products {
		if p.Active {
			count++
		}
	}
	return count, nil
}

func (f *fakeProductRepo) TopCategories(_ context.Context, limit int) ([]repositories.CategoryCountRow, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	counts := map[string]int64{}
	var order []string
	for _, p := range f.products {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}
	var rows []repositories.CategoryCountRow
	for _, category := range order {
		rows = append(rows, repositories.CategoryCountRow{Category: category, Count: counts[category]})
		if len(rows) == limit {
			break
		}
	}
	return rows, nil
}

type fakeSessionRepo struct {
	sessions []*db_models.Session
	failWith error
}

func (f *fakeSessionRepo) Create(_ context.Context, session *db_models.Session) error {
	if f.failWith != nil {
		return f.failWith
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id string) (*db_models.Session, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, s := range f.sessions {
		if s.ID.String() == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.sessions)), nil
}

type fakeResultCache struct {
	data map[string]mem.CachedRecommendation
}

func newFakeResultCache() *fakeResultCache {
	return &fakeResultCache{data: map[string]mem.CachedRecommendation{}}
}

func (f *fakeResultCache) Set(formHash string, value mem.CachedRecommendation, _ time.Duration) {
	f.data[formHash] = value
}

func (f *fakeResultCache) Get(formHash string) (mem.CachedRecommendation, bool) {
	value, ok := f.data[formHash]
	return value, ok
}

// fakeAIClient scripts the remote collaborator.
type fakeAIClient struct {
	profile    response_models.RecipientProfile
	profileErr error
	result     response_models.RecommendResult
	rerankErr  error
	calls      int
}

func (f *fakeAIClient) BuildProfile(_ context.Context, _ request_models.QuizForm) (response_models.RecipientProfile, error) {
	if f.profileErr != nil {
		return response_models.RecipientProfile{}, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeAIClient) Rerank(_ context.Context, _ response_models.RecipientProfile, _ []response_models.CandidateProduct) (response_models.RecommendResult, error) {
	f.calls++
	if f.rerankErr != nil {
		return response_models.RecommendResult{}, f.rerankErr
	}
	return f.result, nil
}

// fakeScorer returns fixed scores, or an error when scripted to fail.
type fakeScorer struct {
	scores   []float64
	failWith error
}

func (f *fakeScorer) Score(features [][]float64) ([]float64, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if len(f.scores) >= len(features) {
		return f.scores[:len(features)], nil
	}
	return f.scores, nil
}

func candidateFixture(id, title, category, tags string, priceMin, priceMax int) response_models.CandidateProduct {
	return response_models.CandidateProduct{
		ID:        id,
		Title:     title,
		Category:  category,
		Tags:      strings.Split(tags, "|"),
		PriceMin:  priceMin,
		PriceMax:  priceMax,
		AmazonURL: "https://example.com/" + id,
	}
}

func productFixture(title, category, tags string, priceMin, priceMax int) db_models.Product {
	return db_models.Product{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Title:       title,
		Description: title + " description",
		Category:    category,
		Tags:        tags,
		PriceMin:    priceMin,
		PriceMax:    priceMax,
		AmazonURL:   "https://example.com/p",
		Locale:      "US",
		Active:      true,
	}
}
