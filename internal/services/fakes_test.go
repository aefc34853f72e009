package services

import (
	"sync"
	"time"

	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
)

// --- In-memory хранилище клиентов ---

type fakeClientRepo struct {
	mu      sync.Mutex
	nextID  int
	clients map[string]*models.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*models.Client)}
}

func (r *fakeClientRepo) FindClientByID(id string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	client, ok := r.clients[id]
	if !ok || client.Deleted {
		return nil, repositories.ErrAccountNotFound
	}
	return client, nil
}

func (r *fakeClientRepo) FindByID(id string) (models.Account, error) {
	return r.FindClientByID(id)
}

func (r *fakeClientRepo) FindByEmail(email string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, client := range r.clients {
		if client.Email == email && !client.Deleted {
			return client, nil
		}
	}
	return nil, repositories.ErrAccountNotFound
}

func (r *fakeClientRepo) Create(account models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	client := account.(*models.Client)
	for _, existing := range r.clients {
		if existing.Email == client.Email {
			return repositories.ErrAccountAlreadyExists
		}
	}
	r.nextID++
	client.ID = "client-" + string(rune('0'+r.nextID))
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Save(account models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	client := account.(*models.Client)
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) FindAll(limit, offset int) ([]models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Client
	for _, client := range r.clients {
		if !client.Deleted {
			out = append(out, *client)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) CountAll() (int64, error) {
	clients, _ := r.FindAll(0, 0)
	return int64(len(clients)), nil
}

func (r *fakeClientRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	client, ok := r.clients[id]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	client.Deleted = true
	return nil
}

// --- In-memory журнал отозванных токенов ---

type fakeLedger struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{revoked: make(map[string]time.Time)}
}

func (l *fakeLedger) Record(token string, expiresAt time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.revoked[token] = expiresAt
	return nil
}

func (l *fakeLedger) IsInvalidated(token string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.revoked[token]
	return ok, nil
}

func (l *fakeLedger) DeleteExpired() (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var removed int64
	for token, expiresAt := range l.revoked {
		if expiresAt.Before(time.Now()) {
			delete(l.revoked, token)
			removed++
		}
	}
	return removed, nil
}

// --- In-memory каталог ---

type fakeServiceRepo struct {
	mu       sync.Mutex
	services map[string]*models.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*models.Service)}
}

func (r *fakeServiceRepo) put(service *models.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[service.ID] = service
}

func (r *fakeServiceRepo) FindByID(id string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	service, ok := r.services[id]
	if !ok || service.Deleted {
		return nil, repositories.ErrServiceNotFound
	}
	return service, nil
}

func (r *fakeServiceRepo) FindByIDWithRelations(id string) (*models.Service, error) {
	return r.FindByID(id)
}

func (r *fakeServiceRepo) FindByBusiness(businessID string) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Service
	for _, service := range r.services {
		if service.BusinessID == businessID && !service.Deleted {
			out = append(out, *service)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) FindTopRated(limit int) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Service
	for _, service := range r.services {
		if !service.Deleted {
			out = append(out, *service)
		}
	}
	// Сортировка выбором: наборы в тестах крошечные
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].AvgRating > out[i].AvgRating {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeServiceRepo) FindRelated(categoryID string, limit, offset int) ([]models.Service, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Service
	for _, service := range r.services {
		if service.Deleted {
			continue
		}
		for _, cat := range service.Categories {
			if cat.ID == categoryID {
				matched = append(matched, *service)
				break
			}
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *fakeServiceRepo) Search(query string, limit, offset int) ([]models.Service, int64, error) {
	return nil, 0, nil
}

func (r *fakeServiceRepo) Create(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if service.ID == "" {
		service.ID = "service-" + time.Now().Format("150405.000000000")
	}
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) Save(service *models.Service) error {
	r.put(service)
	return nil
}

func (r *fakeServiceRepo) ReplaceCategories(service *models.Service, categories []models.Category) error {
	service.Categories = categories
	r.put(service)
	return nil
}

func (r *fakeServiceRepo) UpdateRating(serviceID string, avgRating float64, ratingCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	service, ok := r.services[serviceID]
	if !ok {
		return repositories.ErrServiceNotFound
	}
	service.AvgRating = avgRating
	service.RatingCount = ratingCount
	return nil
}

func (r *fakeServiceRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	service, ok := r.services[id]
	if !ok {
		return repositories.ErrServiceNotFound
	}
	service.Deleted = true
	return nil
}

// --- In-memory отзывы ---

type fakeReviewRepo struct {
	mu      sync.Mutex
	nextID  int
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (r *fakeReviewRepo) FindByID(id string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[id]
	if !ok {
		return nil, repositories.ErrReviewNotFound
	}
	return review, nil
}

func (r *fakeReviewRepo) FindByServiceAndClient(serviceID, clientID string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, review := range r.reviews {
		if review.ServiceID == serviceID && review.ClientID == clientID {
			return review, nil
		}
	}
	return nil, repositories.ErrReviewNotFound
}

func (r *fakeReviewRepo) FindByService(serviceID string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for _, review := range r.reviews {
		if review.ServiceID == serviceID {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	if _, err := r.FindByServiceAndClient(review.ServiceID, review.ClientID); err == nil {
		return repositories.ErrReviewAlreadyExists
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	review.ID = "review-" + string(rune('0'+r.nextID))
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) Update(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[review.ID]; !ok {
		return repositories.ErrReviewNotFound
	}
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[id]; !ok {
		return repositories.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) RatingStats(serviceID string) (float64, int, error) {
	reviews, _ := r.FindByService(serviceID)
	if len(reviews) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews)), len(reviews), nil
}

// --- In-memory категории ---

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*models.Category)}
}

func (r *fakeCategoryRepo) put(cat *models.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[cat.ID] = cat
}

func (r *fakeCategoryRepo) FindByID(id string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cat, ok := r.categories[id]
	if !ok || cat.Deleted {
		return nil, repositories.ErrCategoryNotFound
	}
	return cat, nil
}

func (r *fakeCategoryRepo) FindByIDs(ids []string) ([]models.Category, error) {
	var out []models.Category
	for _, id := range ids {
		cat, err := r.FindByID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *cat)
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByType(categoryType models.CategoryType) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Category
	for _, cat := range r.categories {
		if cat.Type == categoryType && !cat.Deleted {
			out = append(out, *cat)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindAll() ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Category
	for _, cat := range r.categories {
		if !cat.Deleted {
			out = append(out, *cat)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Create(cat *models.Category) error {
	if cat.ID == "" {
		cat.ID = "category-" + cat.Title
	}
	r.put(cat)
	return nil
}

func (r *fakeCategoryRepo) Update(cat *models.Category) error {
	if _, err := r.FindByID(cat.ID); err != nil {
		return err
	}
	r.put(cat)
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	cat, err := r.FindByID(id)
	if err != nil {
		return err
	}
	cat.Deleted = true
	return nil
}

// --- In-memory предложения ---

type fakeOfferingRepo struct {
	mu        sync.Mutex
	offerings map[string]*models.Offering
}

func newFakeOfferingRepo() *fakeOfferingRepo {
	return &fakeOfferingRepo{offerings: make(map[string]*models.Offering)}
}

func (r *fakeOfferingRepo) FindByID(id string) (*models.Offering, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	offering, ok := r.offerings[id]
	if !ok || offering.Deleted {
		return nil, repositories.ErrOfferingNotFound
	}
	return offering, nil
}

func (r *fakeOfferingRepo) FindByService(serviceID string) ([]models.Offering, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Offering
	for _, offering := range r.offerings {
		if offering.ServiceID == serviceID && !offering.Deleted {
			out = append(out, *offering)
		}
	}
	return out, nil
}

func (r *fakeOfferingRepo) FindByBranch(branchID string) ([]models.Offering, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Offering
	for _, offering := range r.offerings {
		if offering.BranchID == branchID && !offering.Deleted {
			out = append(out, *offering)
		}
	}
	return out, nil
}

func (r *fakeOfferingRepo) Create(offering *models.Offering) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offering.ID == "" {
		offering.ID = "offering-" + time.Now().Format("150405.000000000")
	}
	r.offerings[offering.ID] = offering
	return nil
}

func (r *fakeOfferingRepo) Update(offering *models.Offering) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.offerings[offering.ID]; !ok {
		return repositories.ErrOfferingNotFound
	}
	r.offerings[offering.ID] = offering
	return nil
}

func (r *fakeOfferingRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	offering, ok := r.offerings[id]
	if !ok {
		return repositories.ErrOfferingNotFound
	}
	offering.Deleted = true
	return nil
}
