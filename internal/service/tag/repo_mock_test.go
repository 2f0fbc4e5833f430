package tag

import (
	"context"
	"sync"

	"github.com/localehub/catalog-backend/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.Tag, error)
	GetByNameFunc    func(ctx context.Context, name string) (*domain.Tag, error)
	ListFunc         func(ctx context.Context) ([]domain.Tag, error)
	SearchByNameFunc func(ctx context.Context, name string) ([]domain.Tag, error)
	MostUsedFunc     func(ctx context.Context, limit int) ([]domain.TagUsage, error)
	ExistsByNameFunc func(ctx context.Context, name string) (bool, error)
	CreateFunc       func(ctx context.Context, t *domain.Tag) (*domain.Tag, error)
	UpdateFunc       func(ctx context.Context, id int64, name string, description *string) (*domain.Tag, error)
	DeleteFunc       func(ctx context.Context, id int64) error

	calls struct {
		GetByID  []int64
		List     int
		MostUsed []int
		Create   []*domain.Tag
		Update   []struct {
			ID   int64
			Name string
		}
		Delete []int64
	}
	mu sync.Mutex
}

func (m *tagRepoMock) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *tagRepoMock) GetByIDCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *tagRepoMock) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	return m.GetByNameFunc(ctx, name)
}

func (m *tagRepoMock) List(ctx context.Context) ([]domain.Tag, error) {
	m.mu.Lock()
	m.calls.List++
	m.mu.Unlock()
	return m.ListFunc(ctx)
}

func (m *tagRepoMock) ListCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.List
}

func (m *tagRepoMock) SearchByName(ctx context.Context, name string) ([]domain.Tag, error) {
	return m.SearchByNameFunc(ctx, name)
}

func (m *tagRepoMock) MostUsed(ctx context.Context, limit int) ([]domain.TagUsage, error) {
	m.mu.Lock()
	m.calls.MostUsed = append(m.calls.MostUsed, limit)
	m.mu.Unlock()
	return m.MostUsedFunc(ctx, limit)
}

func (m *tagRepoMock) MostUsedCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.MostUsed
}

func (m *tagRepoMock) ExistsByName(ctx context.Context, name string) (bool, error) {
	return m.ExistsByNameFunc(ctx, name)
}

func (m *tagRepoMock) Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, t)
	m.mu.Unlock()
	return m.CreateFunc(ctx, t)
}

func (m *tagRepoMock) CreateCalls() []*domain.Tag {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *tagRepoMock) Update(ctx context.Context, id int64, name string, description *string) (*domain.Tag, error) {
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, struct {
		ID   int64
		Name string
	}{id, name})
	m.mu.Unlock()
	return m.UpdateFunc(ctx, id, name, description)
}

func (m *tagRepoMock) UpdateCalls() []struct {
	ID   int64
	Name string
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

func (m *tagRepoMock) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}
