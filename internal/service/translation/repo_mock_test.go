package translation

import (
	"context"
	"sync"

	"github.com/localehub/catalog-backend/internal/domain"
)

var _ translationRepo = &translationRepoMock{}

type translationRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id int64) (*domain.Translation, error)
	GetByKeyAndLocaleFunc    func(ctx context.Context, key, locale string) (*domain.Translation, error)
	ListByLocaleFunc         func(ctx context.Context, locale string) ([]domain.Translation, error)
	ListByTagFunc            func(ctx context.Context, tagName string) ([]domain.Translation, error)
	SearchContentFunc        func(ctx context.Context, term string) ([]domain.Translation, error)
	SearchFunc               func(ctx context.Context, f domain.TranslationFilter) (*domain.Page, error)
	CountByLocaleFunc        func(ctx context.Context, locale string) (int, error)
	ExistsByKeyAndLocaleFunc func(ctx context.Context, key, locale string) (bool, error)
	CreateFunc               func(ctx context.Context, tr *domain.Translation) (*domain.Translation, error)
	UpdateContentFunc        func(ctx context.Context, id int64, content string) (*domain.Translation, error)
	SetTagsFunc              func(ctx context.Context, id int64, tagIDs []int64) error
	DeleteFunc               func(ctx context.Context, id int64) error
	DeleteByLocaleFunc       func(ctx context.Context, locale string) (int, error)

	calls struct {
		GetByID       []int64
		ListByLocale  []string
		Create        []*domain.Translation
		UpdateContent []struct {
			ID      int64
			Content string
		}
		SetTags []struct {
			ID     int64
			TagIDs []int64
		}
		Delete         []int64
		DeleteByLocale []string
	}
	mu sync.Mutex
}

func (m *translationRepoMock) GetByID(ctx context.Context, id int64) (*domain.Translation, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *translationRepoMock) GetByIDCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *translationRepoMock) GetByKeyAndLocale(ctx context.Context, key, locale string) (*domain.Translation, error) {
	return m.GetByKeyAndLocaleFunc(ctx, key, locale)
}

func (m *translationRepoMock) ListByLocale(ctx context.Context, locale string) ([]domain.Translation, error) {
	m.mu.Lock()
	m.calls.ListByLocale = append(m.calls.ListByLocale, locale)
	m.mu.Unlock()
	return m.ListByLocaleFunc(ctx, locale)
}

func (m *translationRepoMock) ListByLocaleCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ListByLocale
}

func (m *translationRepoMock) ListByTag(ctx context.Context, tagName string) ([]domain.Translation, error) {
	return m.ListByTagFunc(ctx, tagName)
}

func (m *translationRepoMock) SearchContent(ctx context.Context, term string) ([]domain.Translation, error) {
	return m.SearchContentFunc(ctx, term)
}

func (m *translationRepoMock) Search(ctx context.Context, f domain.TranslationFilter) (*domain.Page, error) {
	return m.SearchFunc(ctx, f)
}

func (m *translationRepoMock) CountByLocale(ctx context.Context, locale string) (int, error) {
	return m.CountByLocaleFunc(ctx, locale)
}

func (m *translationRepoMock) ExistsByKeyAndLocale(ctx context.Context, key, locale string) (bool, error) {
	return m.ExistsByKeyAndLocaleFunc(ctx, key, locale)
}

func (m *translationRepoMock) Create(ctx context.Context, tr *domain.Translation) (*domain.Translation, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, tr)
	m.mu.Unlock()
	return m.CreateFunc(ctx, tr)
}

func (m *translationRepoMock) CreateCalls() []*domain.Translation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *translationRepoMock) UpdateContent(ctx context.Context, id int64, content string) (*domain.Translation, error) {
	m.mu.Lock()
	m.calls.UpdateContent = append(m.calls.UpdateContent, struct {
		ID      int64
		Content string
	}{id, content})
	m.mu.Unlock()
	return m.UpdateContentFunc(ctx, id, content)
}

func (m *translationRepoMock) SetTags(ctx context.Context, id int64, tagIDs []int64) error {
	m.mu.Lock()
	m.calls.SetTags = append(m.calls.SetTags, struct {
		ID     int64
		TagIDs []int64
	}{id, tagIDs})
	m.mu.Unlock()
	return m.SetTagsFunc(ctx, id, tagIDs)
}

func (m *translationRepoMock) SetTagsCalls() []struct {
	ID     int64
	TagIDs []int64
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetTags
}

func (m *translationRepoMock) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *translationRepoMock) DeleteByLocale(ctx context.Context, locale string) (int, error) {
	m.mu.Lock()
	m.calls.DeleteByLocale = append(m.calls.DeleteByLocale, locale)
	m.mu.Unlock()
	return m.DeleteByLocaleFunc(ctx, locale)
}

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, name string, description *string) (*domain.Tag, error)

	calls struct {
		GetOrCreate []string
	}
	mu sync.Mutex
}

func (m *tagRepoMock) GetOrCreate(ctx context.Context, name string, description *string) (*domain.Tag, error) {
	m.mu.Lock()
	m.calls.GetOrCreate = append(m.calls.GetOrCreate, name)
	m.mu.Unlock()
	return m.GetOrCreateFunc(ctx, name, description)
}

func (m *tagRepoMock) GetOrCreateCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetOrCreate
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTxFunc(ctx, fn)
}
