package service

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"sync"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// fakeCatalog — хранилище навыков, категорий и выбора «Обо мне» в памяти.
// Повторяет поведение SQL-репозиториев: порядок 1..n, каскад при удалении навыка.
type fakeCatalog struct {
	mu         sync.Mutex
	nextID     int64
	skills     map[int64]*models.Skill
	categories map[int64]*models.SkillCategory
	about      []models.AboutSkill

	replaceCalls int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		skills:     make(map[int64]*models.Skill),
		categories: make(map[int64]*models.SkillCategory),
	}
}

func (f *fakeCatalog) id() int64 {
	f.nextID++
	return f.nextID
}

// addSkill кладёт навык напрямую, минуя сервис.
func (f *fakeCatalog) addSkill(name string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.id()
	f.skills[id] = &models.Skill{ID: id, Name: name, Level: 50, DisplayOrder: len(f.skills) + 1}
	return id
}

// skill repository

type fakeSkillRepo struct{ *fakeCatalog }

func (r fakeSkillRepo) List(ctx context.Context) ([]models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r fakeSkillRepo) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.skills[id]
	if !ok {
		return nil, apperror.ErrSkillNotFound
	}
	cp := *s
	return &cp, nil
}

func (r fakeSkillRepo) Create(ctx context.Context, s *models.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.id()
	if s.DisplayOrder == 0 {
		s.DisplayOrder = len(r.skills) + 1
	}
	cp := *s
	r.skills[s.ID] = &cp
	return nil
}

func (r fakeSkillRepo) Update(ctx context.Context, s *models.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[s.ID]; !ok {
		return apperror.ErrSkillNotFound
	}
	cp := *s
	r.skills[s.ID] = &cp
	return nil
}

func (r fakeSkillRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[id]; !ok {
		return apperror.ErrSkillNotFound
	}
	delete(r.skills, id)
	r.removeSelection(id)
	return nil
}

func (r fakeSkillRepo) Reorder(ctx context.Context, placements []common.Placement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range placements {
		s, ok := r.skills[p.ID]
		if !ok {
			return common.ErrNotFound
		}
		s.DisplayOrder = p.DisplayOrder
	}
	return nil
}

// about skill repository

type fakeAboutRepo struct{ *fakeCatalog }

func (r fakeAboutRepo) ListSelected(ctx context.Context) ([]models.SelectedSkill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := append([]models.AboutSkill(nil), r.about...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].DisplayOrder < rows[j].DisplayOrder })

	out := make([]models.SelectedSkill, 0, len(rows))
	for _, row := range rows {
		s := r.skills[row.SkillID]
		out = append(out, models.SelectedSkill{
			AboutSkillID: row.ID,
			SkillID:      row.SkillID,
			DisplayOrder: row.DisplayOrder,
			Name:         s.Name,
			Level:        s.Level,
			Icon:         s.Icon,
			Category:     s.Category,
		})
	}
	return out, nil
}

func (r fakeAboutRepo) Add(ctx context.Context, skillID int64) (*models.AboutSkill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[skillID]; !ok {
		return nil, common.ErrReferenced
	}
	maxOrder := 0
	for _, row := range r.about {
		if row.SkillID == skillID {
			return nil, common.ErrAlreadyExists
		}
		if row.DisplayOrder > maxOrder {
			maxOrder = row.DisplayOrder
		}
	}
	row := models.AboutSkill{ID: r.id(), SkillID: skillID, DisplayOrder: maxOrder + 1}
	r.about = append(r.about, row)
	return &row, nil
}

func (r fakeAboutRepo) Remove(ctx context.Context, skillID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeSelection(skillID), nil
}

func (r fakeAboutRepo) ReplaceOrder(ctx context.Context, placements []common.Placement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaceCalls++
	next := append([]models.AboutSkill(nil), r.about...)
	for _, p := range placements {
		found := false
		for i := range next {
			if next[i].SkillID == p.ID {
				next[i].DisplayOrder = p.DisplayOrder
				found = true
			}
		}
		if !found {
			return common.ErrNotFound
		}
	}
	r.about = next
	return nil
}

// removeSelection удаляет строку выбора и сжимает порядок. Вызывается под mu.
func (f *fakeCatalog) removeSelection(skillID int64) bool {
	idx := -1
	for i, row := range f.about {
		if row.SkillID == skillID {
			idx = i
		}
	}
	if idx < 0 {
		return false
	}
	f.about = append(f.about[:idx], f.about[idx+1:]...)
	sort.Slice(f.about, func(i, j int) bool { return f.about[i].DisplayOrder < f.about[j].DisplayOrder })
	for i := range f.about {
		f.about[i].DisplayOrder = i + 1
	}
	return true
}

// category repository

type fakeCategoryRepo struct{ *fakeCatalog }

func (r fakeCategoryRepo) List(ctx context.Context, activeOnly bool) ([]models.SkillCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.SkillCategory{}
	for _, c := range r.categories {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*models.SkillCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, apperror.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.SkillCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperror.ErrCategoryNotFound
}

func (r fakeCategoryRepo) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeCategoryRepo) Create(ctx context.Context, c *models.SkillCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.id()
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r fakeCategoryRepo) Update(ctx context.Context, c *models.SkillCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[c.ID]; !ok {
		return apperror.ErrCategoryNotFound
	}
	cp := *c
	r.categories[c.ID] = &cp
	// slug навыка вычисляется из category_id
	for _, s := range r.skills {
		if s.CategoryID != nil && *s.CategoryID == c.ID {
			s.Category = c.Slug
		}
	}
	return nil
}

func (r fakeCategoryRepo) CountSkills(ctx context.Context, categoryID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, s := range r.skills {
		if s.CategoryID != nil && *s.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r fakeCategoryRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return apperror.ErrCategoryNotFound
	}
	for _, s := range r.skills {
		if s.CategoryID != nil && *s.CategoryID == id {
			return common.ErrReferenced
		}
	}
	delete(r.categories, id)
	return nil
}

// section repository

type fakeSectionRepo struct {
	mu       sync.Mutex
	sections map[models.SectionKey]json.RawMessage
}

func newFakeSectionRepo() *fakeSectionRepo {
	return &fakeSectionRepo{sections: make(map[models.SectionKey]json.RawMessage)}
}

func (r *fakeSectionRepo) Get(ctx context.Context, key models.SectionKey) (json.RawMessage, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.sections[key]
	return raw, ok, nil
}

func (r *fakeSectionRepo) Upsert(ctx context.Context, key models.SectionKey, content json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sections[key] = append(json.RawMessage(nil), content...)
	return nil
}

// collections

type fakeCollection[T any] struct {
	mu     sync.Mutex
	nextID int64
	items  []T
	id     func(*T) *int64
	order  func(*T) *int
}

func (c *fakeCollection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := append([]T{}, c.items...)
	sort.SliceStable(out, func(i, j int) bool { return *c.order(&out[i]) < *c.order(&out[j]) })
	return out, nil
}

func (c *fakeCollection[T]) find(id int64) int {
	for i := range c.items {
		if *c.id(&c.items[i]) == id {
			return i
		}
	}
	return -1
}

func (c *fakeCollection[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.find(id)
	if idx < 0 {
		return nil, apperror.NotFound("не найдено")
	}
	cp := c.items[idx]
	return &cp, nil
}

func (c *fakeCollection[T]) Create(ctx context.Context, item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	*c.id(item) = c.nextID
	if *c.order(item) == 0 {
		*c.order(item) = len(c.items) + 1
	}
	c.items = append(c.items, *item)
	return nil
}

func (c *fakeCollection[T]) Update(ctx context.Context, item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.find(*c.id(item))
	if idx < 0 {
		return apperror.NotFound("не найдено")
	}
	c.items[idx] = *item
	return nil
}

func (c *fakeCollection[T]) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.find(id)
	if idx < 0 {
		return apperror.NotFound("не найдено")
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return nil
}

func (c *fakeCollection[T]) Reorder(ctx context.Context, placements []common.Placement) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range placements {
		idx := c.find(p.ID)
		if idx < 0 {
			return common.ErrNotFound
		}
		*c.order(&c.items[idx]) = p.DisplayOrder
	}
	return nil
}

type fakeProjectRepo struct {
	*fakeCollection[models.Project]
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{&fakeCollection[models.Project]{
		id:    func(p *models.Project) *int64 { return &p.ID },
		order: func(p *models.Project) *int { return &p.DisplayOrder },
	}}
}

func (r *fakeProjectRepo) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.Slug == slug {
			cp := p
			return &cp, nil
		}
	}
	return nil, apperror.ErrProjectNotFound
}

func (r *fakeProjectRepo) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func newFakeExperienceRepo() *fakeCollection[models.Experience] {
	return &fakeCollection[models.Experience]{
		id:    func(e *models.Experience) *int64 { return &e.ID },
		order: func(e *models.Experience) *int { return &e.DisplayOrder },
	}
}

func newFakeTestimonialRepo() *fakeCollection[models.Testimonial] {
	return &fakeCollection[models.Testimonial]{
		id:    func(t *models.Testimonial) *int64 { return &t.ID },
		order: func(t *models.Testimonial) *int { return &t.DisplayOrder },
	}
}

// fixture — все сервисы каталога поверх одного fakeCatalog.
type fixture struct {
	catalog      *fakeCatalog
	sectionRepo  *fakeSectionRepo
	projectRepo  *fakeProjectRepo
	about        *AboutSkillService
	categories   *CategoryService
	skills       *SkillService
	sections     *SectionService
	projects     *ProjectService
	experiences  *ExperienceService
	testimonials *TestimonialService
}

func newFixture() *fixture {
	catalog := newFakeCatalog()
	sectionRepo := newFakeSectionRepo()
	projectRepo := newFakeProjectRepo()
	return &fixture{
		catalog:      catalog,
		sectionRepo:  sectionRepo,
		projectRepo:  projectRepo,
		about:        NewAboutSkillService(fakeAboutRepo{catalog}, fakeSkillRepo{catalog}),
		categories:   NewCategoryService(fakeCategoryRepo{catalog}),
		skills:       NewSkillService(fakeSkillRepo{catalog}, fakeCategoryRepo{catalog}),
		sections:     NewSectionService(sectionRepo),
		projects:     NewProjectService(projectRepo),
		experiences:  NewExperienceService(newFakeExperienceRepo()),
		testimonials: NewTestimonialService(newFakeTestimonialRepo()),
	}
}

// orderOf возвращает выбор в виде "Имя:позиция".
func orderOf(selected []models.SelectedSkill) []string {
	out := make([]string, len(selected))
	for i, s := range selected {
		out[i] = s.Name + ":" + strconv.Itoa(s.DisplayOrder)
	}
	return out
}
