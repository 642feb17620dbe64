package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

const testToken = "test-token"

func init() {
	gin.SetMode(gin.TestMode)
}

// staticAuth принимает только testToken.
type staticAuth struct{}

func (staticAuth) Authenticate(token string) (int64, error) {
	if token == testToken {
		return 1, nil
	}
	return 0, errors.New("invalid token")
}

// memSkills — навыки и выбор «Обо мне» в памяти.
type memSkills struct {
	skills   map[int64]models.Skill
	selected []int64
	writes   int
}

func newMemSkills(names ...string) *memSkills {
	m := &memSkills{skills: make(map[int64]models.Skill)}
	for i, name := range names {
		id := int64(i + 1)
		m.skills[id] = models.Skill{ID: id, Name: name, Level: 50, DisplayOrder: i + 1}
	}
	return m
}

func (m *memSkills) List(context.Context) ([]models.Skill, error) {
	out := make([]models.Skill, 0, len(m.skills))
	for _, s := range m.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (m *memSkills) GetByID(_ context.Context, id int64) (*models.Skill, error) {
	s, ok := m.skills[id]
	if !ok {
		return nil, apperror.ErrSkillNotFound
	}
	return &s, nil
}

func (m *memSkills) ListSelected(context.Context) ([]models.SelectedSkill, error) {
	out := make([]models.SelectedSkill, len(m.selected))
	for i, id := range m.selected {
		s := m.skills[id]
		out[i] = models.SelectedSkill{AboutSkillID: id * 10, SkillID: id, DisplayOrder: i + 1, Name: s.Name, Level: s.Level}
	}
	return out, nil
}

func (m *memSkills) Add(_ context.Context, skillID int64) (*models.AboutSkill, error) {
	for _, id := range m.selected {
		if id == skillID {
			return nil, common.ErrAlreadyExists
		}
	}
	m.writes++
	m.selected = append(m.selected, skillID)
	return &models.AboutSkill{ID: skillID * 10, SkillID: skillID, DisplayOrder: len(m.selected)}, nil
}

func (m *memSkills) Remove(_ context.Context, skillID int64) (bool, error) {
	for i, id := range m.selected {
		if id == skillID {
			m.writes++
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memSkills) ReplaceOrder(_ context.Context, placements []common.Placement) error {
	m.writes++
	sorted := append([]common.Placement(nil), placements...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].DisplayOrder < sorted[j].DisplayOrder })
	m.selected = m.selected[:0]
	for _, p := range sorted {
		m.selected = append(m.selected, p.ID)
	}
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, authorized bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}
