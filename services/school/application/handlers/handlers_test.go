package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/schoolsvc/pkg/config"
	"github.com/ghuser/schoolsvc/pkg/logger"
	appsvcs "github.com/ghuser/schoolsvc/services/school/application/services"
	schooldomain "github.com/ghuser/schoolsvc/services/school/domain"
	"github.com/ghuser/schoolsvc/services/school/domain/models"
	"github.com/ghuser/schoolsvc/services/school/domain/query"
	"github.com/ghuser/schoolsvc/services/school/domain/repositories"
)

// fakeRepository is a minimal in-memory SchoolRepository for endpoint tests.
type fakeRepository struct {
	nextID int64
	rows   map[int64]models.School
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, rows: map[int64]models.School{}}
}

func (f *fakeRepository) FindAll(ctx context.Context, page repositories.PageRequest) (repositories.Page, error) {
	return f.FindAllMatching(ctx, query.Predicate{}, page)
}

func (f *fakeRepository) FindOne(_ context.Context, pred query.Predicate) (*models.School, error) {
	for _, s := range f.sorted() {
		if f.matches(s, pred) {
			out := s
			return &out, nil
		}
	}
	return nil, fmt.Errorf("find school: %w", schooldomain.ErrSchoolNotFound)
}

func (f *fakeRepository) FindAllMatching(_ context.Context, pred query.Predicate, page repositories.PageRequest) (repositories.Page, error) {
	var matched []models.School
	for _, s := range f.sorted() {
		if f.matches(s, pred) {
			matched = append(matched, s)
		}
	}
	result := repositories.Page{
		TotalElements: len(matched),
		Number:        page.Number,
		Size:          page.Size,
	}
	start := page.Offset()
	if start >= len(matched) {
		return result, nil
	}
	end := min(start+page.Size, len(matched))
	for _, s := range matched[start:end] {
		out := s
		result.Content = append(result.Content, &out)
	}
	return result, nil
}

func (f *fakeRepository) Save(_ context.Context, school *models.School) (*models.School, error) {
	now := time.Now().UTC()
	saved := *school
	if saved.ID == 0 {
		saved.ID = f.nextID
		f.nextID++
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now
	f.rows[saved.ID] = saved
	out := saved
	return &out, nil
}

func (f *fakeRepository) sorted() []models.School {
	out := make([]models.School, 0, len(f.rows))
	for _, s := range f.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeRepository) matches(s models.School, pred query.Predicate) bool {
	if pred.ID != nil && s.ID != *pred.ID {
		return false
	}
	if pred.Active != nil && s.Active != *pred.Active {
		return false
	}
	return true
}

// newTestRouter wires the school endpoints against an in-memory repository
// with no event publisher.
func newTestRouter(repo repositories.SchoolRepository) *chi.Mux {
	log := logger.New(&config.Config{LogLevel: "error"})
	svcs := &appsvcs.Services{School: appsvcs.NewSchoolService(repo, nil, log)}

	r := chi.NewRouter()
	r.Route("/school", func(r chi.Router) {
		r.Get("/", NewGetSchoolsHandler(svcs).Execute)
		r.Post("/", NewPostSchoolHandler(svcs).Execute)
		r.Route("/{schoolId}", func(r chi.Router) {
			r.Get("/", NewGetSchoolHandler(svcs).Execute)
			r.Put("/", NewPutSchoolHandler(svcs).Execute)
			r.Delete("/", NewDeleteSchoolHandler(svcs).Execute)
		})
	})
	return r
}

func seedSchools(t *testing.T, repo *fakeRepository, count int) {
	t.Helper()
	ctx := context.Background()
	for i := 1; i <= count; i++ {
		name, err := models.NewSchoolName(fmt.Sprintf("%d school", i))
		if err != nil {
			t.Fatalf("seed name %d: %v", i, err)
		}
		if _, err := repo.Save(ctx, models.NewSchool(name)); err != nil {
			t.Fatalf("seed save %d: %v", i, err)
		}
	}
}

func doRequest(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetSchools(t *testing.T) {
	t.Run("empty store returns empty 200 page", func(t *testing.T) {
		r := newTestRouter(newFakeRepository())
		rec := doRequest(r, http.MethodGet, "/school", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp ListSchoolsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.TotalElements != 0 || len(resp.Content) != 0 {
			t.Fatalf("expected empty page, got %+v", resp)
		}
		if resp.Size != 20 || resp.Page != 0 {
			t.Fatalf("expected default paging (page 0, size 20), got %+v", resp)
		}
	})

	t.Run("pages through seeded schools", func(t *testing.T) {
		repo := newFakeRepository()
		seedSchools(t, repo, 41)
		r := newTestRouter(repo)

		rec := doRequest(r, http.MethodGet, "/school?page=4&size=10", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp ListSchoolsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.TotalElements != 41 {
			t.Fatalf("expected total 41, got %d", resp.TotalElements)
		}
		if len(resp.Content) != 1 {
			t.Fatalf("expected 1 row on page 4, got %d", len(resp.Content))
		}
		if resp.Content[0].Name != "41 school" {
			t.Fatalf("expected %q, got %q", "41 school", resp.Content[0].Name)
		}
	})

	t.Run("caps page size at 100", func(t *testing.T) {
		r := newTestRouter(newFakeRepository())
		rec := doRequest(r, http.MethodGet, "/school?size=5000", "")
		var resp ListSchoolsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Size != 100 {
			t.Fatalf("expected capped size 100, got %d", resp.Size)
		}
	})

	t.Run("malformed paging falls back to defaults", func(t *testing.T) {
		r := newTestRouter(newFakeRepository())
		rec := doRequest(r, http.MethodGet, "/school?page=abc&size=-5", "")
		var resp ListSchoolsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Page != 0 || resp.Size != 20 {
			t.Fatalf("expected default paging, got page %d size %d", resp.Page, resp.Size)
		}
	})
}

func TestGetSchool(t *testing.T) {
	t.Run("returns school with published field names", func(t *testing.T) {
		repo := newFakeRepository()
		seedSchools(t, repo, 1)
		r := newTestRouter(repo)

		rec := doRequest(r, http.MethodGet, "/school/1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var raw map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if raw["id_school"] != float64(1) {
			t.Fatalf("expected id_school 1, got %v", raw["id_school"])
		}
		if raw["name"] != "1 school" {
			t.Fatalf("expected name %q, got %v", "1 school", raw["name"])
		}
		if raw["active"] != true {
			t.Fatalf("expected active true, got %v", raw["active"])
		}
	})

	t.Run("unknown id returns 404 with domain code", func(t *testing.T) {
		r := newTestRouter(newFakeRepository())
		rec := doRequest(r, http.MethodGet, "/school/999", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		var resp ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Code != "school.not_found" {
			t.Fatalf("expected code school.not_found, got %q", resp.Code)
		}
	})

	t.Run("non-numeric id returns 404", func(t *testing.T) {
		r := newTestRouter(newFakeRepository())
		rec := doRequest(r, http.MethodGet, "/school/abc", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestPostSchool(t *testing.T) {
	t.Run("valid body returns 202 with no content", func(t *testing.T) {
		repo := newFakeRepository()
		r := newTestRouter(repo)

		rec := doRequest(r, http.MethodPost, "/school", `{"name":"Lincoln High"}`)
		if rec.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", rec.Body.String())
		}

		// Created record is visible through the read path.
		getRec := doRequest(r, http.MethodGet, "/school/1", "")
		if getRec.Code != http.StatusOK {
			t.Fatalf("expected created school to be gettable, got %d", getRec.Code)
		}
	})

	t.Run("missing name returns 400", func(t *testing.T) {
		r := newTestRouter(newFakeRepository())
		rec := doRequest(r, http.MethodPost, "/school", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("name over 255 characters returns 400", func(t *testing.T) {
		r := newTestRouter(newFakeRepository())
		body := fmt.Sprintf(`{"name":%q}`, strings.Repeat("x", 256))
		rec := doRequest(r, http.MethodPost, "/school", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("whitespace-only name returns 400 with domain code", func(t *testing.T) {
		r := newTestRouter(newFakeRepository())
		rec := doRequest(r, http.MethodPost, "/school", `{"name":"   "}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		var resp ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Code != "school.invalid_name" {
			t.Fatalf("expected code school.invalid_name, got %q", resp.Code)
		}
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		r := newTestRouter(newFakeRepository())
		rec := doRequest(r, http.MethodPost, "/school", `{"name":`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestPutSchool(t *testing.T) {
	t.Run("valid update returns 202 and renames", func(t *testing.T) {
		repo := newFakeRepository()
		seedSchools(t, repo, 1)
		r := newTestRouter(repo)

		rec := doRequest(r, http.MethodPut, "/school/1", `{"name":"Renamed School"}`)
		if rec.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", rec.Code)
		}

		getRec := doRequest(r, http.MethodGet, "/school/1", "")
		var resp SchoolResponse
		if err := json.Unmarshal(getRec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Name != "Renamed School" {
			t.Fatalf("expected renamed school, got %q", resp.Name)
		}
		if resp.ID != 1 || !resp.Active {
			t.Fatalf("identity must be preserved, got %+v", resp)
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		r := newTestRouter(newFakeRepository())
		rec := doRequest(r, http.MethodPut, "/school/999", `{"name":"Lincoln High"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("invalid body returns 400", func(t *testing.T) {
		repo := newFakeRepository()
		seedSchools(t, repo, 1)
		r := newTestRouter(repo)

		rec := doRequest(r, http.MethodPut, "/school/1", `{"name":""}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDeleteSchool(t *testing.T) {
	t.Run("delete returns 204 and hides school from reads", func(t *testing.T) {
		repo := newFakeRepository()
		seedSchools(t, repo, 1)
		r := newTestRouter(repo)

		rec := doRequest(r, http.MethodDelete, "/school/1", "")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}

		getRec := doRequest(r, http.MethodGet, "/school/1", "")
		if getRec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", getRec.Code)
		}
	})

	t.Run("deleted school still counts toward listings", func(t *testing.T) {
		repo := newFakeRepository()
		seedSchools(t, repo, 2)
		r := newTestRouter(repo)

		doRequest(r, http.MethodDelete, "/school/1", "")

		rec := doRequest(r, http.MethodGet, "/school", "")
		var resp ListSchoolsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.TotalElements != 2 {
			t.Fatalf("expected total 2 including deleted row, got %d", resp.TotalElements)
		}
		var inactive int
		for _, s := range resp.Content {
			if !s.Active {
				inactive++
			}
		}
		if inactive != 1 {
			t.Fatalf("expected one inactive row in listing, got %d", inactive)
		}
	})

	t.Run("second delete returns 404", func(t *testing.T) {
		repo := newFakeRepository()
		seedSchools(t, repo, 1)
		r := newTestRouter(repo)

		if rec := doRequest(r, http.MethodDelete, "/school/1", ""); rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		rec := doRequest(r, http.MethodDelete, "/school/1", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 on repeat delete, got %d", rec.Code)
		}
	})
}
