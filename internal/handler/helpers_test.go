package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"myapp/config"
	"myapp/internal/apperr"
	"myapp/internal/models"
)

// ---- фейки ----

type fakeUsers struct {
	users  map[int]models.User
	nextID int
	err    error // если задана, возвращается из всех методов
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[int]models.User{}, nextID: 1}
}

func (f *fakeUsers) GetAll(ctx context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.User{}
	for _, u := range f.users {
		u.Password = ""
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id int) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	u.Password = ""
	return &u, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Create(ctx context.Context, name, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u := models.User{ID: f.nextID, Name: name, Email: email}
	f.users[u.ID] = u
	f.nextID++
	return &u, nil
}

func (f *fakeUsers) CreateWithPassword(ctx context.Context, name, email, passwordHash string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	u := models.User{ID: f.nextID, Name: name, Email: email, Password: passwordHash}
	f.users[u.ID] = u
	f.nextID++
	return u.ID, nil
}

func (f *fakeUsers) Update(ctx context.Context, id int, input models.UpdateUserInput) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	f.users[id] = u
	u.Password = ""
	return &u, nil
}

func (f *fakeUsers) Remove(ctx context.Context, id int) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

type fakeOrders struct {
	orders []models.Order
	nextID int
	err    error
}

func (f *fakeOrders) GetAll(ctx context.Context) ([]models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

func (f *fakeOrders) Create(ctx context.Context, input models.CreateOrderInput) (*models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.nextID == 0 {
		f.nextID = 1
	}
	o := models.Order{ID: f.nextID, Customer: input.Customer, Total: input.Total, Date: input.Date}
	f.orders = append(f.orders, o)
	f.nextID++
	return &o, nil
}

type fakeProducts struct {
	products []models.Product
	err      error
}

func (f *fakeProducts) GetAll(ctx context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeProducts) GetByID(ctx context.Context, id int) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperr.ErrNotFound
}

type fakeSubjects struct {
	subjects []models.CombinedSubject
	err      error
}

func (f *fakeSubjects) FetchAllSubjects(ctx context.Context) ([]models.CombinedSubject, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.subjects, nil
}

// ---- общая обвязка ----

type testEnv struct {
	users    *fakeUsers
	orders   *fakeOrders
	products *fakeProducts
	subjects *fakeSubjects
	cfg      *config.Config
	router   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users:    newFakeUsers(),
		orders:   &fakeOrders{},
		products: &fakeProducts{},
		subjects: &fakeSubjects{},
		cfg: &config.Config{
			JWTSecret:     "test_secret",
			JWTExpiration: time.Hour,
		},
	}
	h := NewHandler(env.users, env.orders, env.products, env.subjects, env.cfg)
	env.router = NewRouter(h)
	return env
}

// doRequest гоняет запрос через реальный роутер
func (e *testEnv) doRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
	}
}
