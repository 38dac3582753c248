package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"pizza-delivery/models"
	"pizza-delivery/routes"
	"pizza-delivery/utils"
)

type fakeUserStore struct {
	seq   int
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	s.seq++
	user.ID = s.seq
	copied := *user
	s.users[user.Username] = &copied
	return nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) UsernameOrEmailTaken(_ context.Context, username, email string) (bool, error) {
	for _, user := range s.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeOrderStore struct {
	seq    int
	orders map[int]*models.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[int]*models.Order{}}
}

func (s *fakeOrderStore) Create(_ context.Context, order *models.Order) error {
	s.seq++
	order.ID = s.seq
	copied := *order
	s.orders[order.ID] = &copied
	return nil
}

func (s *fakeOrderStore) FindAll(_ context.Context) ([]models.Order, error) {
	all := []models.Order{}
	for _, order := range s.orders {
		all = append(all, *order)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (s *fakeOrderStore) FindByID(_ context.Context, id int) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (s *fakeOrderStore) FindByUser(_ context.Context, userID int) ([]models.Order, error) {
	owned := []models.Order{}
	for _, order := range s.orders {
		if order.UserID == userID {
			owned = append(owned, *order)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })
	return owned, nil
}

func (s *fakeOrderStore) Update(_ context.Context, id, quantity int, size models.PizzaSize) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	order.Quantity = quantity
	order.PizzaSize = size
	copied := *order
	return &copied, nil
}

func (s *fakeOrderStore) UpdateStatus(_ context.Context, id int, status models.OrderStatus) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	order.OrderStatus = status
	copied := *order
	return &copied, nil
}

func (s *fakeOrderStore) Delete(_ context.Context, id int) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	delete(s.orders, id)
	return order, nil
}

func newTestRouter(users *fakeUserStore, orders *fakeOrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.RegisterRoutes(router, users, orders)
	return router
}

func addUser(t *testing.T, users *fakeUserStore, username string, staff bool) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(username + "-password")
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
		IsStaff:  staff,
		IsActive: true,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func accessToken(t *testing.T, username string) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(username)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	data, ok := decodeBody(t, w)["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}
