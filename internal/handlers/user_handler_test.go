package handlers_test

import (
	"ItemKeeper/internal/model"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestUser_Register(t *testing.T) {
	t.Run("created with token", func(t *testing.T) {
		ur := &mockUserRepo{}
		router := newTestRouter(t, ur, &mockItemRepo{})

		ur.On("GetUserByLogin", mock.Anything, "testuser").
			Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		ur.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Login == "testuser" && u.Password != "testpassword"
		})).Return(&model.User{ID: 1, Login: "testuser"}, nil).Once()

		body := `{"login":"testuser","password":"testpassword"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp map[string]any
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["token"])
		assert.Equal(t, "testuser", resp["login"])
		ur.AssertExpectations(t)
	})

	t.Run("duplicate login", func(t *testing.T) {
		ur := &mockUserRepo{}
		router := newTestRouter(t, ur, &mockItemRepo{})

		ur.On("GetUserByLogin", mock.Anything, "testuser").
			Return(&model.User{ID: 1, Login: "testuser"}, nil).Once()

		body := `{"login":"testuser","password":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		ur.AssertExpectations(t)
	})

	t.Run("empty credentials", func(t *testing.T) {
		router := newTestRouter(t, &mockUserRepo{}, &mockItemRepo{})

		req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(`{"login":"","password":""}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUser_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("testpassword"), bcrypt.DefaultCost)

	t.Run("ok returns token usable for items", func(t *testing.T) {
		ur := &mockUserRepo{}
		ir := &mockItemRepo{}
		router := newTestRouter(t, ur, ir)

		ur.On("GetUserByLogin", mock.Anything, "testuser").
			Return(&model.User{ID: 1, Login: "testuser", Password: string(hash)}, nil).Once()

		body := `{"login":"testuser","password":"testpassword"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["token"])

		// выданный токен открывает защищённый эндпоинт
		ir.On("List", mock.Anything, mock.Anything).Return([]model.Item{}, int64(0), nil).Once()
		listReq := httptest.NewRequest(http.MethodGet, "/api/items/", nil)
		listReq.Header.Set("Authorization", "Token "+resp["token"])
		listRR := httptest.NewRecorder()
		router.ServeHTTP(listRR, listReq)
		assert.Equal(t, http.StatusOK, listRR.Code)

		ur.AssertExpectations(t)
		ir.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		ur := &mockUserRepo{}
		router := newTestRouter(t, ur, &mockItemRepo{})

		ur.On("GetUserByLogin", mock.Anything, "testuser").
			Return(&model.User{ID: 1, Login: "testuser", Password: string(hash)}, nil).Once()

		body := `{"login":"testuser","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		ur.AssertExpectations(t)
	})
}
