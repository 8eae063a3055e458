package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagio-gakuto/user-directory/api/middleware"
	userapp "github.com/hagio-gakuto/user-directory/application/user"
	"github.com/hagio-gakuto/user-directory/infrastructure/persistence/memory"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.ActorMiddleware())

	controller := NewController(userapp.NewApplicationService(memory.NewUserRepository(), 20, 100))
	group := engine.Group("/api/v1")
	controller.RegisterRoutes(group)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any, actorID string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if actorID != "" {
		req.Header.Set(middleware.ActorIDHeader, actorID)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func createBody(email string) map[string]any {
	return map[string]any{
		"email":      email,
		"role":       "user",
		"first_name": "太郎",
		"last_name":  "山田",
		"gender":     "male",
	}
}

func TestCreateUserEndpoint(t *testing.T) {
	engine := setupRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/users", createBody("taro@example.com"), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	data := decodeData(t, rec)
	assert.Equal(t, "taro@example.com", data["email"])
	assert.Equal(t, "山田 太郎", data["full_name"])
	assert.Equal(t, "system", data["created_by"], "no identity header falls back to system")
	assert.NotEmpty(t, data["id"])
}

func TestCreateUserEndpointUsesIdentityHeader(t *testing.T) {
	engine := setupRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/users", createBody("taro@example.com"), "admin-1")
	require.Equal(t, http.StatusCreated, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, "admin-1", data["created_by"])
}

func TestCreateUserEndpointValidation(t *testing.T) {
	engine := setupRouter(t)

	// binding failure: required fields missing
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/users", map[string]any{"email": "a@b.com"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// domain validation failure: no @ in the address
	body := createBody("not-an-email")
	rec = doJSON(t, engine, http.MethodPost, "/api/v1/users", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "形式が正しくありません")
}

func TestCreateUserEndpointConflict(t *testing.T) {
	engine := setupRouter(t)

	require.Equal(t, http.StatusCreated,
		doJSON(t, engine, http.MethodPost, "/api/v1/users", createBody("taro@example.com"), "").Code)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/users", createBody("taro@example.com"), "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "既に登録されています")
}

func TestGetUserEndpointNotFound(t *testing.T) {
	engine := setupRouter(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/users/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserLifecycleEndpoints(t *testing.T) {
	engine := setupRouter(t)

	created := decodeData(t,
		doJSON(t, engine, http.MethodPost, "/api/v1/users", createBody("taro@example.com"), ""))
	id := created["id"].(string)

	// full-replace update by a different actor
	update := map[string]any{
		"email":      "taro@example.com",
		"role":       "admin",
		"first_name": "次郎",
		"last_name":  "山田",
	}
	rec := doJSON(t, engine, http.MethodPut, "/api/v1/users/"+id, update, "admin-1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeData(t, rec)
	assert.Equal(t, "admin", updated["role"])
	assert.Equal(t, "山田 次郎", updated["full_name"])
	assert.Nil(t, updated["gender"], "omitted gender clears it")
	assert.Equal(t, "admin-1", updated["updated_by"])
	assert.Equal(t, "system", updated["created_by"])

	// soft delete, then the record is gone from the API's view
	rec = doJSON(t, engine, http.MethodDelete, "/api/v1/users/"+id, nil, "admin-1")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/users/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/v1/users/"+id, nil, "admin-1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAndSearchEndpoints(t *testing.T) {
	engine := setupRouter(t)

	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		body := createBody(email)
		if i == 2 {
			delete(body, "gender")
			body["role"] = "admin"
		}
		require.Equal(t, http.StatusCreated,
			doJSON(t, engine, http.MethodPost, "/api/v1/users", body, "").Code)
	}

	var listing struct {
		Data       []map[string]any `json:"data"`
		Pagination struct {
			Page       int   `json:"page"`
			PageSize   int   `json:"page_size"`
			TotalItems int64 `json:"total_items"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
	}

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/users?page=1&pageSize=2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Len(t, listing.Data, 2)
	assert.Equal(t, int64(3), listing.Pagination.TotalItems)
	assert.Equal(t, 2, listing.Pagination.TotalPages)

	// role filter
	rec = doJSON(t, engine, http.MethodGet, "/api/v1/users/search/detail?role=admin", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Data, 1)
	assert.Equal(t, "c@example.com", listing.Data[0]["email"])

	// gender key present but empty: explicit-null filter
	rec = doJSON(t, engine, http.MethodGet, "/api/v1/users/search/detail?gender=", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Data, 1)
	assert.Equal(t, "c@example.com", listing.Data[0]["email"])

	// invalid page
	rec = doJSON(t, engine, http.MethodGet, "/api/v1/users?page=zero", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportEndpointReturnsEverything(t *testing.T) {
	engine := setupRouter(t)

	for i := 0; i < 25; i++ {
		require.Equal(t, http.StatusCreated,
			doJSON(t, engine, http.MethodPost, "/api/v1/users",
				createBody(fmt.Sprintf("user%02d@example.com", i)), "").Code)
	}

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	rec := doJSON(t, engine, http.MethodGet, "/api/v1/users/export", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 25, "export ignores the default page size")
}
