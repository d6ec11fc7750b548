package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplist_web/internal/models"
	"shoplist_web/internal/repository"
	"shoplist_web/internal/service"
)

func newItemRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupItemRoutes(r, service.NewServices(repository.NewRepositories()))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestCreateItemThenList(t *testing.T) {
	r := newItemRouter()

	w := postJSON(r, "/items", `{"name":"Apple","price":1.5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"Apple","description":null,"price":1.5,"quantity":1}]`, w.Body.String())

	// 新增後立刻列出就能看到新項目
	w = get(r, "/items")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"Apple","description":null,"price":1.5,"quantity":1}]`, w.Body.String())
}

func TestCreateItemKeepsInsertionOrder(t *testing.T) {
	r := newItemRouter()

	postJSON(r, "/items", `{"name":"Apple","price":1.5}`)
	postJSON(r, "/items", `{"name":"Banana","price":0.5,"quantity":6}`)
	w := postJSON(r, "/items", `{"name":"Cherry","description":"sour","price":3.25}`)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "Apple", items[0].Name)
	assert.Equal(t, "Banana", items[1].Name)
	assert.Equal(t, 6, items[1].Quantity)
	assert.Equal(t, "Cherry", items[2].Name)
	require.NotNil(t, items[2].Description)
	assert.Equal(t, "sour", *items[2].Description)
}

func TestCreateItemValidation(t *testing.T) {
	r := newItemRouter()

	// 缺少必填欄位時拒絕請求，且不得改動序列
	for _, body := range []string{
		`{"price":1.5}`,
		`{"name":"Apple"}`,
		`{}`,
		`not json`,
	} {
		w := postJSON(r, "/items", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}

	w := get(r, "/items")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListItemsEmpty(t *testing.T) {
	r := newItemRouter()

	w := get(r, "/items")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListItemsLimit(t *testing.T) {
	r := newItemRouter()
	postJSON(r, "/items", `{"name":"Apple","price":1.5}`)
	postJSON(r, "/items", `{"name":"Banana","price":0.5}`)
	postJSON(r, "/items", `{"name":"Cherry","price":3.25}`)

	var items []models.Item

	w := get(r, "/items?limit=2")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Apple", items[0].Name)
	assert.Equal(t, "Banana", items[1].Name)

	// limit 超過序列長度時回傳整個序列
	w = get(r, "/items?limit=10")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 3)

	w = get(r, "/items?limit=0")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListItemsBadLimit(t *testing.T) {
	r := newItemRouter()

	w := get(r, "/items?limit=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(r, "/items?limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetItemByIndex(t *testing.T) {
	r := newItemRouter()
	postJSON(r, "/items", `{"name":"Apple","price":1.5}`)
	postJSON(r, "/items", `{"name":"Banana","price":0.5}`)

	var item models.Item

	w := get(r, "/items/0")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "Apple", item.Name)

	w = get(r, "/items/1")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "Banana", item.Name)
}

func TestGetItemNotFound(t *testing.T) {
	r := newItemRouter()

	// 空序列的任何索引都是 404
	w := get(r, "/items/0")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Item 0 not found"}`, w.Body.String())

	postJSON(r, "/items", `{"name":"Apple","price":1.5}`)

	w = get(r, "/items/1")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Item 1 not found"}`, w.Body.String())

	w = get(r, "/items/-1")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Item -1 not found"}`, w.Body.String())
}

func TestGetItemBadID(t *testing.T) {
	r := newItemRouter()

	w := get(r, "/items/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestIDHeaderSet(t *testing.T) {
	r := newItemRouter()

	w := get(r, "/items")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	r := newItemRouter()

	// 先打一個請求，讓計數器至少有一個序列可以輸出
	get(r, "/items")

	w := get(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shoplist_http_requests_total")
}
