package branch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool `json:"success"`
	Data    struct {
		Branches []RankedBranch `json:"branches"`
		Branch   *Branch        `json:"branch"`
	} `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *GormRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newTestRepo(t)
	h := NewHandler(NewService(repo, nil, zap.NewNop()))

	r := gin.New()
	v1 := r.Group("/api/v1")
	h.RegisterRoutes(v1)
	h.RegisterOwnerRoutes(v1)
	return r, repo
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_RankBranches(t *testing.T) {
	r, repo := setupRouter(t)
	ctx := context.Background()

	for _, p := range []struct {
		name     string
		lat, lon float64
	}{{"A", 10, 10}, {"B", 0, 0}} {
		a := &Address{Latitude: p.lat, Longitude: p.lon, FullAddress: p.name + " street"}
		require.NoError(t, repo.CreateAddress(ctx, a))
		require.NoError(t, repo.Create(ctx, &Branch{Name: p.name, AddressID: a.ID}))
	}

	w := doRequest(r, http.MethodGet, "/api/v1/branches?latitude=0&longitude=0", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Branches, 2)
	assert.Equal(t, "B", resp.Data.Branches[0].Name)
	assert.InDelta(t, 4.4721, resp.Data.Branches[1].Distance, 0.0001)
}

func TestHandler_RankBranches_MissingCoordinates(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/branches?latitude=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestHandler_CreateBranch(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/addresses", `{"latitude":43.2,"longitude":76.9,"full_address":"Abay 1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var addrResp struct {
		Data struct {
			Address Address `json:"address"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addrResp))

	body := `{"name":"Downtown","address_id":` + jsonInt(addrResp.Data.Address.ID) + `}`
	w = doRequest(r, http.MethodPost, "/api/v1/branches", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data.Branch)
	assert.Equal(t, "Downtown", resp.Data.Branch.Name)

	w = doRequest(r, http.MethodGet, "/api/v1/branches/"+jsonInt(resp.Data.Branch.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CreateBranch_UnknownAddress(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/branches", `{"name":"Ghost","address_id":404}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "address with id 404 does not exist", resp.Error.Message)
}

func TestHandler_GetBranch_NotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/branches/77", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
