package history

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	auth "Hydraulics/internal/auth"
	repo "Hydraulics/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	saved []repo.Calculation
}

func (f *fakeRepo) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	return 1, nil
}

func (f *fakeRepo) GetBylogin(ctx context.Context, login string) (int, string, error) {
	return 0, "", nil
}

func (f *fakeRepo) SaveCalculation(ctx context.Context, userID int, tool string, input, result json.RawMessage) (int, error) {
	f.saved = append(f.saved, repo.Calculation{ID: len(f.saved) + 1, Tool: tool, Input: input, Result: result})
	return len(f.saved), nil
}

func (f *fakeRepo) ListCalculations(ctx context.Context, userID int, limit int) ([]repo.Calculation, error) {
	return f.saved, nil
}

func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(auth.ContextWithUserID(req.Context(), 7))
}

func TestSaveAndList(t *testing.T) {
	fr := &fakeRepo{}
	h := &Handler{Repo: fr}

	payload := []byte(`{"tool":"gravity","input":{"diameter":0.3},"result":{"discharge_m3s":0.0967}}`)
	rec := httptest.NewRecorder()
	h.Save(rec, authedRequest(http.MethodPost, "/history", payload))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, fr.saved, 1)
	assert.Equal(t, "gravity", fr.saved[0].Tool)

	rec = httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []repo.Calculation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "gravity", list[0].Tool)
}

func TestSave_RejectsUnknownTool(t *testing.T) {
	h := &Handler{Repo: &fakeRepo{}}
	payload := []byte(`{"tool":"astrology","input":{},"result":{}}`)
	rec := httptest.NewRecorder()
	h.Save(rec, authedRequest(http.MethodPost, "/history", payload))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSave_RequiresAuth(t *testing.T) {
	h := &Handler{Repo: &fakeRepo{}}
	req := httptest.NewRequest(http.MethodPost, "/history", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	h.Save(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestList_EmptyIsJSONArray(t *testing.T) {
	h := &Handler{Repo: &fakeRepo{}}
	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
