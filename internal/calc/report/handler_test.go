package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	input := Input{
		Project: "Pump station 3",
		Author:  "engineer",
		Lines: []Line{
			{Label: "Diameter", Value: "206.0", Unit: "mm"},
			{Label: "Total dynamic head", Value: "14.95", Unit: "m"},
		},
		Notes: "Sized for 50 l/s at 1.5 m/s.",
	}
	body, err := json.Marshal(input)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/tools/report/pdf", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Generate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestGenerate_BadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools/report/pdf", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Generate(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
