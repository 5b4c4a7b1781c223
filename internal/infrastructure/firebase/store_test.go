package firebase_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Avesta-api/internal/domain"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
	"github.com/jhoicas/Avesta-api/internal/infrastructure/firebase"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fetch: las tres épocas de formato del documento
// ──────────────────────────────────────────────────────────────────────────────

const docEnvueltoRetail = `{"retailAppData":{"currentYear":"2026","years":{"2026":{"income":[],"expense":[{"id":7,"total":100.5}],"payments":[],"partners":[]}}}}`
const docEnvueltoData = `{"data":{"currentYear":"2025"}}`
const docPlano = `{"currentYear":"2024"}`

func serverRespondiendo(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
}

func TestFetch_DesenvuelveRetailAppData(t *testing.T) {
	srv := serverRespondiendo(t, http.StatusOK, docEnvueltoRetail)
	defer srv.Close()

	ds, err := firebase.NewStore(srv.URL, "").Fetch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ds)
	assert.Equal(t, "2026", ds.CurrentYear)

	r := ds.Year("2026").FindRecord(entity.KindExpense, "7")
	require.NotNil(t, r, "el id numérico 7 queda canónico como \"7\"")
	assert.Equal(t, "100.5", r.Total.String())
}

func TestFetch_DesenvuelveData(t *testing.T) {
	srv := serverRespondiendo(t, http.StatusOK, docEnvueltoData)
	defer srv.Close()

	ds, err := firebase.NewStore(srv.URL, "").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025", ds.CurrentYear)
}

func TestFetch_FormaPlana(t *testing.T) {
	srv := serverRespondiendo(t, http.StatusOK, docPlano)
	defer srv.Close()

	ds, err := firebase.NewStore(srv.URL, "").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024", ds.CurrentYear)
}

// RTDB devuelve el literal null cuando el documento no existe todavía.
func TestFetch_DocumentoVacio(t *testing.T) {
	srv := serverRespondiendo(t, http.StatusOK, "null")
	defer srv.Close()

	ds, err := firebase.NewStore(srv.URL, "").Fetch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, ds, "documento ausente no es un error")
}

// Un 5xx del backend se traduce al error de upstream del dominio.
func TestFetch_UpstreamCaido(t *testing.T) {
	srv := serverRespondiendo(t, http.StatusInternalServerError, "")
	defer srv.Close()

	_, err := firebase.NewStore(srv.URL, "").Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Persist
// ──────────────────────────────────────────────────────────────────────────────

// Persist escribe con PUT la forma canónica envuelta, con el token de auth
// en la query.
func TestPersist_PutCanonicalConAuth(t *testing.T) {
	var method, query string
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		query = r.URL.RawQuery
		body, _ = io.ReadAll(r.Body)
		io.WriteString(w, "{}")
	}))
	defer srv.Close()

	ds := &entity.Dataset{CurrentYear: "2026"}
	require.NoError(t, firebase.NewStore(srv.URL, "secreto").Persist(context.Background(), ds))

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "auth=secreto", query)

	var wrapper map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &wrapper))
	_, ok := wrapper["retailAppData"]
	assert.True(t, ok, "el documento viaja envuelto en retailAppData")
}

func TestPersist_UpstreamCaido(t *testing.T) {
	srv := serverRespondiendo(t, http.StatusBadGateway, "")
	defer srv.Close()

	err := firebase.NewStore(srv.URL, "").Persist(context.Background(), &entity.Dataset{})
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
