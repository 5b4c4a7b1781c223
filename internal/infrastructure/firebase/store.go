// Package firebase implementa el puerto DatasetStore sobre la API REST de
// Firebase Realtime Database, donde la aplicación web heredada guarda el
// documento compartido.
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/Avesta-api/internal/application/ports"
	"github.com/jhoicas/Avesta-api/internal/domain"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

var _ ports.DatasetStore = (*Store)(nil)

// Store cliente REST del documento compartido.
type Store struct {
	baseURL   string
	authToken string
	client    *http.Client
}

// NewStore construye el adaptador. baseURL es la raíz de la base
// (https://<proyecto>.firebasedatabase.app), sin sufijo .json.
func NewStore(baseURL, authToken string) *Store {
	return &Store{
		baseURL:   strings.TrimRight(baseURL, "/"),
		authToken: authToken,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// documentURL arma la URL del documento raíz con el token si existe.
func (s *Store) documentURL() string {
	u := s.baseURL + "/.json"
	if s.authToken != "" {
		u += "?auth=" + url.QueryEscape(s.authToken)
	}
	return u
}

// Fetch trae el documento completo. Devuelve (nil, nil) si aún no existe.
//
// El documento vivió tres épocas de formato: envuelto en "retailAppData",
// envuelto en "data" y plano. Las tres se desenvuelven aquí; el resto del
// sistema solo ve el dataset plano.
func (s *Store) Fetch(ctx context.Context) (*entity.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.documentURL(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	return Unwrap(body)
}

// Persist reemplaza el documento completo, todo o nada. Siempre escribe la
// forma canónica envuelta en "retailAppData".
func (s *Store) Persist(ctx context.Context, ds *entity.Dataset) error {
	payload, err := json.Marshal(map[string]*entity.Dataset{"retailAppData": ds})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.documentURL(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}
	return nil
}

// Unwrap decodifica el documento en cualquiera de sus formas históricas.
// "null" (documento vacío en RTDB) devuelve (nil, nil).
func Unwrap(body []byte) (*entity.Dataset, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var wrapper struct {
		RetailAppData json.RawMessage `json:"retailAppData"`
		Data          json.RawMessage `json:"data"`
	}
	payload := json.RawMessage(trimmed)
	if err := json.Unmarshal(trimmed, &wrapper); err == nil {
		if len(wrapper.RetailAppData) > 0 {
			payload = wrapper.RetailAppData
		} else if len(wrapper.Data) > 0 {
			payload = wrapper.Data
		}
	}

	var ds entity.Dataset
	if err := json.Unmarshal(payload, &ds); err != nil {
		return nil, fmt.Errorf("decodificar dataset: %w", err)
	}
	return &ds, nil
}
