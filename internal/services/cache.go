package services

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// cachedResponse guarda una respuesta cruda junto con el momento en que se
// obtuvo. Una entrada es válida estrictamente menos de ttl después del fetch.
type cachedResponse struct {
	payload   []byte
	fetchedAt time.Time
}

// ResponseCache es un caché en memoria con ttl para respuestas de APIs
// externas. Reduce llamadas redundantes dentro de una ventana corta; no es
// una garantía de consistencia (los datos externos pueden haber cambiado).
type ResponseCache struct {
	mu      sync.RWMutex
	entries map[string]cachedResponse
	ttl     time.Duration
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		entries: make(map[string]cachedResponse),
		ttl:     ttl,
	}
}

// CacheKey construye la clave determinística: endpoint + moneda + parámetros
// serializados en orden estable.
func CacheKey(endpoint, currency string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("&%s=%s", k, params[k]))
	}

	return fmt.Sprintf("%s|%s%s", endpoint, currency, sb.String())
}

// Get devuelve la entrada si existe y no expiró. Una entrada expirada es
// indistinguible de una ausente.
func (c *ResponseCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}
	if time.Since(entry.fetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.payload, true
}

// Set guarda el resultado exitoso con el timestamp actual. Si dos llamadas
// concurrentes escriben la misma clave, gana la última escritura exitosa.
func (c *ResponseCache) Set(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cachedResponse{
		payload:   payload,
		fetchedAt: time.Now(),
	}
}
