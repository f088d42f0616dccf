package repositories

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"booking-api/domain"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
)

// PlaceCache define las operaciones de caché para GET /places/:id
type PlaceCache interface {
	Get(id string) (*domain.Place, bool)
	Set(place *domain.Place)
	Delete(id string)
}

// placeCache implementa PlaceCache con dos niveles:
// ccache local y, si está configurado, Memcached compartido
type placeCache struct {
	local     *ccache.Cache[*domain.Place]
	memcached *memcache.Client
	ttl       time.Duration
}

// NewPlaceCache crea la caché. Con memcachedHost vacío solo se usa el nivel local
func NewPlaceCache(memcachedHost string, ttl time.Duration) PlaceCache {
	c := &placeCache{
		local: ccache.New(ccache.Configure[*domain.Place]().MaxSize(1000)),
		ttl:   ttl,
	}
	if memcachedHost != "" {
		c.memcached = memcache.New(memcachedHost)
		slog.Info("Place cache uses Memcached", "host", memcachedHost)
	}
	return c
}

func cacheKey(id string) string {
	return "place:" + id
}

// Memcached interpreta más de 30 días como un timestamp unix
const maxMemcacheTTL = 30 * 24 * time.Hour

func memcacheExpiration(ttl time.Duration) int32 {
	if ttl > maxMemcacheTTL {
		ttl = maxMemcacheTTL
	}
	if ttl < time.Second {
		ttl = time.Second
	}
	return int32(ttl / time.Second)
}

// Get busca primero en la caché local y después en Memcached
// Siempre devuelve una copia, el llamador puede modificarla
func (c *placeCache) Get(id string) (*domain.Place, bool) {
	key := cacheKey(id)

	// 1. Caché local
	if item := c.local.Get(key); item != nil && !item.Expired() {
		return clonePlace(item.Value()), true
	}

	// 2. Memcached
	if c.memcached == nil {
		return nil, false
	}
	item, err := c.memcached.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			slog.Warn("Memcached get failed", "key", key, "error", err)
		}
		return nil, false
	}

	var place domain.Place
	if err := json.Unmarshal(item.Value, &place); err != nil {
		slog.Warn("Invalid place in Memcached", "key", key, "error", err)
		return nil, false
	}

	// 3. Guardar en local para las próximas consultas
	if c.ttl > 0 {
		c.local.Set(key, clonePlace(&place), c.ttl)
	}
	return &place, true
}

// Set guarda el place en ambos niveles. Con ttl <= 0 la caché queda desactivada
func (c *placeCache) Set(place *domain.Place) {
	if c.ttl <= 0 {
		return
	}
	key := cacheKey(place.ID)
	c.local.Set(key, clonePlace(place), c.ttl)

	if c.memcached == nil {
		return
	}
	data, err := json.Marshal(place)
	if err != nil {
		slog.Warn("Marshal place for Memcached failed", "key", key, "error", err)
		return
	}
	if err := c.memcached.Set(&memcache.Item{
		Key:        key,
		Value:      data,
		Expiration: memcacheExpiration(c.ttl),
	}); err != nil {
		slog.Warn("Memcached set failed", "key", key, "error", err)
	}
}

// Delete invalida el place en ambos niveles
func (c *placeCache) Delete(id string) {
	key := cacheKey(id)
	c.local.Delete(key)

	if c.memcached == nil {
		return
	}
	if err := c.memcached.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		slog.Warn("Memcached delete failed", "key", key, "error", err)
	}
}

func clonePlace(p *domain.Place) *domain.Place {
	cp := *p
	cp.Photos = append([]string(nil), p.Photos...)
	cp.Perks = append([]string(nil), p.Perks...)
	return &cp
}
