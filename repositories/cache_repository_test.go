package repositories

import (
	"testing"
	"time"

	"booking-api/domain"
)

func TestPlaceCache_LocalOnly(t *testing.T) {
	cache := NewPlaceCache("", time.Minute)

	if _, ok := cache.Get("p1"); ok {
		t.Fatal("Expected cache miss on empty cache")
	}

	cache.Set(&domain.Place{ID: "p1", Title: "Cabin", Photos: []string{"a.jpg"}})

	got, ok := cache.Get("p1")
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if got.Title != "Cabin" {
		t.Errorf("Expected title Cabin, got %s", got.Title)
	}

	// Modificar la copia no debe afectar lo cacheado
	got.Photos[0] = "changed.jpg"
	again, _ := cache.Get("p1")
	if again.Photos[0] != "a.jpg" {
		t.Errorf("Cached place was mutated: %v", again.Photos)
	}

	cache.Delete("p1")
	if _, ok := cache.Get("p1"); ok {
		t.Error("Expected cache miss after delete")
	}
}

func TestPlaceCache_ZeroTTLDisablesCache(t *testing.T) {
	cache := NewPlaceCache("", 0)

	cache.Set(&domain.Place{ID: "p1", Title: "Cabin"})
	if _, ok := cache.Get("p1"); ok {
		t.Error("Expected no caching with ttl 0")
	}
}

func TestMemcacheExpiration(t *testing.T) {
	tests := []struct {
		ttl  time.Duration
		want int32
	}{
		{ttl: 5 * time.Minute, want: 300},
		{ttl: 500 * time.Millisecond, want: 1},
		{ttl: 90 * 24 * time.Hour, want: int32(maxMemcacheTTL / time.Second)},
	}

	for _, tt := range tests {
		if got := memcacheExpiration(tt.ttl); got != tt.want {
			t.Errorf("memcacheExpiration(%v) = %d, want %d", tt.ttl, got, tt.want)
		}
	}
}
