package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/EltonLopezzs/onbarbearia/internal/infra/cache"
)

// MemoryCache é um cache de disponibilidade em memória para testes.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string][]string
	dateVer map[string]int64
	shopVer map[uint]int64

	Gets int
	Sets int
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: map[string][]string{},
		dateVer: map[string]int64{},
		shopVer: map[uint]int64{},
	}
}

func cacheKey(barbershopID uint, date string) string {
	return fmt.Sprintf("%d:%s", barbershopID, date)
}

func (c *MemoryCache) Get(_ context.Context, barbershopID uint, date string) ([]string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Gets++
	slots, ok := c.entries[cacheKey(barbershopID, date)]
	return slots, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, barbershopID uint, date string, slots []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Sets++
	c.entries[cacheKey(barbershopID, date)] = append([]string(nil), slots...)
	return nil
}

func (c *MemoryCache) Version(_ context.Context, barbershopID uint, date string) (cache.Version, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.versionLocked(barbershopID, date), nil
}

func (c *MemoryCache) versionLocked(barbershopID uint, date string) cache.Version {
	return cache.Version{
		Barbershop: c.shopVer[barbershopID],
		Date:       c.dateVer[cacheKey(barbershopID, date)],
	}
}

func (c *MemoryCache) SetIfVersion(
	_ context.Context,
	barbershopID uint,
	date string,
	v cache.Version,
	slots []string,
) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.versionLocked(barbershopID, date) != v {
		return false, nil
	}
	c.Sets++
	c.entries[cacheKey(barbershopID, date)] = append([]string(nil), slots...)
	return true, nil
}

func (c *MemoryCache) InvalidateDate(_ context.Context, barbershopID uint, date string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(barbershopID, date)
	c.dateVer[key]++
	delete(c.entries, key)
	return nil
}

func (c *MemoryCache) InvalidateBarbershop(_ context.Context, barbershopID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.shopVer[barbershopID]++

	prefix := fmt.Sprintf("%d:", barbershopID)
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *MemoryCache) Has(barbershopID uint, date string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[cacheKey(barbershopID, date)]
	return ok
}

var _ cache.AvailabilityCache = (*MemoryCache)(nil)
