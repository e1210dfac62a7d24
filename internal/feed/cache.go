package feed

import (
	"sync"
	"time"

	"linesight/internal/signal"
)

// Cache is a TTL-based in-memory view of the slate, keyed by matchup.
// Watch mode uses it to avoid re-recording a game it already scored.
type Cache struct {
	mu    sync.RWMutex
	games map[string]cacheEntry
	ttl   time.Duration
}

type cacheEntry struct {
	game      *signal.GameContext
	fetchedAt time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		games: make(map[string]cacheEntry),
		ttl:   ttl,
	}
}

// Key identifies a game within the cache.
func Key(game *signal.GameContext) string {
	return game.Sport + "|" + game.AwayTeam + "@" + game.HomeTeam + "|" + string(game.BetType)
}

func (c *Cache) Get(key string) (*signal.GameContext, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.games[key]
	if !ok || time.Since(entry.fetchedAt) > c.ttl {
		return nil, false
	}
	return entry.game, true
}

func (c *Cache) Set(game *signal.GameContext) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.games[Key(game)] = cacheEntry{
		game:      game,
		fetchedAt: time.Now(),
	}
}

func (c *Cache) SetAll(games []*signal.GameContext) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, game := range games {
		c.games[Key(game)] = cacheEntry{
			game:      game,
			fetchedAt: now,
		}
	}
}

// All returns all non-expired entries.
func (c *Cache) All() []*signal.GameContext {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	result := make([]*signal.GameContext, 0, len(c.games))
	for _, entry := range c.games {
		if now.Sub(entry.fetchedAt) <= c.ttl {
			result = append(result, entry.game)
		}
	}
	return result
}
