// Package calculations provides a persistent cache for expensive
// computation results (frontier samples, backtest paths, simulation runs).
package calculations

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/jungdo-lee/etf-optimizer/internal/database"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS cache (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cache_expires ON cache(expires_at);
`

// Cache provides key-value storage with expiration, backed by the
// calculations database. Values are msgpack-encoded.
type Cache struct {
	db *database.DB
}

// NewCache creates a cache instance and ensures the schema exists.
func NewCache(db *database.DB) (*Cache, error) {
	if _, err := db.Conn().Exec(cacheSchema); err != nil {
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// HashTickers creates a deterministic hash from a list of tickers for cache
// keys. Tickers are sorted so the hash is order-independent.
func HashTickers(tickers []string) string {
	sorted := make([]string, len(tickers))
	copy(sorted, tickers)
	sort.Strings(sorted)
	combined := strings.Join(sorted, ",")
	h := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(h[:16])
}

// HashKey creates a deterministic hash over arbitrary key parts.
func HashKey(parts ...string) string {
	h := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(h[:16])
}

// Set stores a value under namespace:key with a TTL.
func (c *Cache) Set(namespace, key string, value interface{}, ttl time.Duration) error {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}

	expiresAt := time.Now().Add(ttl).Unix()
	_, err = c.db.Conn().Exec(`
		INSERT INTO cache (key, value, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at
	`, namespace+":"+key, data, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

// Get retrieves a value from the cache into dest. Returns false when the
// key is missing or expired.
func (c *Cache) Get(namespace, key string, dest interface{}) (bool, error) {
	var data []byte
	var expiresAt int64
	err := c.db.Conn().QueryRow(
		"SELECT value, expires_at FROM cache WHERE key = ?",
		namespace+":"+key,
	).Scan(&data, &expiresAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if time.Now().Unix() >= expiresAt {
		return false, nil
	}

	if err := msgpack.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache value: %w", err)
	}
	return true, nil
}

// Delete removes a cache entry.
func (c *Cache) Delete(namespace, key string) error {
	_, err := c.db.Conn().Exec("DELETE FROM cache WHERE key = ?", namespace+":"+key)
	return err
}

// DeleteByPrefix removes all entries in a namespace.
func (c *Cache) DeleteByPrefix(namespace string) error {
	_, err := c.db.Conn().Exec("DELETE FROM cache WHERE key LIKE ?", namespace+":%")
	return err
}

// PruneExpired removes entries whose TTL has lapsed. Returns the number of
// rows removed.
func (c *Cache) PruneExpired() (int64, error) {
	res, err := c.db.Conn().Exec("DELETE FROM cache WHERE expires_at <= ?", time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to prune cache: %w", err)
	}
	return res.RowsAffected()
}
