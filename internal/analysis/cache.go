package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/tradecast/internal/metrics"
	"github.com/yourusername/tradecast/internal/models"
)

// ResultCache memoizes full analysis responses. The engine is a pure
// function of its input, so an identical seeded request always produces an
// identical response; only requests with an explicit seed are cacheable,
// since unseeded runs are non-deterministic by contract.
type ResultCache struct {
	cache *cache.Cache
}

// NewResultCache creates a result cache with the given TTL.
func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{cache: cache.New(ttl, ttl*2)}
}

// Key derives a stable cache key from the canonical JSON encoding of the
// request. Returns false for requests that must not be cached.
func (rc *ResultCache) Key(req *models.AnalysisRequest) (string, bool) {
	if req.Seed == 0 {
		return "", false
	}
	data, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:]), true
}

// Get retrieves a cached response.
func (rc *ResultCache) Get(key string) *models.AnalysisResponse {
	if value, found := rc.cache.Get(key); found {
		if resp, ok := value.(*models.AnalysisResponse); ok {
			metrics.CacheHitsTotal.Inc()
			return resp
		}
	}
	metrics.CacheMissesTotal.Inc()
	return nil
}

// Set stores a response under the given key.
func (rc *ResultCache) Set(key string, resp *models.AnalysisResponse) {
	rc.cache.SetDefault(key, resp)
}
