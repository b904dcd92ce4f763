package ai

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bilgisen/newspulse/internal/cache"
	"github.com/bilgisen/newspulse/internal/logger"
	"github.com/bilgisen/newspulse/internal/utils"
)

// CachedGenerator keeps successful responses for a short TTL so repeated
// loads of the same view do not hit the search service again. Errors are
// never cached.
type CachedGenerator struct {
	next  Generator
	store cache.Store
	ttl   time.Duration
	scope string
}

// NewCachedGenerator wraps next. scope separates keys of different models.
func NewCachedGenerator(next Generator, store cache.Store, ttl time.Duration, scope string) *CachedGenerator {
	return &CachedGenerator{
		next:  next,
		store: store,
		ttl:   ttl,
		scope: scope,
	}
}

func (c *CachedGenerator) Generate(ctx context.Context, req Request) (*Response, error) {
	log := logger.Get()
	key := c.key(req)

	data, found, err := c.store.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("intent", string(req.Intent)).Msg("Cache lookup failed")
	} else if found {
		var cached Response
		if err := json.Unmarshal(data, &cached); err == nil {
			log.Debug().Str("intent", string(req.Intent)).Msg("Serving response from cache")
			return &cached, nil
		}
		log.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
	}

	resp, err := c.next.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
			log.Warn().Err(err).Str("intent", string(req.Intent)).Msg("Cache write failed")
		}
	}
	return resp, nil
}

func (c *CachedGenerator) key(req Request) string {
	schema, _ := json.Marshal(req.Schema)
	return "generate:" + utils.Hash(c.scope+"\n"+string(req.Intent)+"\n"+req.Instruction+"\n"+string(schema))
}
