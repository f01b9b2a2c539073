package usecase

import (
	"context"
	"time"

	"skillbarter/internal/domain/skill"
)

// MatchCache holds recent candidate lists so repeated match lookups in a hot
// category skip the store. A nil cache disables caching entirely.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// matchCacheKey identifies a candidate list before the per-caller ownership
// filter, so one entry serves every caller querying that category+kind.
func matchCacheKey(category string, kind skill.Kind) string {
	return "matches:" + category + ":" + string(kind)
}

func invalidateMatchCache(ctx context.Context, cache MatchCache, category string, kind skill.Kind) {
	if cache == nil {
		return
	}
	// Best effort: a stale entry only survives until its TTL.
	_ = cache.Delete(ctx, matchCacheKey(category, kind))
}
