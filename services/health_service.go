package services

import (
	"context"
	"time"

	"github.com/wanderai/wanderai-backend/store"
	"github.com/wanderai/wanderai-backend/types"
)

// HealthService aggregates component health into the overall status. Missing
// provider keys report DEGRADED, not DOWN: the pipeline still serves trips
// from fallback data.
type HealthService struct {
	version      string
	mapsReady    bool
	aiReady      bool
	users        store.UserStore
	cache        *PlaceCache
	cacheEnabled bool
	now          func() time.Time
}

func NewHealthService(version string, mapsReady, aiReady bool, users store.UserStore, cache *PlaceCache, cacheEnabled bool, now func() time.Time) *HealthService {
	if now == nil {
		now = time.Now
	}
	return &HealthService{
		version:      version,
		mapsReady:    mapsReady,
		aiReady:      aiReady,
		users:        users,
		cache:        cache,
		cacheEnabled: cacheEnabled,
		now:          now,
	}
}

// Check runs all component probes and rolls them up. Any DOWN component makes
// the whole check DOWN; otherwise any DEGRADED component makes it DEGRADED.
func (s *HealthService) Check(ctx context.Context) *types.HealthCheck {
	components := map[string]types.HealthComponent{
		"placeProvider":     providerComponent(s.mapsReady, "live place lookups disabled, serving curated and generic data"),
		"narrativeProvider": providerComponent(s.aiReady, "AI travel insights disabled"),
		"userStore":         s.userStoreComponent(ctx),
	}
	if s.cacheEnabled {
		components["placeCache"] = s.cacheComponent(ctx)
	}

	overall := types.HealthStatusUp
	for _, c := range components {
		if c.Status == types.HealthStatusDown {
			overall = types.HealthStatusDown
			break
		}
		if c.Status == types.HealthStatusDegraded {
			overall = types.HealthStatusDegraded
		}
	}

	return &types.HealthCheck{
		Status:     overall,
		Components: components,
		Version:    s.version,
		Timestamp:  s.now().UTC().Format(time.RFC3339),
	}
}

func providerComponent(ready bool, detail string) types.HealthComponent {
	if ready {
		return types.HealthComponent{Status: types.HealthStatusUp}
	}
	return types.HealthComponent{Status: types.HealthStatusDegraded, Details: detail}
}

func (s *HealthService) userStoreComponent(ctx context.Context) types.HealthComponent {
	if err := s.users.Ping(ctx); err != nil {
		return types.HealthComponent{Status: types.HealthStatusDown, Details: err.Error()}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}

func (s *HealthService) cacheComponent(ctx context.Context) types.HealthComponent {
	if err := s.cache.Ping(ctx); err != nil {
		return types.HealthComponent{Status: types.HealthStatusDegraded, Details: "place cache unreachable, lookups fall through to providers"}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}
