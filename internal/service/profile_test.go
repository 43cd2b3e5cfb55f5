package service

import (
	"context"
	"database/sql"
	"fakemc-server/internal/api"
	"fakemc-server/internal/domain"
	"fakemc-server/internal/repository"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCacheHitSkipsUpstream(t *testing.T) {
	db := newTestDB(t)
	identity := newFakeIdentity()
	svc := newProfileService(t, db, identity)
	repo := repository.NewProfileRepository(db, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.Profile{
		UUID:      "u1",
		Username:  "Alpha",
		FetchedAt: time.Now().UTC(),
	}))

	first, err := svc.Resolve(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, first.Status)
	assert.Equal(t, domain.SourceCache, first.Source)
	assert.Equal(t, "Alpha", first.Profile.Username)

	second, err := svc.Resolve(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Zero(t, identity.callCount())
}

func TestResolveMissFetchesAndCaches(t *testing.T) {
	db := newTestDB(t)
	identity := newFakeIdentity()
	identity.add(&api.IdentityProfile{
		UUID:     "u1",
		Username: "Alpha",
		HasCape:  true,
		CapeName: strPtr("Migrator"),
	})
	svc := newProfileService(t, db, identity)
	ctx := context.Background()

	res, err := svc.Resolve(ctx, "Alpha")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, res.Status)
	assert.Equal(t, domain.SourceUpstream, res.Source)
	assert.True(t, res.Profile.HasCape)
	assert.Equal(t, 1, identity.callCount())

	// the record is now cached and a second lookup stays local
	res, err = svc.Resolve(ctx, "Alpha")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceCache, res.Source)
	assert.Equal(t, 1, identity.callCount())
}

func TestResolveStaleEntryRefetches(t *testing.T) {
	db := newTestDB(t)
	identity := newFakeIdentity()
	identity.add(&api.IdentityProfile{UUID: "u1", Username: "Alpha"})
	svc := newProfileService(t, db, identity)
	repo := repository.NewProfileRepository(db, zerolog.Nop())
	ctx := context.Background()

	stale := time.Now().UTC().Add(-10 * time.Minute)
	require.NoError(t, repo.Upsert(ctx, &domain.Profile{
		UUID:      "u1",
		Username:  "Alpha",
		FetchedAt: stale,
	}))

	res, err := svc.Resolve(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceUpstream, res.Source)
	assert.Equal(t, 1, identity.callCount())

	got, err := repo.GetByTerm(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, got.FetchedAt.After(stale))
}

func TestResolveNotFoundWritesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(t, db, newFakeIdentity())
	repo := repository.NewProfileRepository(db, zerolog.Nop())
	ctx := context.Background()

	res, err := svc.Resolve(ctx, "Nobody")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotFound, res.Status)
	assert.Nil(t, res.Profile)

	_, err = repo.GetByTerm(ctx, "Nobody")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestResolveUpstreamFailureLeavesCacheUntouched(t *testing.T) {
	db := newTestDB(t)
	identity := newFakeIdentity()
	identity.err = &api.HTTPError{StatusCode: 500}
	svc := newProfileService(t, db, identity)
	repo := repository.NewProfileRepository(db, zerolog.Nop())
	ctx := context.Background()

	stale := time.Now().UTC().Add(-time.Hour)
	existing := &domain.Profile{
		UUID:      "u1",
		Username:  "Alpha",
		CapeName:  strPtr("Vanilla"),
		HasCape:   true,
		FetchedAt: stale,
	}
	require.NoError(t, repo.Upsert(ctx, existing))

	res, err := svc.Resolve(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnavailable, res.Status)

	got, err := repo.GetByTerm(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, existing.Username, got.Username)
	assert.Equal(t, *existing.CapeName, *got.CapeName)
	assert.True(t, got.FetchedAt.Equal(stale))
}

func TestResolveNamesPreservesOrder(t *testing.T) {
	db := newTestDB(t)
	identity := newFakeIdentity()
	identity.add(&api.IdentityProfile{UUID: "b", Username: "Beta"})
	svc := newProfileService(t, db, identity)
	repo := repository.NewProfileRepository(db, zerolog.Nop())
	ctx := context.Background()

	// a: cache hit, b: miss resolved by fallback, c: miss that fails
	require.NoError(t, repo.Upsert(ctx, &domain.Profile{
		UUID:      "a",
		Username:  "Alpha",
		FetchedAt: time.Now().UTC(),
	}))

	members := svc.ResolveNames(ctx, []string{"a", "b", "c"})
	require.Len(t, members, 3)
	assert.Equal(t, domain.ResolvedMember{UUID: "a", Name: "Alpha"}, members[0])
	assert.Equal(t, domain.ResolvedMember{UUID: "b", Name: "Beta"}, members[1])
	assert.Equal(t, domain.ResolvedMember{UUID: "c", Name: domain.UnresolvedName}, members[2])
}

func TestResolveNamesBulkReadSkipsUpstream(t *testing.T) {
	db := newTestDB(t)
	identity := newFakeIdentity()
	svc := newProfileService(t, db, identity)
	repo := repository.NewProfileRepository(db, zerolog.Nop())
	ctx := context.Background()

	// Even stale entries satisfy name resolution, so no fallback calls
	// are issued for fully cached batches.
	old := time.Now().UTC().Add(-24 * time.Hour)
	require.NoError(t, repo.Upsert(ctx, &domain.Profile{UUID: "a", Username: "Alpha", FetchedAt: old}))
	require.NoError(t, repo.Upsert(ctx, &domain.Profile{UUID: "b", Username: "Beta", FetchedAt: old}))

	members := svc.ResolveNames(ctx, []string{"b", "a"})
	require.Len(t, members, 2)
	assert.Equal(t, "Beta", members[0].Name)
	assert.Equal(t, "Alpha", members[1].Name)
	assert.Zero(t, identity.callCount())
}

func TestResolveNamesEmptyInput(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService(t, db, newFakeIdentity())

	assert.Empty(t, svc.ResolveNames(context.Background(), nil))
}

func TestClassifyTerm(t *testing.T) {
	name, uuid := classifyTerm("GoSkyHigh")
	assert.Equal(t, "GoSkyHigh", name)
	assert.Empty(t, uuid)

	// max username length is still a name
	name, uuid = classifyTerm("exactly16chars__")
	assert.NotEmpty(t, name)
	assert.Empty(t, uuid)

	name, uuid = classifyTerm("3ff2e63ad63045e0b96f57cd0eae708d")
	assert.Empty(t, name)
	assert.Equal(t, "3ff2e63ad63045e0b96f57cd0eae708d", uuid)
}
