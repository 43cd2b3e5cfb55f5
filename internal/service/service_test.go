package service

import (
	"context"
	"database/sql"
	"fakemc-server/internal/api"
	"fakemc-server/internal/config"
	"fakemc-server/internal/database"
	"fakemc-server/internal/repository"
	"sync"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db, zerolog.Nop()))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		HypixelAPIKey:  "test-key",
		ProfileTTL:     2 * time.Minute,
		PlayerStatsTTL: 2 * time.Minute,
		GuildTTL:       12 * time.Minute,
	}
}

func strPtr(s string) *string { return &s }

// fakeIdentity serves identity profiles keyed by username or UUID and
// counts upstream calls.
type fakeIdentity struct {
	mu       sync.Mutex
	calls    int
	profiles map[string]*api.IdentityProfile
	err      error
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{profiles: map[string]*api.IdentityProfile{}}
}

func (f *fakeIdentity) add(p *api.IdentityProfile) {
	f.profiles[p.UUID] = p
	f.profiles[p.Username] = p
}

func (f *fakeIdentity) Fetch(_ context.Context, name, uuid string) (*api.IdentityProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if f.err != nil {
		return nil, f.err
	}
	term := name
	if term == "" {
		term = uuid
	}
	if p, ok := f.profiles[term]; ok {
		return p, nil
	}
	return nil, api.ErrNotFound
}

func (f *fakeIdentity) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeStats serves one canned player and guild response with call
// counters.
type fakeStats struct {
	mu          sync.Mutex
	playerCalls int
	guildCalls  int
	player      *api.HypixelPlayer
	playerErr   error
	guild       *api.GuildInfo
	guildErr    error
}

func (f *fakeStats) GetPlayer(_ context.Context, uuid string) (*api.HypixelPlayer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playerCalls++
	if f.playerErr != nil {
		return nil, f.playerErr
	}
	return f.player, nil
}

func (f *fakeStats) GetGuild(_ context.Context, uuid string, maxMembers int) (*api.GuildInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.guildCalls++
	if f.guildErr != nil {
		return nil, f.guildErr
	}
	g := *f.guild
	if len(g.MemberUUIDs) > maxMembers {
		g.MemberUUIDs = g.MemberUUIDs[:maxMembers]
	}
	return &g, nil
}

func newProfileService(t *testing.T, db *sql.DB, identity IdentityGateway) *ProfileService {
	t.Helper()
	repo := repository.NewProfileRepository(db, zerolog.Nop())
	return NewProfileService(identity, repo, testConfig(), zerolog.Nop())
}
