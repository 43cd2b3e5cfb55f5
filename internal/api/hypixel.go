package api

import (
	"context"
	"fakemc-server/internal/config"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	hypixelPlayerURL = "https://api.hypixel.net/v2/player?uuid=%s"
	hypixelGuildURL  = "https://api.hypixel.net/v2/guild?player=%s"
	hypixelStatusURL = "https://api.hypixel.net/v2/status?uuid=%s"
)

// rankLabels maps Hypixel package rank identifiers to display labels.
// Unknown ranks pass through unchanged.
var rankLabels = map[string]string{
	"VIP":      "VIP",
	"VIP_PLUS": "VIP+",
	"MVP":      "MVP",
	"MVP_PLUS": "MVP+",
}

// HypixelPlayer is the subset of the player endpoint the app consumes.
// FirstLogin is nil when the field is absent or unparseable; Rank is nil
// for unranked players.
type HypixelPlayer struct {
	UUID       string
	FirstLogin *time.Time
	Rank       *string
}

// GuildInfo is a guild roster bounded to the member cap it was requested
// with.
type GuildInfo struct {
	ID          string
	Name        string
	MemberUUIDs []string
}

type HypixelClient struct {
	apiKey      string
	client      *fasthttp.Client
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

type RateLimitInfo struct {
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`

	// seconds until reset
	Reset int `json:"reset"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewHypixelClient(cfg *config.Config) *HypixelClient {
	return &HypixelClient{
		apiKey: cfg.HypixelAPIKey,
		client: newHTTPClient(),
		rateLimit: RateLimitInfo{
			Limit:     60,
			Remaining: 60,
			Reset:     60,
			UpdatedAt: time.Now(),
		},
	}
}

func (c *HypixelClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *HypixelClient) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("RateLimit-Limit")); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			c.rateLimit.Limit = val
		}
	}
	if remaining := string(resp.Header.Peek("RateLimit-Remaining")); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.rateLimit.Remaining = val
		}
	}
	if reset := string(resp.Header.Peek("RateLimit-Reset")); reset != "" {
		if val, err := strconv.Atoi(reset); err == nil {
			c.rateLimit.Reset = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *HypixelClient) headers() map[string]string {
	return map[string]string{"API-Key": c.apiKey}
}

type hypixelPlayerResponse struct {
	Success bool `json:"success"`
	Player  *struct {
		UUID           string `json:"uuid"`
		FirstLogin     *int64 `json:"firstLogin"`
		NewPackageRank string `json:"newPackageRank"`
	} `json:"player"`
}

// GetPlayer fetches the Hypixel player record for a UUID. Returns
// ErrNotFound when Hypixel has never seen the player. An absent or
// invalid firstLogin degrades to a nil timestamp rather than an error.
func (c *HypixelClient) GetPlayer(ctx context.Context, uuid string) (*HypixelPlayer, error) {
	resp, err := doJSON[hypixelPlayerResponse](ctx, c.client, fmt.Sprintf(hypixelPlayerURL, uuid), c.headers(), c.updateRateLimit)
	if err != nil {
		return nil, err
	}
	return playerFromResponse(uuid, resp)
}

func playerFromResponse(uuid string, resp *hypixelPlayerResponse) (*HypixelPlayer, error) {
	if resp.Player == nil {
		return nil, ErrNotFound
	}

	player := &HypixelPlayer{UUID: uuid}

	if resp.Player.FirstLogin != nil && *resp.Player.FirstLogin > 0 {
		// firstLogin is UNIX time in milliseconds
		first := time.UnixMilli(*resp.Player.FirstLogin).UTC()
		player.FirstLogin = &first
	}

	if rank := resp.Player.NewPackageRank; rank != "" {
		label, ok := rankLabels[rank]
		if !ok {
			label = rank
		}
		player.Rank = &label
	}

	return player, nil
}

type hypixelGuildResponse struct {
	Success bool `json:"success"`
	Guild   *struct {
		ID      string `json:"_id"`
		Name    string `json:"name"`
		Members []struct {
			UUID string `json:"uuid"`
		} `json:"members"`
	} `json:"guild"`
}

// GetGuild fetches the guild a player belongs to, returning at most
// maxMembers roster entries. Returns ErrNoGuild for guildless players.
func (c *HypixelClient) GetGuild(ctx context.Context, uuid string, maxMembers int) (*GuildInfo, error) {
	resp, err := doJSON[hypixelGuildResponse](ctx, c.client, fmt.Sprintf(hypixelGuildURL, uuid), c.headers(), c.updateRateLimit)
	if err != nil {
		return nil, err
	}
	if resp.Guild == nil {
		return nil, ErrNoGuild
	}

	info := &GuildInfo{
		ID:   resp.Guild.ID,
		Name: resp.Guild.Name,
	}
	for i, member := range resp.Guild.Members {
		if i >= maxMembers {
			break
		}
		info.MemberUUIDs = append(info.MemberUUIDs, member.UUID)
	}
	return info, nil
}

type hypixelStatusResponse struct {
	Success bool `json:"success"`
	Session struct {
		Online bool `json:"online"`
	} `json:"session"`
}

// IsOnline reports whether the player is currently on the Hypixel
// network.
func (c *HypixelClient) IsOnline(ctx context.Context, uuid string) (bool, error) {
	resp, err := doJSON[hypixelStatusResponse](ctx, c.client, fmt.Sprintf(hypixelStatusURL, uuid), c.headers(), c.updateRateLimit)
	if err != nil {
		return false, err
	}
	return resp.Session.Online, nil
}
