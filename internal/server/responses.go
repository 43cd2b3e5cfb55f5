package server

import (
	"fakemc-server/internal/domain"
	"fakemc-server/internal/service"
)

// firstLoginFormat renders first-login timestamps the way the frontend
// displays them.
const firstLoginFormat = "01/2006"

type statusResponse struct {
	Status domain.Status `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type profileResponse struct {
	Status       domain.Status `json:"status"`
	Source       domain.Source `json:"source"`
	UUID         string        `json:"uuid"`
	Username     string        `json:"username"`
	HasCape      bool          `json:"has_cape"`
	CapeName     *string       `json:"cape_name"`
	SkinShowcase *string       `json:"skin_showcase_b64"`
	CapeFront    *string       `json:"cape_front_b64"`
	CapeBack     *string       `json:"cape_back_b64"`
}

func newProfileResponse(res domain.ProfileResult) profileResponse {
	p := res.Profile
	return profileResponse{
		Status:       res.Status,
		Source:       res.Source,
		UUID:         p.UUID,
		Username:     p.Username,
		HasCape:      p.HasCape,
		CapeName:     p.CapeName,
		SkinShowcase: p.SkinShowcase,
		CapeFront:    p.CapeFront,
		CapeBack:     p.CapeBack,
	}
}

type memberResponse struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

type hypixelResponse struct {
	Status     domain.Status    `json:"status"`
	Source     domain.Source    `json:"source"`
	FirstLogin *string          `json:"first_login"`
	Rank       *string          `json:"rank"`
	GuildName  *string          `json:"guild_name"`
	Members    []memberResponse `json:"guild_members"`
}

func newHypixelResponse(res domain.PlayerGuildResult) hypixelResponse {
	resp := hypixelResponse{
		Status:    res.Status,
		Source:    res.Source,
		Rank:      res.Stats.Rank,
		GuildName: res.GuildName,
		Members:   make([]memberResponse, 0, len(res.Members)),
	}
	if res.Stats.FirstLogin != nil {
		formatted := res.Stats.FirstLogin.Format(firstLoginFormat)
		resp.FirstLogin = &formatted
	}
	for _, m := range res.Members {
		resp.Members = append(resp.Members, memberResponse{UUID: m.UUID, Name: m.Name})
	}
	return resp
}

type onlineStatusResponse struct {
	Status service.OnlineStatus `json:"status"`
}

type favoriteResponse struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}

type favoriteRequest struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}
