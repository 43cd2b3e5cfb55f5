package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fakemc-server/internal/skin"
	"fmt"

	"github.com/valyala/fasthttp"
)

const (
	mojangLookupURL  = "https://api.minecraftservices.com/minecraft/profile/lookup/name/%s"
	mojangSessionURL = "https://sessionserver.mojang.com/session/minecraft/profile/%s"
)

// IdentityProfile is the fully resolved Mojang identity: canonical
// casing of the name, cape presence, and ready-to-serve showcase images.
type IdentityProfile struct {
	UUID         string
	Username     string
	HasCape      bool
	CapeName     *string
	SkinShowcase *string
	CapeFront    *string
	CapeBack     *string
}

type MojangClient struct {
	client *fasthttp.Client
}

func NewMojangClient() *MojangClient {
	return &MojangClient{client: newHTTPClient()}
}

type lookupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type sessionResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Properties []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"properties"`
}

type texturesPayload struct {
	Textures struct {
		Skin struct {
			URL string `json:"url"`
		} `json:"SKIN"`
		Cape struct {
			URL string `json:"url"`
		} `json:"CAPE"`
	} `json:"textures"`
}

// Fetch resolves a player identity. Exactly one of name or uuid must be
// set; a name is first resolved to a UUID via the lookup endpoint.
// Returns ErrNotFound when Mojang has no such player.
func (c *MojangClient) Fetch(ctx context.Context, name, uuid string) (*IdentityProfile, error) {
	if uuid == "" {
		lookup, err := doJSON[lookupResponse](ctx, c.client, fmt.Sprintf(mojangLookupURL, name), nil, nil)
		if err != nil {
			return nil, err
		}
		uuid = lookup.ID
	}

	session, err := doJSON[sessionResponse](ctx, c.client, fmt.Sprintf(mojangSessionURL, uuid), nil, nil)
	if err != nil {
		return nil, err
	}
	if len(session.Properties) == 0 {
		return nil, fmt.Errorf("session profile for %s has no properties", uuid)
	}

	textures, err := decodeTextures(session.Properties[0].Value)
	if err != nil {
		return nil, err
	}

	profile := &IdentityProfile{
		UUID:     session.ID,
		Username: session.Name,
	}

	if skinURL := textures.Textures.Skin.URL; skinURL != "" {
		raw, err := doRaw(ctx, c.client, skinURL, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("fetching skin texture: %w", err)
		}
		showcase, err := skin.FaceShowcase(raw)
		if err != nil {
			return nil, err
		}
		profile.SkinShowcase = &showcase
	}

	if capeURL := textures.Textures.Cape.URL; capeURL != "" {
		profile.HasCape = true
		capeName := CapeNameForURL(capeURL)
		profile.CapeName = &capeName

		raw, err := doRaw(ctx, c.client, capeURL, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("fetching cape texture: %w", err)
		}
		front, back, err := skin.CapeShowcases(raw)
		if err != nil {
			return nil, err
		}
		profile.CapeFront = &front
		profile.CapeBack = &back
	}

	return profile, nil
}

// decodeTextures unpacks the base64 textures property carried by session
// profiles. The value is itself a JSON document holding the texture URLs.
func decodeTextures(value string) (*texturesPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decoding textures property: %w", err)
	}

	var payload texturesPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parsing textures payload: %w", err)
	}
	return &payload, nil
}
