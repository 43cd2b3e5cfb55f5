package api

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapeNameForURL(t *testing.T) {
	known := "http://textures.minecraft.net/texture/2abb2051b2481d0ba7defd635ca7a933"
	assert.Equal(t, "Migrator", CapeNameForURL(known))

	unknown := "http://textures.minecraft.net/texture/ffffffffffffffffffffffffffffffff"
	assert.Equal(t, "ffffffffffffffffffffffffffffffff", CapeNameForURL(unknown))

	assert.Equal(t, "short", CapeNameForURL("short"))
}

func TestDecodeTextures(t *testing.T) {
	payload := `{"textures":{"SKIN":{"url":"http://example/skin"},"CAPE":{"url":"http://example/cape"}}}`
	encoded := base64.StdEncoding.EncodeToString([]byte(payload))

	textures, err := decodeTextures(encoded)
	require.NoError(t, err)
	assert.Equal(t, "http://example/skin", textures.Textures.Skin.URL)
	assert.Equal(t, "http://example/cape", textures.Textures.Cape.URL)
}

func TestDecodeTexturesCapelessPlayer(t *testing.T) {
	payload := `{"textures":{"SKIN":{"url":"http://example/skin"}}}`
	encoded := base64.StdEncoding.EncodeToString([]byte(payload))

	textures, err := decodeTextures(encoded)
	require.NoError(t, err)
	assert.Empty(t, textures.Textures.Cape.URL)
}

func TestDecodeTexturesRejectsGarbage(t *testing.T) {
	_, err := decodeTextures("not base64!!!")
	assert.Error(t, err)

	_, err = decodeTextures(base64.StdEncoding.EncodeToString([]byte("not json")))
	assert.Error(t, err)
}
