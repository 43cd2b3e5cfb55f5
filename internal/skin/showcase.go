// Package skin derives the small showcase images served to the frontend
// from the raw texture PNGs Mojang hosts. Skins are 64x64 sprite sheets;
// capes are 64x32. All crop coordinates come from the standard Minecraft
// texture layout.
package skin

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"image/png"
)

var (
	faceBase    = image.Rect(8, 8, 16, 16)
	faceOverlay = image.Rect(40, 8, 48, 16)
	capeFront   = image.Rect(1, 1, 11, 17)
	capeBack    = image.Rect(12, 1, 22, 17)
)

// FaceShowcase crops the player's face from a raw skin texture and
// composites the hat overlay layer on top of it, honoring the overlay's
// alpha channel. Returns the result as a base64-encoded PNG.
func FaceShowcase(skinPNG []byte) (string, error) {
	src, err := png.Decode(bytes.NewReader(skinPNG))
	if err != nil {
		return "", fmt.Errorf("decoding skin texture: %w", err)
	}

	face := image.NewRGBA(image.Rect(0, 0, faceBase.Dx(), faceBase.Dy()))
	draw.Draw(face, face.Bounds(), src, faceBase.Min, draw.Src)
	draw.Draw(face, face.Bounds(), src, faceOverlay.Min, draw.Over)

	return encodePNG(face)
}

// CapeShowcases crops the front and back panels from a raw cape texture.
// Both are returned as base64-encoded PNGs.
func CapeShowcases(capePNG []byte) (front, back string, err error) {
	src, err := png.Decode(bytes.NewReader(capePNG))
	if err != nil {
		return "", "", fmt.Errorf("decoding cape texture: %w", err)
	}

	front, err = encodePNG(crop(src, capeFront))
	if err != nil {
		return "", "", err
	}
	back, err = encodePNG(crop(src, capeBack))
	if err != nil {
		return "", "", err
	}
	return front, back, nil
}

func crop(src image.Image, r image.Rectangle) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}

func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding showcase png: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
