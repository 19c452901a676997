package catalog

import (
	"fmt"
	"hash/fnv"
	"net/url"
)

// Generated thumbnails are requested at a fixed portrait size so cards
// line up across views.
const (
	imageWidth  = 400
	imageHeight = 500
	imageModel  = "flux"
)

// ImageURL builds a generated-image URL for a text prompt. The seed is
// derived from the prompt itself, so identical prompts always resolve to
// the same visual asset.
func ImageURL(prompt string) string {
	return ImageURLWithSeed(prompt, seedFor(prompt, 0))
}

// ImageURLIndexed derives the seed from the prompt and a list index, so
// repeated prompts inside one recommendation list still render distinct
// but stable assets.
func ImageURLIndexed(prompt string, index int) string {
	return ImageURLWithSeed(prompt, seedFor(prompt, index))
}

// ImageURLWithSeed builds the URL for an explicit (prompt, seed) pair.
func ImageURLWithSeed(prompt string, seed uint32) string {
	return fmt.Sprintf("https://pollinations.ai/p/%s?width=%d&height=%d&model=%s&seed=%d",
		url.QueryEscape(prompt), imageWidth, imageHeight, imageModel, seed)
}

// seedFor hashes the prompt (and index) into a small stable seed.
func seedFor(prompt string, index int) uint32 {
	h := fnv.New32a()
	h.Write([]byte(prompt))
	return h.Sum32()%1000 + uint32(index)
}
