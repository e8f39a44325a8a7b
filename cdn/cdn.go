// Package cdn builds URLs for images served from the Discord CDN.
// All functions are pure string formatting over a closed set of
// extensions and sizes; invalid inputs fail with a ValidationError.
package cdn

import (
	"fmt"
	"strings"

	"github.com/Favna/rest/errors"
)

const DefaultBase = "https://cdn.discordapp.com"

var allowedExtensions = []string{"webp", "png", "jpg", "jpeg", "gif"}

var allowedSizes = []int{16, 32, 64, 128, 256, 512, 1024, 2048, 4096}

// ImageOptions tunes the requested image format. A zero Extension means
// png, a zero Size means the CDN default.
type ImageOptions struct {
	Extension string
	Size      int
	// Dynamic applies to user avatars: when set, the extension becomes
	// gif iff the hash is animated (prefixed with "a_").
	Dynamic bool
}

// CDN formats image URLs against a base, usually DefaultBase.
type CDN struct {
	base string
}

func New(base string) *CDN {
	if base == "" {
		base = DefaultBase
	}
	return &CDN{base: strings.TrimSuffix(base, "/")}
}

// DefaultAvatar returns the URL of one of the five default avatars,
// selected by discriminator modulo 5. Default avatars are only served
// as png and ignore size options.
func (c *CDN) DefaultAvatar(discriminator int) string {
	return fmt.Sprintf("%s/embed/avatars/%d.png", c.base, discriminator%5)
}

func (c *CDN) Avatar(userID, hash string, opts ImageOptions) (string, error) {
	if opts.Dynamic && strings.HasPrefix(hash, "a_") {
		opts.Extension = "gif"
	}
	return c.image("avatars/"+userID+"/"+hash, opts)
}

func (c *CDN) Icon(guildID, hash string, opts ImageOptions) (string, error) {
	return c.image("icons/"+guildID+"/"+hash, opts)
}

func (c *CDN) Splash(guildID, hash string, opts ImageOptions) (string, error) {
	return c.image("splashes/"+guildID+"/"+hash, opts)
}

func (c *CDN) DiscoverySplash(guildID, hash string, opts ImageOptions) (string, error) {
	return c.image("discovery-splashes/"+guildID+"/"+hash, opts)
}

func (c *CDN) Banner(guildID, hash string, opts ImageOptions) (string, error) {
	return c.image("banners/"+guildID+"/"+hash, opts)
}

func (c *CDN) Emoji(emojiID, extension string) (string, error) {
	return c.image("emojis/"+emojiID, ImageOptions{Extension: extension})
}

func (c *CDN) AppIcon(applicationID, hash string, opts ImageOptions) (string, error) {
	return c.image("app-icons/"+applicationID+"/"+hash, opts)
}

func (c *CDN) AppAsset(applicationID, assetID string, opts ImageOptions) (string, error) {
	return c.image("app-assets/"+applicationID+"/"+assetID, opts)
}

func (c *CDN) AchievementIcon(applicationID, achievementID, hash string, opts ImageOptions) (string, error) {
	return c.image("app-assets/"+applicationID+"/achievements/"+achievementID+"/icons/"+hash, opts)
}

func (c *CDN) TeamIcon(teamID, hash string, opts ImageOptions) (string, error) {
	return c.image("team-icons/"+teamID+"/"+hash, opts)
}

func (c *CDN) image(path string, opts ImageOptions) (string, error) {
	ext := opts.Extension
	if ext == "" {
		ext = "png"
	}
	ext = strings.ToLower(ext)
	if !validExtension(ext) {
		return "", &errors.ValidationError{
			Param:   "extension",
			Value:   opts.Extension,
			Message: "must be one of " + strings.Join(allowedExtensions, ", "),
		}
	}

	url := c.base + "/" + path + "." + ext
	if opts.Size == 0 {
		return url, nil
	}
	if !validSize(opts.Size) {
		return "", &errors.ValidationError{
			Param:   "size",
			Value:   opts.Size,
			Message: "must be a power of two between 16 and 4096",
		}
	}
	return fmt.Sprintf("%s?size=%d", url, opts.Size), nil
}

func validExtension(ext string) bool {
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func validSize(size int) bool {
	for _, allowed := range allowedSizes {
		if size == allowed {
			return true
		}
	}
	return false
}
