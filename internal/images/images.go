// Package images resolves artist names to image URLs through the Spotify
// catalog search API. It is pure enrichment: lookups are rate limited,
// retried, cached, and failures are expected to degrade to a placeholder.
package images

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/akeller/spotify-history-tools/internal/store"
)

// Client looks up artist images. Construct one per process and inject it;
// there is no package-level token state.
type Client struct {
	api     *spotify.Client
	limiter *rate.Limiter
	cache   *store.Store
}

// New authenticates with the client-credentials flow. cache may be nil to
// disable caching.
func New(ctx context.Context, clientID, clientSecret string, cache *store.Store) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("missing Spotify client credentials")
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return &Client{
		api:     spotify.New(httpClient),
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
		cache:   cache,
	}, nil
}

// ArtistImageURL returns zero or one image URL for the artist. An empty
// string with a nil error means the catalog has no image.
func (c *Client) ArtistImageURL(ctx context.Context, name string) (string, error) {
	if c.cache != nil {
		if url, ok, err := c.cache.GetArtistImage(name); err == nil && ok {
			return url, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	var results *spotify.SearchResult
	err := retry.Do(
		func() error {
			var err error
			results, err = c.api.Search(ctx, "artist:"+name, spotify.SearchTypeArtist, spotify.Limit(1))
			return err
		},
		retry.Attempts(3),
		retry.Context(ctx),
	)
	if err != nil {
		return "", fmt.Errorf("searching artist %q: %w", name, err)
	}

	url := ""
	if results.Artists != nil && len(results.Artists.Artists) > 0 {
		images := results.Artists.Artists[0].Images
		if len(images) > 0 {
			url = images[0].URL
		}
	}

	if c.cache != nil {
		// Cache misses too; a lookup that found nothing shouldn't repeat.
		if err := c.cache.SetArtistImage(name, url); err != nil {
			return url, nil
		}
	}
	return url, nil
}
