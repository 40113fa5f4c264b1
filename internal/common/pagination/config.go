// Package pagination resolves offset-based page parameters from HTTP query
// strings and derives the metadata returned alongside each page.
package pagination

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage  int // Page used when the page parameter is absent or invalid
	DefaultLimit int // Limit used when the limit parameter is absent or below 1
	MaxLimit     int // Upper bound for limit; larger values are capped
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, limit=10, max=100
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// withFallbacks replaces unusable config values with DefaultConfig values.
func (c Config) withFallbacks() Config {
	d := DefaultConfig()
	if c.DefaultPage < 1 {
		c.DefaultPage = d.DefaultPage
	}
	if c.MaxLimit < 1 {
		c.MaxLimit = d.MaxLimit
	}
	if c.DefaultLimit < 1 {
		c.DefaultLimit = d.DefaultLimit
	}
	if c.DefaultLimit > c.MaxLimit {
		c.DefaultLimit = c.MaxLimit
	}
	return c
}
