package config

import (
	"io"
	"net/url"

	"gopkg.in/yaml.v3"
)

const mask = "********"

// Redacted returns a copy of c with credentials masked.
func (c *Config) Redacted() Config {
	r := *c
	r.CORS.AllowedOrigins = append([]string(nil), c.CORS.AllowedOrigins...)
	if r.JWTSecret != "" {
		r.JWTSecret = mask
	}
	if r.Storage.AccessKeyID != "" {
		r.Storage.AccessKeyID = mask
	}
	if r.Storage.SecretAccessKey != "" {
		r.Storage.SecretAccessKey = mask
	}
	r.Database.URL = redactURL(r.Database.URL)
	return r
}

// WriteYAML writes the redacted configuration to w.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Redacted()); err != nil {
		return err
	}
	return enc.Close()
}

// redactURL masks the password of a connection URL. Strings that are not
// URLs are returned unchanged.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), mask)
	}
	return u.String()
}
