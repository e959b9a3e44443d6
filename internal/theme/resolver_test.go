package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolverResolve(t *testing.T) {
	tests := []struct {
		name     string
		resolver Resolver
		path     string
		want     string
	}{
		{"empty", NewResolver("", "/"), "", ""},
		{"fragment", NewResolver("", "/"), "#features", "#features"},
		{"https", NewResolver("", "/"), "https://next-auth-example.now.sh", "https://next-auth-example.now.sh"},
		{"protocol relative", NewResolver("", "/"), "//cdn.example.com/a.js", "//cdn.example.com/a.js"},
		{"mailto", NewResolver("", "/"), "mailto:me@example.com", "mailto:me@example.com"},
		{"relative asset", NewResolver("", "/"), "img/undraw_social.svg", "/img/undraw_social.svg"},
		{"absolute path", NewResolver("", "/"), "/getting-started", "/getting-started"},
		{"root", NewResolver("", "/"), "/", "/"},
		{"sub base asset", NewResolver("", "/www/"), "img/a.svg", "/www/img/a.svg"},
		{"sub base path", NewResolver("", "/www/"), "/getting-started", "/www/getting-started"},
		{"already under base", NewResolver("", "/www/"), "/www/getting-started", "/www/getting-started"},
		{"base without slash", NewResolver("", "/www/"), "/www", "/www/"},
		{"unnormalised base", NewResolver("", "www"), "img/a.svg", "/www/img/a.svg"},
		{"zero value", Resolver{}, "img/a.svg", "/img/a.svg"},
		{
			"absolute",
			Resolver{SiteURL: "https://next-auth.js.org/", BaseURL: "/", Absolute: true},
			"img/a.svg",
			"https://next-auth.js.org/img/a.svg",
		},
		{
			"absolute keeps external",
			Resolver{SiteURL: "https://next-auth.js.org", BaseURL: "/", Absolute: true},
			"https://example.com",
			"https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resolver.Resolve(tt.path))
		})
	}
}

func TestNewResolverNormalises(t *testing.T) {
	r := NewResolver("https://next-auth.js.org/", "docs")
	assert.Equal(t, "https://next-auth.js.org", r.SiteURL)
	assert.Equal(t, "/docs/", r.BaseURL)
	assert.False(t, r.Absolute)
}
