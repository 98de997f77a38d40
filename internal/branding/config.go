// Package branding injects the shared portal header and footer into HTML documents.
package branding

import (
	"errors"
	"slices"
	"strings"
)

// NavLink is one entry of the header navigation.
type NavLink struct {
	Label string `mapstructure:"label" json:"label"`
	Href  string `mapstructure:"href" json:"href"`
}

// Config controls the generated header and footer.
type Config struct {
	PortalName   string    `mapstructure:"portal_name" json:"portal_name"`
	ShowNav      bool      `mapstructure:"show_nav" json:"show_nav"`
	NavLinks     []NavLink `mapstructure:"nav_links" json:"nav_links"`
	ShowUserMenu bool      `mapstructure:"show_user_menu" json:"show_user_menu"`
	LogoURL      string    `mapstructure:"logo_url" json:"logo_url"`
	MainSiteURL  string    `mapstructure:"main_site_url" json:"main_site_url"`
}

var ErrEmptyNavLink = errors.New("nav link needs a label and an href")

// DefaultConfig returns the employee portal defaults.
func DefaultConfig() Config {
	return Config{
		PortalName: "Employee Portal",
		ShowNav:    true,
		NavLinks: []NavLink{
			{Label: "News", Href: "#news"},
			{Label: "Newsletter", Href: "#newsletter"},
			{Label: "Employee of the Month", Href: "#employee-of-month"},
			{Label: "My Schedule", Href: "#my-schedule"},
			{Label: "Resources", Href: "#useful-links"},
		},
		ShowUserMenu: true,
		LogoURL:      "https://www.alice.care/wp-content/uploads/2025/04/AliceCare-RGB_Primary-Logo-1.png",
		MainSiteURL:  "https://www.alice.care",
	}
}

// Validate reports nav links with a missing label or href.
func (c Config) Validate() error {
	for _, l := range c.NavLinks {
		if strings.TrimSpace(l.Label) == "" || strings.TrimSpace(l.Href) == "" {
			return ErrEmptyNavLink
		}
	}
	return nil
}

// Overrides is a partial Config. Nil fields leave the current value in place.
type Overrides struct {
	PortalName   *string    `mapstructure:"portal_name" json:"portal_name,omitempty"`
	ShowNav      *bool      `mapstructure:"show_nav" json:"show_nav,omitempty"`
	NavLinks     *[]NavLink `mapstructure:"nav_links" json:"nav_links,omitempty"`
	ShowUserMenu *bool      `mapstructure:"show_user_menu" json:"show_user_menu,omitempty"`
	LogoURL      *string    `mapstructure:"logo_url" json:"logo_url,omitempty"`
	MainSiteURL  *string    `mapstructure:"main_site_url" json:"main_site_url,omitempty"`
}

// Apply returns c with every non-nil override applied.
func (c Config) Apply(o Overrides) Config {
	if o.PortalName != nil {
		c.PortalName = *o.PortalName
	}
	if o.ShowNav != nil {
		c.ShowNav = *o.ShowNav
	}
	if o.NavLinks != nil {
		c.NavLinks = slices.Clone(*o.NavLinks)
	}
	if o.ShowUserMenu != nil {
		c.ShowUserMenu = *o.ShowUserMenu
	}
	if o.LogoURL != nil {
		c.LogoURL = *o.LogoURL
	}
	if o.MainSiteURL != nil {
		c.MainSiteURL = *o.MainSiteURL
	}
	return c
}

func (c Config) clone() Config {
	c.NavLinks = slices.Clone(c.NavLinks)
	return c
}

// Initials derives up to two upper-case letters from the first letter of
// each space-separated word of name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, " ") {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	r := []rune(strings.ToUpper(b.String()))
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r)
}
