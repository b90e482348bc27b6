package nav

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulcj/portfolio/internal/theme"
)

func render(t *testing.T, b Bar) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Render(b).Render(&sb))
	return sb.String()
}

func TestLinksFromSectionIDs(t *testing.T) {
	t.Parallel()

	links := Links("about", "projects", "contact")
	assert.Equal(t, []Link{
		{Href: "#about", Label: "About"},
		{Href: "#projects", Label: "Projects"},
		{Href: "#contact", Label: "Contact"},
	}, links)
}

func TestOnScrollThreshold(t *testing.T) {
	t.Parallel()

	var s State
	s.OnScroll(8)
	assert.False(t, s.Scrolled)
	s.OnScroll(9)
	assert.True(t, s.Scrolled)
	s.OnScroll(0)
	assert.False(t, s.Scrolled)
}

func TestMenuTransitions(t *testing.T) {
	t.Parallel()

	var s State
	s.ToggleMenu()
	assert.True(t, s.MenuOpen)

	href := s.SelectLink(Link{Href: "#skills", Label: "Skills"})
	assert.Equal(t, "#skills", href)
	assert.False(t, s.MenuOpen)

	s.ToggleMenu()
	store := theme.NewStore(theme.MemoryStorage{})
	assert.Equal(t, theme.Light, s.ToggleTheme(store))
	assert.False(t, s.MenuOpen)
	assert.Equal(t, theme.Light, store.Preference())
}

func TestRenderClosedMenu(t *testing.T) {
	t.Parallel()

	out := render(t, Bar{
		Brand: "Rahul CJ",
		Links: Links("about", "projects", "skills", "education", "contact"),
		State: State{Theme: theme.System},
	})

	for _, id := range []string{"about", "projects", "skills", "education", "contact"} {
		assert.Contains(t, out, `href="#`+id+`"`)
	}
	assert.Contains(t, out, `<div id="mobile-nav" class="md:hidden pb-4 space-y-2" role="menu" hidden>`)
	assert.Contains(t, out, `aria-expanded="false"`)
	assert.Contains(t, out, `href="?menu=open"`)
	assert.Contains(t, out, `aria-label="Theme: system"`)
	assert.NotContains(t, out, `href="/#`)
}

func TestRenderCarriesBrowserSettings(t *testing.T) {
	t.Parallel()

	out := render(t, Bar{Brand: "Rahul CJ", Links: Links("about"), State: State{Theme: theme.Light}})

	assert.Contains(t, out, `data-scroll-threshold="`+strconv.Itoa(ScrollThreshold)+`"`)
	assert.Contains(t, out, `data-theme-cycle="light dark system"`)
	assert.Contains(t, out, `<template id="theme-icons">`)
	for _, p := range []string{"light", "dark", "system"} {
		assert.Contains(t, out, `data-icon="`+p+`"`)
	}
	assert.Equal(t, 2, strings.Count(out, `data-theme-toggle="light"`))
}

func TestRenderOpenMenuAndScrolled(t *testing.T) {
	t.Parallel()

	out := render(t, Bar{
		Brand: "Rahul CJ",
		Links: Links("about"),
		State: State{MenuOpen: true, Scrolled: true, Theme: theme.Dark},
	})

	assert.Contains(t, out, `<div id="mobile-nav" class="md:hidden pb-4 space-y-2" role="menu">`)
	assert.Contains(t, out, `role="menuitem">About</a>`)
	assert.Contains(t, out, `href="/" id="menu-toggle"`)
	assert.Contains(t, out, `aria-expanded="true"`)
	assert.Contains(t, out, `data-scrolled="true"`)
	assert.Contains(t, out, "backdrop-blur")
	assert.Contains(t, out, `aria-label="Theme: dark"`)
	toggle := out[strings.Index(out, `aria-label="Theme: dark"`):]
	toggle = toggle[:strings.Index(toggle, "</button>")]
	assert.Contains(t, toggle, "☾")
	assert.NotContains(t, toggle, "☀")
}
