package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"shopfront/internal/nav"
	"shopfront/internal/notify"
	"shopfront/internal/render"
	"shopfront/internal/state"
)

// pagePath maps a router page to its URL.
func pagePath(p nav.Page) string {
	if p == nav.PageHome {
		return "/"
	}
	return "/" + string(p)
}

// writeDocument assembles and writes the full storefront page around a
// rendered body fragment, consuming the pending flash message.
func writeDocument(w http.ResponseWriter, appState *state.Store, flash *notify.Flash, page nav.Page, title string, body template.HTML) {
	message, kind, _ := flash.Take()
	doc := render.Document{
		Page:      string(page),
		Title:     title,
		Session:   appState.Session(),
		CartCount: appState.CartCount(),
		Flash:     message,
		FlashKind: kind,
		Body:      body,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(render.Page(doc)))
}

// formInt parses an integer form field; ok is false for anything that
// is not a non-negative number.
func formInt(r *http.Request, field string) (int, bool) {
	n, err := strconv.Atoi(r.PostFormValue(field))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
