package session

import (
	"strings"

	"github.com/mmcdole/streamvault/internal/catalog"
	"github.com/mmcdole/streamvault/internal/domain"
)

// Credentials are whatever the sign-in form collected. They are not checked
// against anything.
type Credentials struct {
	Email    string
	Password string
	SignUp   bool
}

func (c Credentials) empty() bool {
	return strings.TrimSpace(c.Email) == "" && strings.TrimSpace(c.Password) == ""
}

// Storefront is the process-wide entry point: it holds the shared catalog
// and at most one signed-in Session.
type Storefront struct {
	catalog *catalog.Catalog
	opts    Options
	current *Session
}

// NewStorefront creates a signed-out storefront
func NewStorefront(c *catalog.Catalog, opts Options) *Storefront {
	return &Storefront{catalog: c, opts: opts}
}

// SignIn starts a fresh session. Any non-empty input succeeds, in either
// mode; empty input returns ErrEmptyCredentials and changes nothing.
// Signing in again replaces the current session.
func (f *Storefront) SignIn(creds Credentials) (*Session, error) {
	if creds.empty() {
		return nil, domain.ErrEmptyCredentials
	}
	if f.current != nil {
		f.current.Close()
	}

	s := New(f.catalog, strings.TrimSpace(creds.Email), f.opts)
	f.current = s
	s.metrics.SessionStarted()

	mode := "login"
	if creds.SignUp {
		mode = "signup"
	}
	s.logger.Info("signed in", "mode", mode, "favorites", len(s.prefs.FavoriteIDs()))
	return s, nil
}

// SignOut discards the session and every pending flow it owned
func (f *Storefront) SignOut() error {
	if f.current == nil {
		return domain.ErrNotSignedIn
	}
	f.current.logger.Info("signed out")
	f.current.Close()
	f.current = nil
	return nil
}

// Session returns the signed-in session
func (f *Storefront) Session() (*Session, bool) {
	return f.current, f.current != nil
}

// Authenticated reports whether a session is signed in
func (f *Storefront) Authenticated() bool {
	return f.current != nil
}

// Catalog returns the shared catalog
func (f *Storefront) Catalog() *catalog.Catalog {
	return f.catalog
}
