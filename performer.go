package chatlens

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/browser"

	"github.com/scrolls-mods/chatlens/chat"
)

// The error returned when a link would open something other than a web page.
var ErrUnsafeLink = errors.New("refusing to open link")

type performer struct {
	chat.LinkOpener
	chat.UserActions
}

// NewPerformer combines the window's user actions with a link opener.
func NewPerformer(users chat.UserActions, links chat.LinkOpener) chat.Performer {
	return performer{
		LinkOpener:  links,
		UserActions: users,
	}
}

// LinkURL turns a link found in chat into an absolute web URL. Links written
// without a scheme, like www.example.com, get http.
func LinkURL(link string) (string, error) {
	if !strings.Contains(link, "://") && !strings.HasPrefix(strings.ToLower(link), "mailto:") {
		link = "http://" + link
	}
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsafeLink, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", fmt.Errorf("%w: scheme %q", ErrUnsafeLink, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: no host in %q", ErrUnsafeLink, link)
	}
	return u.String(), nil
}

// BrowserOpener opens links in the system's web browser.
type BrowserOpener struct{}

// OpenLink implements chat.LinkOpener.
func (BrowserOpener) OpenLink(link string) error {
	u, err := LinkURL(link)
	if err != nil {
		return err
	}
	logger.Debugf("Opening %s", u)
	return browser.OpenURL(u)
}
