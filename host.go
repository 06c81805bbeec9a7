package chatlens

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shazow/rateio"

	"github.com/scrolls-mods/chatlens/chat"
	"github.com/scrolls-mods/chatlens/chat/line"
)

// The error returned when a line is clicked while another menu is open.
var ErrMenuOpen = errors.New("menu already open")

// The error returned when menus are switched off by the window.
var ErrMenusDisabled = errors.New("menus disabled")

// The error returned when the window cannot show a menu right now.
var ErrMenusBlocked = errors.New("window cannot open menus")

// The error returned when menus are opened too quickly.
var ErrRateLimited = errors.New("rate limiting is in effect")

// The error returned when selecting with no menu open.
var ErrNoMenu = errors.New("no menu open")

// The error returned when selecting an entry the menu does not have.
var ErrInvalidChoice = errors.New("invalid menu choice")

// Default click rate: at most clickLimit menus per clickWindow.
const (
	clickLimit  = 3
	clickWindow = time.Second * 3
)

// Menu is an open context menu for one line.
type Menu struct {
	Line    chat.RenderedLine
	Actions []chat.Action
}

// Labels returns the menu entries' text in order.
func (m *Menu) Labels() []string {
	labels := make([]string, len(m.Actions))
	for i, a := range m.Actions {
		labels[i] = a.Label()
	}
	return labels
}

// Stats counts what a Host has seen.
type Stats struct {
	Rooms       int
	Logs        int
	Annotations int
	MenusOpened int
	Dispatched  int
}

// Host is the bridge between a chat window and the chat modules. The window
// forwards room events to the embedded Session, draws lines through Render,
// and reports clicks and menu choices.
type Host struct {
	*chat.Session
	performer chat.Performer

	mu           sync.Mutex
	viewer       string
	allowMenus   bool
	canOpenMenus bool
	limiter      rateio.Limiter
	menu         *Menu
	opened       int
	dispatched   int
}

// NewHost creates a Host that carries out actions with performer on behalf
// of viewerID.
func NewHost(performer chat.Performer, viewerID string) *Host {
	return &Host{
		Session:      chat.NewSession(),
		performer:    performer,
		viewer:       viewerID,
		allowMenus:   true,
		canOpenMenus: true,
		limiter:      rateio.NewSimpleLimiter(clickLimit, clickWindow),
	}
}

// Viewer returns the id of the local user.
func (h *Host) Viewer() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewer
}

// SetViewer changes the id of the local user, such as after a relog.
func (h *Host) SetViewer(id string) {
	h.mu.Lock()
	h.viewer = id
	h.mu.Unlock()
}

// SetAllowMenus switches menus on or off, following the window's own
// setting for sending challenges.
func (h *Host) SetAllowMenus(allow bool) {
	h.mu.Lock()
	h.allowMenus = allow
	h.mu.Unlock()
}

// SetCanOpenMenus tells the Host whether the window is in a state where it can
// show a menu at all, independent of the user's setting.
func (h *Host) SetCanOpenMenus(can bool) {
	h.mu.Lock()
	h.canOpenMenus = can
	h.mu.Unlock()
}

// SetRateLimit replaces the click limiter. nil disables rate limiting.
func (h *Host) SetRateLimit(limiter rateio.Limiter) {
	h.mu.Lock()
	h.limiter = limiter
	h.mu.Unlock()
}

// Render annotates a line being drawn in room for the current viewer.
func (h *Host) Render(log line.LogID, key line.Key, text string, room string) chat.RenderedLine {
	return h.OnRenderLine(log, key, text, room, h.Viewer())
}

// Click opens the menu for a clicked line. It returns a nil Menu and nil
// error when the line has nothing to offer.
func (h *Host) Click(l chat.RenderedLine) (*Menu, error) {
	if !l.Interactive() {
		return nil, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.allowMenus {
		return nil, ErrMenusDisabled
	}
	if !h.canOpenMenus {
		return nil, ErrMenusBlocked
	}
	if h.menu != nil {
		return nil, ErrMenuOpen
	}

	actions := l.Actions()
	if len(actions) == 0 {
		return nil, nil
	}
	if h.limiter != nil {
		if err := h.limiter.Count(1); err != nil {
			logger.Debugf("Menu for %s/%d rejected: %s", l.Log, l.Key, err)
			return nil, ErrRateLimited
		}
	}

	h.menu = &Menu{Line: l, Actions: actions}
	h.opened++
	logger.Debugf("Opened menu for %s/%d: %v", l.Log, l.Key, actions)
	return h.menu, nil
}

// OpenMenu returns the open menu, if any.
func (h *Host) OpenMenu() *Menu {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.menu
}

// CloseMenu closes the open menu. Returns false if none was open.
func (h *Host) CloseMenu() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	open := h.menu != nil
	h.menu = nil
	return open
}

// Select closes the menu and performs its i-th action.
func (h *Host) Select(i int) (chat.Action, error) {
	h.mu.Lock()
	menu := h.menu
	if menu == nil {
		h.mu.Unlock()
		return chat.Action{}, ErrNoMenu
	}
	if i < 0 || i >= len(menu.Actions) {
		h.mu.Unlock()
		return chat.Action{}, fmt.Errorf("%w: %d of %d", ErrInvalidChoice, i, len(menu.Actions))
	}
	h.menu = nil
	h.dispatched++
	h.mu.Unlock()

	action := menu.Actions[i]
	if err := chat.Dispatch(h.performer, action); err != nil {
		logger.Warningf("Action failed: %s", err)
		return action, err
	}
	logger.Infof("Performed %s", action)
	return action, nil
}

// Stats returns a snapshot of the host's counters.
func (h *Host) Stats() Stats {
	s := Stats{
		Rooms: len(h.Directory.Rooms()),
	}
	for _, log := range h.Lines.Logs() {
		s.Logs++
		s.Annotations += h.Lines.Len(log)
	}

	h.mu.Lock()
	s.MenusOpened = h.opened
	s.Dispatched = h.dispatched
	h.mu.Unlock()
	return s
}
