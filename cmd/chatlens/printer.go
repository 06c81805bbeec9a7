package main

import (
	"fmt"
	"io"

	"github.com/scrolls-mods/chatlens/chat"
)

// printPerformer writes what each action would do instead of doing it.
type printPerformer struct {
	out io.Writer
}

func (p *printPerformer) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(p.out, "-> "+format+"\n", args...)
	return err
}

func (p *printPerformer) OpenLink(url string) error   { return p.printf("open %s", url) }
func (p *printPerformer) Challenge(u chat.User) error { return p.printf("challenge %s", u.Label()) }
func (p *printPerformer) Trade(u chat.User) error     { return p.printf("trade with %s", u.Label()) }
func (p *printPerformer) Whisper(u chat.User) error   { return p.printf("whisper to %s", u.Label()) }
func (p *printPerformer) Profile(u chat.User) error   { return p.printf("profile of %s", u.Label()) }
func (p *printPerformer) AddFriend(u chat.User) error { return p.printf("friend request to %s", u.Label()) }
func (p *printPerformer) Block(u chat.User) error     { return p.printf("ignore %s", u.Label()) }
func (p *printPerformer) Unblock(u chat.User) error   { return p.printf("unignore %s", u.Label()) }
