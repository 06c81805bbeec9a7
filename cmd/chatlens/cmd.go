package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexcesaro/log"
	"github.com/alexcesaro/log/golog"
	"github.com/dustin/go-humanize"
	flags "github.com/jessevdk/go-flags"
	"github.com/shazow/rateio"

	"github.com/scrolls-mods/chatlens"
	"github.com/scrolls-mods/chatlens/chat"
)

// Version of the binary, assigned during build.
var Version string = "dev"

// Options contains the flag options
type Options struct {
	Verbose    []bool `short:"v" long:"verbose" description:"Show verbose logging."`
	Version    bool   `long:"version" description:"Print version and exit."`
	Viewer     string `long:"viewer" description:"Id of the local user, overrides the script."`
	OpenLinks  bool   `long:"open-links" description:"Open selected links in the browser instead of printing them."`
	ClickLimit int    `long:"click-limit" description:"Menus allowed per 3 seconds, 0 disables limiting." default:"0"`
	LogSize    int    `long:"log-size" description:"Lines kept per room log." default:"500"`

	Args struct {
		Script string `positional-arg-name:"SCRIPT" description:"YAML event script, - for stdin."`
	} `positional-args:"yes"`
}

var logLevels = []log.Level{
	log.Warning,
	log.Info,
	log.Debug,
}

func fail(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

func main() {
	options := Options{}
	parser := flags.NewParser(&options, flags.Default)
	p, err := parser.Parse()
	if err != nil {
		if p == nil {
			fmt.Print(err)
		}
		return
	}

	if options.Version {
		fmt.Println(Version)
		return
	}

	// Figure out the log level
	numVerbose := len(options.Verbose)
	if numVerbose >= len(logLevels) {
		numVerbose = len(logLevels) - 1
	}

	logLevel := logLevels[numVerbose]
	logger := golog.New(os.Stderr, logLevel)
	chatlens.SetLogger(logger)

	if logLevel == log.Debug {
		// Enable logging from submodules
		chat.SetLogger(os.Stderr)
	}

	var in io.Reader
	switch options.Args.Script {
	case "", "-":
		in = os.Stdin
	default:
		fp, err := os.Open(options.Args.Script)
		if err != nil {
			fail(2, "Failed to open script: %v\n", err)
		}
		defer fp.Close()
		in = fp
	}

	script, err := ReadScript(in)
	if err != nil {
		fail(3, "Failed to read script: %v\n", err)
	}
	if options.Viewer != "" {
		script.Viewer = options.Viewer
	}
	if script.Viewer == "" {
		fail(4, "No viewer: set one in the script or with --viewer\n")
	}

	var performer chat.Performer = &printPerformer{out: os.Stdout}
	if options.OpenLinks {
		performer = chatlens.NewPerformer(performer, chatlens.BrowserOpener{})
	}

	host := chatlens.NewHost(performer, script.Viewer)
	if options.ClickLimit > 0 {
		host.SetRateLimit(rateio.NewSimpleLimiter(options.ClickLimit, time.Second*3))
	} else {
		host.SetRateLimit(nil)
	}

	r := NewReplay(host, options.LogSize, os.Stdout)
	started := time.Now()
	if err := r.Run(script); err != nil {
		fail(5, "Replay failed: %v\n", err)
	}
	logger.Infof("Replay took %s", time.Since(started))

	stats := host.Stats()
	fmt.Printf("Replayed %s events: %s rooms, %s lines annotated in %s logs, %s menus, %s actions\n",
		humanize.Comma(int64(len(script.Events))),
		humanize.Comma(int64(stats.Rooms)),
		humanize.Comma(int64(stats.Annotations)),
		humanize.Comma(int64(stats.Logs)),
		humanize.Comma(int64(stats.MenusOpened)),
		humanize.Comma(int64(stats.Dispatched)),
	)
}
