package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/akmistry/timeintervals/internal/app/intervalctl"
)

var (
	domainFlag  = flag.String("domain", "date", "Interval domain: instant, date, datetime or offset")
	zoneFlag    = flag.String("zone", "UTC", "IANA zone for instant literals without an offset")
	formatFlag  = flag.String("format", intervalctl.FormatText, "Output format: text, json or prototext")
	queryFlag   = flag.String("query", "", "Point to look up after applying the script")
	verboseFlag = flag.Bool("verbose", false, "Verbose logging")
)

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		log.Print("Usage: intervalctl [flags] [SCRIPT]")
		os.Exit(1)
	}

	if *verboseFlag {
		slog.SetDefault(slog.New(slog.NewTextHandler(
			os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	domain, err := intervalctl.ParseDomain(*domainFlag)
	if err != nil {
		log.Printf("Invalid domain flag: %v", err)
		os.Exit(1)
	}
	loc, err := time.LoadLocation(*zoneFlag)
	if err != nil {
		log.Printf("Invalid zone flag %s: %v", *zoneFlag, err)
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	cmds, err := intervalctl.ParseScript(in)
	if err != nil {
		log.Fatal(err)
	}
	slog.Debug("Parsed script", "commands", len(cmds), "domain", domain, "zone", loc)

	opts := intervalctl.Options{
		Domain:   domain,
		Location: loc,
		Format:   *formatFlag,
		Query:    *queryFlag,
	}
	err = intervalctl.Run(os.Stdout, cmds, opts)
	if err != nil {
		log.Fatal(err)
	}
}
