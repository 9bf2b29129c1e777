//go:build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		rosterPath  string
	)
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "config file")
	flag.StringVar(&rosterPath, "roster", "", "friend list file")
	flag.Parse()

	if showVersion {
		fmt.Printf("friendlist %s (%s) %s\n", version, commit, date)
		return
	}

	// Accepted so scripts written for the client build still parse.
	_, _ = configPath, rosterPath
	fmt.Fprintln(os.Stderr, "friendlist needs the raylib client build (cgo enabled); use friendctl to manage the list from a terminal.")
	os.Exit(1)
}
