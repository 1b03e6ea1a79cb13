// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordfix spelling corrector, its IPC server and a CLI [DBG] mode.

WordFix loads a plain word list into a 26-ary trie, counting how often each
word occurs. A query returns the dictionary word most likely meant: the word
itself when known, otherwise the most frequent word one edit away, otherwise
the most frequent word two edits away. Edits are deletions, transpositions
of neighbours, substitutions and insertions of a-z letters. Frequency ties
go to the alphabetically smaller word.

# Usage

Correct a single word:

	wordfix -dict words.txt speling

Run in CLI mode for interactive testing:

	wordfix -dict words.txt -c

Start the IPC server with the configured dictionary:

	wordfix

Print the loaded dictionary, optionally with frequencies:

	wordfix -dict words.txt -dump -freq

Several word lists can be combined with commas. They are read concurrently
and merged into one dictionary:

	wordfix -dict base.txt,extra.txt speling

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	min_word_len = 1
	max_word_len = 32

	[dict]
	path = "words.txt"
	encoding = "utf-8"
	cache_size = 1024

	[cli]
	show_frequency = true
	no_filter = false

The config file is automatically created with defaults if it doesn't exist.
WORDFIX_DICT, WORDFIX_ENCODING and WORDFIX_CACHE_SIZE override the file.
Flags override both.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. See package server
for the message shapes.

	{"id": "req1", "w": "speling"}
	{"id": "req1", "w": "speling", "s": "spelling", "ok": true, "f": 3, "t": 145}

# Command Line Flags

	-dict string
	    Dictionary file(s), comma separated (default from config)
	-config string
	    Path to a custom config file
	-encoding string
	    Dictionary encoding: utf-8 or latin1 (default from config)
	-cache int
	    Suggestion cache size, 0 disables it (default from config)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-no-filter
	    Disable input filtering in CLI mode
	-dump
	    Print every dictionary word and exit
	-freq
	    Include frequencies in -dump output
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bastiangx/wordfix/internal/cli"
	"github.com/bastiangx/wordfix/internal/logger"
	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/bastiangx/wordfix/pkg/corrector"
	"github.com/bastiangx/wordfix/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordfix"
	gh      = "https://github.com/bastiangx/wordfix"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the packages together for the selected mode.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictFlag := flag.String("dict", "", "Dictionary file(s), comma separated (default from config)")
	configFlag := flag.String("config", "", "Path to a custom config file")
	encodingFlag := flag.String("encoding", "", "Dictionary encoding: utf-8 or latin1 (default from config)")
	cacheFlag := flag.Int("cache", -1, "Suggestion cache size, 0 disables it (default from config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering in CLI mode")
	dumpMode := flag.Bool("dump", false, "Print every dictionary word and exit")
	withFreq := flag.Bool("freq", false, "Include frequencies in -dump output")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	// stdout belongs to IPC and query output
	log.SetOutput(os.Stderr)

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	defaultConfigPath := pathResolver.GetConfigPath("config.toml")
	appConfig, configPath := config.LoadConfigWithPriority(*configFlag, defaultConfigPath)
	log.Debugf("Using config file: (%s) in %s", config.GetActiveConfigPath(configPath), pathResolver.GetConfigDir())

	if *dictFlag != "" {
		appConfig.Dict.Path = *dictFlag
	}
	if *encodingFlag != "" {
		appConfig.Dict.Encoding = *encodingFlag
	}
	if *cacheFlag >= 0 {
		appConfig.Dict.CacheSize = *cacheFlag
	}
	if *noFilter {
		appConfig.CLI.NoFilter = true
	}
	appConfig.Validate()

	corr := corrector.New(
		corrector.WithCache(appConfig.Dict.CacheSize),
		corrector.WithLogger(logger.NewStderr("dict")),
	)

	paths := appConfig.DictPaths()
	for i, p := range paths {
		paths[i] = pathResolver.ResolveDictPath(p)
	}
	log.Debugf("Loading dictionary: %v (%s)", paths, appConfig.DictEncoding())
	if err := corr.LoadFiles(context.Background(), appConfig.DictEncoding(), paths...); err != nil {
		// the server can still receive a reload request with a valid path
		if *cliMode || *dumpMode || flag.NArg() > 0 {
			log.Fatalf("Failed to load dictionary: %v", err)
		}
		log.Warnf("Starting without dictionary: %v", err)
	}

	if *dumpMode {
		if err := dump(corr, *withFreq); err != nil {
			log.Fatalf("Dump failed: %v", err)
		}
		return
	}

	if flag.NArg() > 0 {
		printSuggestions(os.Stdout, corr, flag.Args())
		return
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minLen", appConfig.Server.MinWordLen,
			"maxLen", appConfig.Server.MaxWordLen,
			"noFilter", appConfig.CLI.NoFilter)

		inputHandler := cli.NewInputHandler(corr, os.Stdout,
			appConfig.Server.MinWordLen, appConfig.Server.MaxWordLen, appConfig.CLI.NoFilter, appConfig.CLI.ShowFrequency)
		if err := inputHandler.Start(os.Stdin); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(corr, appConfig)
	srv.SetPathResolver(pathResolver.ResolveDictPath)
	showStartupInfo(corr, paths)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// printSuggestions writes one line per word: its suggestion, or a notice when none exists.
func printSuggestions(w io.Writer, c corrector.ICorrector, words []string) {
	for _, word := range words {
		if suggestion, ok := c.Suggest(word); ok {
			fmt.Fprintln(w, suggestion)
		} else {
			fmt.Fprintln(w, "No suggestion found")
		}
	}
}

func dump(corr *corrector.Corrector, withFreq bool) error {
	if !withFreq {
		return corr.DumpTo(os.Stdout)
	}
	dict := corr.Dictionary()
	if dict == nil {
		return corrector.ErrNoDictionary
	}
	var err error
	dict.Walk(func(word string, freq uint) bool {
		_, err = fmt.Fprintf(os.Stdout, "%s\t%d\n", word, freq)
		return err == nil
	})
	return err
}

func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ WordFix ] Finds the word you meant")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(corr *corrector.Corrector, paths []string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(currentLevel)

	stats := corr.Stats()
	fmt.Fprintln(os.Stderr, "=========")
	fmt.Fprintln(os.Stderr, " WordFix ")
	fmt.Fprintln(os.Stderr, "=========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("dict: ( %s )", strings.Join(paths, ", "))
	log.Infof("words: %s, nodes: %s", utils.FormatWithCommas(stats["words"]), utils.FormatWithCommas(stats["nodes"]))
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")
}
