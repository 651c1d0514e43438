package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/worthyderby/derbyslips/internal/app"
	"github.com/worthyderby/derbyslips/internal/browser"
	"github.com/worthyderby/derbyslips/internal/logger"
)

// ANSI escape codes
const (
	reset  = "\033[0m"
	yellow = "\033[33m"
	red    = "\033[31m"
	green  = "\033[32m"
	cyan   = "\033[36m"
	bold   = "\033[1m"
)

var (
	version = "dev"
)

// showBanner prints the DerbySlips logo
func showBanner() {
	logo := []string{
		`  ____            _           ____  _ _           `,
		` |  _ \  ___ _ __| |__  _   _/ ___|| (_)_ __  ___ `,
		` | | | |/ _ \ '__| '_ \| | | \___ \| | | '_ \/ __|`,
		` | |_| |  __/ |  | |_) | |_| |___) | | | |_) \__ \`,
		` |____/ \___|_|  |_.__/ \__, |____/|_|_| .__/|___/`,
		`                        |___/          |_|        `,
	}
	fmt.Println()
	for _, line := range logo {
		fmt.Printf("  %s%s%s\n", yellow, line, reset)
	}
	fmt.Println()
}

// cycleLogLevel cycles through debug -> info -> warn -> error
func cycleLogLevel(appLog *logger.SlogLogger) {
	var next string
	switch appLog.GetLevel().String() {
	case "DEBUG":
		next = "info"
	case "INFO":
		next = "warn"
	case "WARN":
		next = "error"
	case "ERROR":
		next = "debug"
	default:
		next = "info"
	}

	appLog.SetLevel(logger.ParseLevel(next))
	fmt.Printf("%sLog level: %s%s%s\n", green, yellow, next, reset)
}

// printKeyboardHelp displays all available keyboard shortcuts
func printKeyboardHelp() {
	fmt.Printf("\n%s%s  Keyboard Shortcuts:%s\n", bold, green, reset)
	fmt.Printf("    %sa%s      - Open the events API in a browser\n", cyan, reset)
	fmt.Printf("    %sh%s      - Toggle HTTP request logging\n", cyan, reset)
	fmt.Printf("    %sl%s      - Cycle log level (debug → info → warn → error)\n", cyan, reset)
	fmt.Printf("    %sq%s      - Quit server\n", cyan, reset)
	fmt.Printf("    %s?%s      - Show this help\n\n", cyan, reset)
}

func main() {
	port := flag.Int("port", 8081, "HTTP server port")
	dbPath := flag.String("db", "derbyslips.db", "SQLite database path")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	noBrowser := flag.Bool("nobrowser", false, "Do not open a browser on startup")
	noKeyboard := flag.Bool("nokeyboard", false, "Disable keyboard shortcuts")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `DerbySlips - Derby Award Voting & Tallying

Usage:
  derbyslips [options]

Options:
  -port int      HTTP server port (default 8081)
  -db string     SQLite database path (default "derbyslips.db")
  -loglevel str  Log level: debug, info, warn, error (default "info")
  -nobrowser     Do not open a browser on startup
  -nokeyboard    Disable keyboard shortcuts
  -version       Show version and exit
  -help          Show this help message

Keyboard Shortcuts (when enabled):
  a              Open the events API in a browser
  h              Toggle HTTP request logging
  l              Cycle log level (debug → info → warn → error)
  q              Quit server
  ?              Show keyboard help

Examples:
  derbyslips                          # Run on port 8081 with derbyslips.db
  derbyslips -port 8080               # Run on port 8080
  derbyslips -db /data/derby.db       # Use custom database path
  derbyslips -nokeyboard              # Disable keyboard shortcuts

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("derbyslips %s\n", version)
		os.Exit(0)
	}

	showBanner()

	// Create logger with specified level
	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	a, err := app.New(appLog, *dbPath)
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	addr := fmt.Sprintf(":%d", *port)

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.Run(addr)
	}()

	// Wait a moment for server to start
	time.Sleep(100 * time.Millisecond)

	eventsURL := fmt.Sprintf("http://localhost:%d/api/events", *port)

	if !*noBrowser {
		if err := browser.Open(eventsURL); err != nil {
			appLog.Warn("Could not open browser", "error", err)
		}
	}

	if !*noKeyboard {
		printKeyboardHelp()
		go listenForKeyboard(eventsURL, appLog)
	} else {
		fmt.Printf("\n%sKeyboard shortcuts disabled (use -nokeyboard=false to enable)%s\n\n", yellow, reset)
	}

	if err := <-serverErr; err != nil {
		log.Fatal(err)
	}
}
