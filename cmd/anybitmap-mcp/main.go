package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/anybitmap/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("anybitmap-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("anybitmap-mcp - MCP server for loading, transforming and re-encoding images")
			fmt.Println()
			fmt.Println("Usage: anybitmap-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  ANYBITMAP_LOG_LEVEL=debug          Enable debug logging")
			fmt.Println("  ANYBITMAP_MAX_PIXELS=<n>           Largest image (width*height) to decode or create")
			fmt.Println("  ANYBITMAP_DEFAULT_QUALITY=<0-100>  Encode quality when a tool call gives none")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("AnyBitmap MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("max pixels %d, default quality %d", cfg.MaxPixels, cfg.DefaultQuality)
	}

	server.Version = Version
	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
