package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┌─┐┬  ┬  ┌─┐┬─┐┬┌─┐
  ║ ╦├─┤│  │  ├┤ ├┬┘│├─┤
  ╚═╝┴ ┴┴─┘┴─┘└─┘┴└─┴┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "galleria",
		Short: "Server-driven image gallery upload picker",
		Long: `Galleria is a server-driven gallery upload picker for Go web apps.

Files are validated, previewed, reordered, and removed on the server
while a thin client forwards file payloads over HTTP and gestures over
a WebSocket. Features include:

  • Accept-pattern and size validation
  • Server-held previews with stable URLs
  • Drag-reorder, remove, and batch add with capacity limits
  • Live state pushes over WebSocket
  • Prometheus metrics and OpenTelemetry tracing`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands
	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Galleria ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
