package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/tokrecharge/migration-server/pkg/cli/config"
)

var (
	bannerTitle = color.New(color.FgCyan, color.Bold)
	bannerInfo  = color.New(color.FgWhite)
	bannerWarn  = color.New(color.FgYellow)
	bannerOK    = color.New(color.FgGreen)
)

func printStartup(w io.Writer, server *config.Server, db *config.Database) {
	bannerTitle.Fprintf(w, "Starting TokRecharge Migration Server on port %s\n", server.Port)
	bannerInfo.Fprintf(w, "Environment: %s\n", server.Environment)
	bannerInfo.Fprintf(w, "Database: %s\n", db.Label())
}

func printBootstrapping(w io.Writer, staticDir string) {
	bannerWarn.Fprintf(w, "Warning: %s directory not found, creating basic structure...\n", staticDir)
}

func printListening(w io.Writer, addr string) {
	bannerOK.Fprintf(w, "Migration server running at http://%s\n", addr)
}

func printStopped(w io.Writer) {
	bannerInfo.Fprintf(w, "\nMigration server stopped\n")
}
