package config

import "github.com/urfave/cli/v3"

// Database holds the database connection string. The server never connects;
// the value is only reported by the health endpoint.
type Database struct {
	URL string `masq:"secret"`
}

// Flags returns CLI flags for database configuration
func (c *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "database-url",
			Usage:       "Database connection string (echoed by /api/health)",
			Destination: &c.URL,
			Sources:     cli.EnvVars("DATABASE_URL"),
		},
	}
}

// Configured reports whether a connection string was given
func (c *Database) Configured() bool {
	return c.URL != ""
}

// Label returns "configured" or "not configured"
func (c *Database) Label() string {
	if c.Configured() {
		return "configured"
	}
	return "not configured"
}
