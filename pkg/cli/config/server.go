package config

import (
	"net"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Host        string
	Port        string
	StaticDir   string
	Environment string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "host",
			Usage:       "Interface to bind",
			Value:       "0.0.0.0",
			Destination: &c.Host,
			Sources:     cli.EnvVars("HOST"),
		},
		&cli.StringFlag{
			Name:        "port",
			Aliases:     []string{"p"},
			Usage:       "TCP port to listen on",
			Value:       "5000",
			Destination: &c.Port,
			Sources:     cli.EnvVars("PORT"),
		},
		&cli.StringFlag{
			Name:        "static-dir",
			Usage:       "Directory served for non-API paths",
			Value:       "client",
			Destination: &c.StaticDir,
			Sources:     cli.EnvVars("TOKRECHARGE_STATIC_DIR"),
		},
		&cli.StringFlag{
			Name:        "environment",
			Usage:       "Environment label shown at startup",
			Value:       "development",
			Destination: &c.Environment,
			Sources:     cli.EnvVars("NODE_ENV"),
		},
	}
}

// Validate checks that the port is a usable TCP port number
func (c *Server) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return goerr.Wrap(err, "port must be a number", goerr.V("port", c.Port))
	}
	if port < 0 || port > 65535 {
		return goerr.New("port out of range", goerr.V("port", port))
	}
	if c.StaticDir == "" {
		return goerr.New("static directory is required")
	}
	return nil
}

// Addr returns the listen address
func (c *Server) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
