package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line configuration flags.
//
// Flags:
//
//	-a                 server address in format [host]:[port]
//	-adapter           remote vault server address used by the client
//	-c / -config       json or yaml file path with configs
//	-master-password   master credential used to clear a lockout
//	-lockout-threshold failed attempts before a session locks
//	-match-mode        strict or combined
//	-token-sign-key    session token signing key
//	-token-issuer      session token issuer
//	-session-ttl       idle session lifetime (e.g. "30m")
//	-token-ttl         absolute session token lifetime (e.g. "12h")
//	-max-sessions      live session cap
//	-storage           entry store backend: memory or sqlite
//	-d                 sqlite in-memory DSN
//	-request-timeout   request timeout (e.g. "10s")
//	-sweep-interval    idle session sweep interval (e.g. "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vault", flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress string
	var jsonConfigPath string
	var masterPassword string
	var lockoutThreshold int
	var matchMode string
	var tokenSignKey string
	var tokenIssuer string
	var sessionTTL time.Duration
	var tokenTTL time.Duration
	var maxSessions int
	var backend string
	var databaseDSN string
	var requestTimeout time.Duration
	var sweepInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "adapter", "", "Remote vault server address")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&masterPassword, "master-password", "", "Master password used for reauthorization")
	fs.IntVar(&lockoutThreshold, "lockout-threshold", 0, "Failed attempts before lockout")
	fs.StringVar(&matchMode, "match-mode", "", "Entry match mode: strict or combined")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Idle session lifetime (e.g., 30m)")
	fs.DurationVar(&tokenTTL, "token-ttl", 0, "Absolute session token lifetime (e.g., 12h)")
	fs.IntVar(&maxSessions, "max-sessions", 0, "Maximum number of live sessions")
	fs.StringVar(&backend, "storage", "", "Entry store backend: memory or sqlite")
	fs.StringVar(&databaseDSN, "d", "", "SQLite in-memory DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Idle session sweep interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			MasterPassword:   masterPassword,
			LockoutThreshold: lockoutThreshold,
			MatchMode:        matchMode,
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			SessionTTL:       sessionTTL,
			TokenTTL:         tokenTTL,
			MaxSessions:      maxSessions,
		},
		Storage: Storage{
			Backend: backend,
			DB:      DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SweepInterval: sweepInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when neither is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses "host:port". The host must be "localhost" or a valid IP.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
