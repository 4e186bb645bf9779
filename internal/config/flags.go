package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port. An empty host listens on
// every interface; otherwise it must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return errors.New("need address in a form `host:port`")
	}

	host := s[:idx]
	port, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(strings.Trim(host, "[]")); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}

// ParseServerFlags parses the server command line.
//
// Flags:
//
//	-a, --address        listen address [host]:port
//	-d, --database-dsn   PostgreSQL DSN
//	-c, --config         JSON config file path
//	    --admin-password admin password
//	    --token-sign-key admin token signing key
//	    --token-issuer   admin token issuer
//	    --token-duration admin token lifetime (e.g. 1h)
//	    --request-timeout inbound request timeout (e.g. 30s)
//	    --max-data-size  largest accepted payload in bytes
//	    --max-versions   records kept per pass and domain
//	    --rate           requests per second per client IP
//	    --prune-interval how often surplus versions are removed
func ParseServerFlags(args []string) (*StructuredConfig, error) {
	fs := pflag.NewFlagSet("go-pass-sync-server", pflag.ContinueOnError)

	var address NetAddress
	var cfg StructuredConfig

	fs.VarP(&address, "address", "a", "Net address host:port")
	fs.StringVarP(&cfg.Storage.DB.DSN, "database-dsn", "d", "", "Database DSN")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.App.AdminPassword, "admin-password", "", "Admin password")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.App.SupportedClients, "supported-clients", "", "Accepted client protocol versions (e.g., \">= 1.0.0, < 2.0.0\")")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&cfg.Limits.MaxDataSize, "max-data-size", 0, "Max payload size in bytes")
	fs.IntVar(&cfg.Limits.MaxVersions, "max-versions", 0, "Versions kept per pass and domain")
	fs.Float64Var(&cfg.Limits.RatePerSecond, "rate", 0, "Requests per second per client IP")
	fs.DurationVar(&cfg.Workers.PruneInterval, "prune-interval", 0, "Version prune interval")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = address.String()
	return &cfg, nil
}

// ClientFlags are the persistent flags of the client CLI. They are bound to
// a flag set owned by the caller (the cobra root command).
type ClientFlags struct {
	configPath     string
	stateDSN       string
	profile        string
	logFile        string
	debug          bool
	requestTimeout time.Duration
	cryptoScheme   string
}

// BindClientFlags registers the client flags on fs.
func BindClientFlags(fs *pflag.FlagSet) *ClientFlags {
	f := &ClientFlags{}

	fs.StringVarP(&f.configPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.stateDSN, "state", "", "Engine state database (sqlite file or \"memory\")")
	fs.StringVar(&f.profile, "profile", "", "Host profile JSON file")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 15s)")
	fs.StringVar(&f.cryptoScheme, "crypto-scheme", "", "Payload codec: aead or legacy")

	return f
}

func (f *ClientFlags) structured() *StructuredConfig {
	if f == nil {
		return nil
	}
	return &StructuredConfig{
		Client: Client{
			StateDSN:    f.stateDSN,
			ProfilePath: f.profile,
			LogFile:     f.logFile,
			Debug:       f.debug,
		},
		Adapter:      Adapter{RequestTimeout: f.requestTimeout},
		Crypto:       Crypto{Scheme: f.cryptoScheme},
		JSONFilePath: f.configPath,
	}
}
