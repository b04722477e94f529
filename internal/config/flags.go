package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// prefixList is a comma separated flag value.
type prefixList []string

func (p *prefixList) String() string {
	if p == nil {
		return ""
	}
	return strings.Join(*p, ",")
}

func (p *prefixList) Set(s string) error {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*p = append(*p, item)
		}
	}
	return nil
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-backend-endpoint backend REST API root
//	-project backend project id
//	-api-key backend server API key
//	-storage storage driver (backend, postgres, sqlite)
//	-d database DSN
//	-files files driver (backend, s3)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-expiry-interval posting expiry interval (e.g., "1h")
//	-protected protected path prefixes, comma separated
//	-auth-only auth-only path prefixes, comma separated
//	-trusted-proxies proxy IPs or CIDRs, comma separated
//	-log-level minimal log level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	var serverAddress NetAddress
	var backendEndpoint, projectID, apiKey string
	var storageDriver, databaseDSN, filesDriver string
	var jsonConfigPath string
	var requestTimeout, expiryInterval time.Duration
	var protected, authOnly, trustedProxies prefixList
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&backendEndpoint, "backend-endpoint", "", "Backend REST API root")
	fs.StringVar(&projectID, "project", "", "Backend project id")
	fs.StringVar(&apiKey, "api-key", "", "Backend server API key")
	fs.StringVar(&storageDriver, "storage", "", "Storage driver: backend, postgres or sqlite")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&filesDriver, "files", "", "Files driver: backend or s3")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&expiryInterval, "expiry-interval", 0, "Job posting expiry check interval (e.g., 1h)")
	fs.Var(&protected, "protected", "Protected path prefixes, comma separated")
	fs.Var(&authOnly, "auth-only", "Auth-only path prefixes, comma separated")
	fs.Var(&trustedProxies, "trusted-proxies", "Proxy IPs or CIDRs allowed to set forwarding headers, comma separated")
	fs.StringVar(&logLevel, "log-level", "", "Minimal log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Backend: Backend{
			Endpoint:  backendEndpoint,
			ProjectID: projectID,
			APIKey:    apiKey,
		},
		Storage: Storage{
			Driver: storageDriver,
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				Driver: filesDriver,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			TrustedProxies: trustedProxies,
		},
		Guard: Guard{
			ProtectedPrefixes: protected,
			AuthOnlyPrefixes:  authOnly,
		},
		Workers: Workers{
			ExpiryInterval: expiryInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
