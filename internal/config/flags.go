package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
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

// parseFlags parses the configuration flags from args.
//
// Flags:
//
//	-a                 listen address in format [host]:port
//	-d                 database DSN
//	-db-name           mongo database name
//	-c/-config         json file path with configs
//	-env-file          .env file path
//	-token-sign-key    token signing key
//	-token-issuer      token issuer name
//	-token-duration    token duration (e.g., "168h")
//	-request-timeout   inbound request timeout (e.g., "30s")
//	-cookie-secure     mark the session cookie Secure
//	-allowed-origins   comma separated CORS origins
//	-gemini-api-key    Gemini API key
//	-gemini-model      Gemini model name
//	-gemini-base-url   Gemini API base url
//	-adapter-timeout   outbound request timeout (e.g., "60s")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, databaseName string
	var jsonConfigPath, envFilePath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout, adapterTimeout time.Duration
	var cookieSecure bool
	var allowedOrigins string
	var geminiAPIKey, geminiModel, geminiBaseURL string

	fs := flag.NewFlagSet("careersphere", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseName, "db-name", "", "Mongo database name")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFilePath, "env-file", "", ".env file path")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&cookieSecure, "cookie-secure", false, "Mark the session cookie Secure")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")
	fs.StringVar(&geminiAPIKey, "gemini-api-key", "", "Gemini API key")
	fs.StringVar(&geminiModel, "gemini-model", "", "Gemini model name")
	fs.StringVar(&geminiBaseURL, "gemini-base-url", "", "Gemini API base url")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 60s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN:  databaseDSN,
				Name: databaseName,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			CookieSecure:   cookieSecure,
			AllowedOrigins: splitList(allowedOrigins),
		},
		Adapter: Adapter{
			GeminiAPIKey:   geminiAPIKey,
			GeminiModel:    geminiModel,
			GeminiBaseURL:  geminiBaseURL,
			RequestTimeout: adapterTimeout,
		},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// An unset address renders as "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the NetAddress.
// An empty host listens on all interfaces; any other host must be
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within [1, 65535]")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
