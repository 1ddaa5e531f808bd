package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress is a host:port flag value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-db-driver storage driver (pgx, sqlite3, memory)
//	-d database DSN
//	-redis-address redis address in format [host]:[port]
//	-c/-config json file path with configs
//	-access-token-secret access token signing key
//	-refresh-token-secret refresh token signing key
//	-access-token-duration access token lifetime (e.g., "15m")
//	-refresh-token-duration refresh token lifetime (e.g., "240h")
//	-token-issuer token issuer name
//	-session-policy session policy (single, multi)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sweep-interval expired session sweep interval (e.g., "1h")
//	-health-interval storage health probe interval (e.g., "15s")
//	-otlp-endpoint OTLP/HTTP collector address
//	-server client target address (e.g., "http://localhost:8080")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var dbDriver, databaseDSN, redisAddress string
	var jsonConfigPath string
	var accessTokenSecret, refreshTokenSecret string
	var accessTokenDuration, refreshTokenDuration time.Duration
	var tokenIssuer, sessionPolicy, passwordHasher string
	var requestTimeout, sweepInterval, healthInterval time.Duration
	var otlpEndpoint string
	var adapterAddress string

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&dbDriver, "db-driver", "", "Storage driver: pgx, sqlite3 or memory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&accessTokenSecret, "access-token-secret", "", "Access token signing key")
	fs.StringVar(&refreshTokenSecret, "refresh-token-secret", "", "Refresh token signing key")
	fs.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Access token lifetime (e.g., 15m)")
	fs.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Refresh token lifetime (e.g., 240h)")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&sessionPolicy, "session-policy", "", "Session policy: single or multi")
	fs.StringVar(&passwordHasher, "password-hasher", "", "Password hash algorithm: bcrypt or argon2id")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired session sweep interval (e.g., 1h)")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Storage health probe interval (e.g., 15s)")
	fs.StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP/HTTP collector address")
	fs.StringVar(&adapterAddress, "server", "", "Auth server base URL used by the client")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			AccessTokenSecret:    accessTokenSecret,
			AccessTokenDuration:  accessTokenDuration,
			RefreshTokenSecret:   refreshTokenSecret,
			RefreshTokenDuration: refreshTokenDuration,
			TokenIssuer:          tokenIssuer,
			SessionPolicy:        sessionPolicy,
			PasswordHasher:       passwordHasher,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
			Redis: Redis{
				Address: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SweepInterval:  sweepInterval,
			HealthInterval: healthInterval,
		},
		Telemetry: Telemetry{
			OTLPEndpoint: otlpEndpoint,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port" where host is empty (all interfaces), "localhost"
// or an IP literal; IPv6 literals go in brackets.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.ParseUint(rawPort, 10, 16)
	if err != nil || port == 0 {
		return fmt.Errorf("%w: port %q must be in range 1-65535", ErrInvalidNetAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is neither localhost nor an IP address", ErrInvalidNetAddress, host)
	}

	a.Host = host
	a.Port = int(port)
	return nil
}
