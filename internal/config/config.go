// Package config handles configuration loading for Interface5 clients.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax). This allows sensitive values
// like database credentials to be injected at runtime.
//
// # Configuration Sections
//
//   - endpoint: target Interface5 instance (hostname, port, scenario, tenant)
//   - tls: transport security settings
//   - journal: optional delivery journal (MongoDB)
//
// # Example Configuration
//
//	endpoint:
//	  hostname: i5.example.com
//	  port: 43001
//	  scenario: Processor
//	  tenant: Default
//
//	tls:
//	  insecureSkipVerify: false
//	  rootCAFile: /etc/ssl/i5-ca.pem
//
//	journal:
//	  enabled: true
//	  mongodb:
//	    uri: ${MONGODB_URI}
//	    database: interface5
//
// See [Load] for loading configuration from a file.
package config

import (
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/CondeSun/i5Req/pkg/transport"
)

// Config is the root configuration structure
type Config struct {
	Endpoint EndpointConfig `yaml:"endpoint"`
	TLS      TLSConfig      `yaml:"tls"`
	Journal  JournalConfig  `yaml:"journal"`
}

// EndpointConfig addresses the target Interface5 instance
type EndpointConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Scenario string `yaml:"scenario"`
	Tenant   string `yaml:"tenant"`
}

// TLSConfig holds transport security settings
type TLSConfig struct {
	// InsecureSkipVerify disables certificate trust verification.
	// Controlled/test environments only.
	InsecureSkipVerify bool `yaml:"insecureSkipVerify"`
	// RootCAFile is an optional PEM bundle to trust instead of the
	// system pool
	RootCAFile string        `yaml:"rootCAFile"`
	Timeout    time.Duration `yaml:"timeout"`
}

// JournalConfig holds delivery journal settings
type JournalConfig struct {
	Enabled bool          `yaml:"enabled"`
	MongoDB MongoDBConfig `yaml:"mongodb"`
}

// MongoDBConfig holds MongoDB connection settings
type MongoDBConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Validate
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Endpoint.Port == 0 {
		c.Endpoint.Port = 443
	}
	if c.TLS.Timeout == 0 {
		c.TLS.Timeout = 30 * time.Second
	}
	if c.Journal.MongoDB.Database == "" {
		c.Journal.MongoDB.Database = "interface5"
	}
	if c.Journal.MongoDB.Collection == "" {
		c.Journal.MongoDB.Collection = "deliveries"
	}
}

func (c *Config) validate() error {
	if c.Endpoint.Hostname == "" {
		return fmt.Errorf("endpoint.hostname is required")
	}
	if c.Endpoint.Scenario == "" {
		return fmt.Errorf("endpoint.scenario is required")
	}
	if c.Endpoint.Tenant == "" {
		return fmt.Errorf("endpoint.tenant is required")
	}

	if c.Journal.Enabled && c.Journal.MongoDB.URI == "" {
		return fmt.Errorf("journal.mongodb.uri is required when journal is enabled")
	}

	return nil
}

// TransportEndpoint converts the endpoint section into a transport.Endpoint
func (c *Config) TransportEndpoint() transport.Endpoint {
	return transport.NewEndpoint(
		c.Endpoint.Hostname,
		c.Endpoint.Port,
		c.Endpoint.Scenario,
		c.Endpoint.Tenant,
	)
}

// HTTPSConfig builds the transport configuration from the tls section,
// loading the root CA bundle when one is configured.
func (c *Config) HTTPSConfig() (*transport.HTTPSConfig, error) {
	httpsCfg := transport.DefaultHTTPSConfig()
	httpsCfg.InsecureSkipVerify = c.TLS.InsecureSkipVerify
	httpsCfg.Timeout = c.TLS.Timeout

	if c.TLS.RootCAFile != "" {
		pem, err := os.ReadFile(c.TLS.RootCAFile)
		if err != nil {
			return nil, fmt.Errorf("reading root CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", c.TLS.RootCAFile)
		}
		httpsCfg.RootCAs = pool
	}

	return httpsCfg, nil
}
