package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default ports for each stub
const (
	DefaultBitNetPort     = 8000
	DefaultOmniParserPort = 8800
	DefaultFlaskGUIPort   = 5000
)

// Environment variables read at startup
const (
	EnvOmniParserPort = "OMNIPARSER_PORT"
	EnvFlaskPort      = "FLASK_PORT"
)

// DefaultHost is the address every stub binds to
const DefaultHost = "0.0.0.0"

// LookupFunc looks up an environment variable, reporting whether it was set
type LookupFunc func(key string) (string, bool)

// OSLookup reads from the process environment
var OSLookup LookupFunc = os.LookupEnv

// Stub is the resolved configuration of a single stub process.
// It is built once at startup and passed by value.
type Stub struct {
	Name string
	Host string
	Port int

	// PortLabel is the port as reported back to clients. For Flask GUI this is
	// the raw FLASK_PORT value rather than the parsed integer.
	PortLabel string
}

// Addr returns the host:port the stub listens on
func (s Stub) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// BitNet resolves the BitNet configuration from the --port flag value
func BitNet(flagPort int) (Stub, error) {
	return newStub("BitNet", flagPort)
}

// OmniParser resolves the OmniParser configuration. OMNIPARSER_PORT wins over
// the flag when it holds an integer; any other value is ignored.
func OmniParser(flagPort int, lookup LookupFunc) (Stub, error) {
	port := flagPort
	if raw, ok := lookup(EnvOmniParserPort); ok {
		if p, err := strconv.Atoi(raw); err == nil {
			port = p
		}
	}
	return newStub("OmniParser", port)
}

// FlaskGUI resolves the Flask GUI configuration from FLASK_PORT.
// A non-integer FLASK_PORT is an error.
func FlaskGUI(lookup LookupFunc) (Stub, error) {
	label, ok := lookup(EnvFlaskPort)
	if !ok {
		label = strconv.Itoa(DefaultFlaskGUIPort)
	}

	port, err := strconv.Atoi(label)
	if err != nil {
		return Stub{}, ValidationError{
			Path:    EnvFlaskPort,
			Message: fmt.Sprintf("invalid port %q", label),
		}
	}

	s, err := newStub("Flask GUI", port)
	if err != nil {
		return Stub{}, err
	}
	s.PortLabel = label
	return s, nil
}

func newStub(name string, port int) (Stub, error) {
	if err := ValidatePort(port); err != nil {
		return Stub{}, err
	}
	return Stub{
		Name:      name,
		Host:      DefaultHost,
		Port:      port,
		PortLabel: strconv.Itoa(port),
	}, nil
}
