// Package config defines the uqpack CLI's flag and metadata shapes, kept
// as a thin kong struct per spec §6.3 ("CLI (thin collaborator, not
// core)").
package config

import "github.com/alecthomas/kong"

// Cli holds every flag and positional argument the uqpack command
// accepts.
type Cli struct {
	Version kong.VersionFlag

	LogLevel   string `kong:"name=log-level,env=LOG_LEVEL,default=info,help='Set log level.'"`
	LogJSON    bool   `kong:"name=log-json,env=LOG_JSON,default=false,help='Enable JSON logging output.'"`
	LogNoColor bool   `kong:"name=log-nocolor,env=LOG_NOCOLOR,default=false,help='Disable colorized output.'"`

	JSON        string `kong:"arg,required,name=json,help='JSON value to encode.'"`
	Compression string `kong:"arg,optional,name=compression,enum='none,lz4,zstd',default=lz4,help='Compression to use: none, lz4, or zstd.'"`
}

// Meta carries the CLI's name, description and version metadata; main
// builds kong's command name and help description from ID, Desc and URL.
type Meta struct {
	ID      string
	Name    string
	Desc    string
	URL     string
	Author  string
	Version string
}
