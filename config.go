// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/btcsuite/btcutil"
	flags "github.com/jessevdk/go-flags"

	"github.com/diminutivecoin/dimd/btcutil/er"
	"github.com/diminutivecoin/dimd/chaincfg"
	"github.com/diminutivecoin/dimd/dimconfig"
	"github.com/diminutivecoin/dimd/dimconfig/version"
)

const (
	defaultConfigFilename = "dimd.conf"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "dimd.log"
	defaultSeedTimeout    = 10 * time.Second
)

var (
	defaultHomeDir    = btcutil.AppDataDir("dimd", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

//go:embed sample-dimd.conf
var sampleConfig string

// config defines the configuration options for dimd.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion    bool          `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile     string        `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir        string        `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir         string        `long:"logdir" description:"Directory to log output."`
	DebugLevel     string        `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	TestNet        bool          `long:"testnet" description:"Use the test network"`
	RegressionTest bool          `long:"regtest" description:"Use the regression test network"`
	DisableDNSSeed bool          `long:"nodnsseed" description:"Disable DNS seeding for peers"`
	DNSServer      string        `long:"dnsserver" description:"Name server used for DNS seeding, host:port (default: first entry of /etc/resolv.conf)"`
	Proxy          string        `long:"proxy" description:"Resolve DNS seeds through this Tor SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	SeedTimeout    time.Duration `long:"seedtimeout" description:"Timeout for each DNS seed lookup"`
	Prometheus     string        `long:"prometheus" description:"Serve prometheus metrics on this interface:port, disabled when empty"`
	RPCUser        string        `short:"u" long:"rpcuser" description:"Username for RPC connections"`
	RPCPass        string        `short:"P" long:"rpcpass" default-mask:"-" description:"Password for RPC connections"`

	params *chaincfg.Params
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, errr := os.Stat(name); errr != nil {
		if os.IsNotExist(errr) {
			return false
		}
	}
	return true
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//  5. Resolve and select exactly one network
//
// The above results in dimd functioning properly without any config settings
// while still allowing the user to override settings with config files and
// command line options.  Command line options always take precedence.
func loadConfig(args []string) (*config, []string, er.R) {
	cfg := config{
		ConfigFile:  defaultConfigFile,
		DataDir:     defaultDataDir,
		LogDir:      defaultLogDir,
		DebugLevel:  defaultLogLevel,
		SeedTimeout: defaultSeedTimeout,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	if _, errr := preParser.ParseArgs(args); errr != nil {
		if e, ok := errr.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, errr)
			os.Exit(0)
		}
	}

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	// Create the default config file with fresh RPC credentials the first
	// time dimd runs.
	if preCfg.ConfigFile == defaultConfigFile && !fileExists(preCfg.ConfigFile) {
		if err := dimconfig.CreateDefaultConfigFile(preCfg.ConfigFile, sampleConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating a default config file: %v\n", err)
		}
	}

	// Load additional config from file.
	var configFileError er.R
	parser := flags.NewParser(&cfg, flags.Default)
	if errr := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile); errr != nil {
		if _, ok := errr.(*os.PathError); !ok {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %v\n", errr)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, er.E(errr)
		}
		configFileError = er.E(errr)
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, errr := parser.ParseArgs(args)
	if errr != nil {
		if e, ok := errr.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return nil, nil, er.E(errr)
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	// Exactly one network may be chosen, and it must be chosen before any
	// network parameters are read.
	network, err := resolveNetwork(cfg.TestNet, cfg.RegressionTest)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}
	if err := chaincfg.SelectParams(network); err != nil {
		return nil, nil, err
	}
	cfg.params = chaincfg.ActiveParams()

	// Append the network type to the data and log directories so they are
	// "namespaced" per network.
	cfg.DataDir = netDir(cleanAndExpandPath(cfg.DataDir), cfg.params)
	cfg.LogDir = netDir(cleanAndExpandPath(cfg.LogDir), cfg.params)

	// Initialize log rotation.  After log rotation has been initialized, the
	// logger variables may be used.
	if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	if cfg.params.RequireRPCCredentials && (cfg.RPCUser == "" || cfg.RPCPass == "") {
		dimdLog.Warnf("No rpcuser/rpcpass configured, %s requires credentials "+
			"so the remote control interface stays disabled", cfg.params.Name)
	}

	if cfg.DisableDNSSeed && cfg.Proxy != "" {
		dimdLog.Warnf("--proxy has no effect together with --nodnsseed")
	}

	// Warn about missing config file only after all other configuration is
	// done.  This prevents the warning on help messages and invalid
	// options.  Note this should go directly before the return.
	if configFileError != nil {
		dimdLog.Warnf("%v", configFileError)
	}

	return &cfg, remainingArgs, nil
}
