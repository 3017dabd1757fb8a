package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

const (
	DefaultConfigPath = "threedoors.ini"
	ConfigPathEnv     = "THREEDOORS_CONFIG"
)

type Config struct {
	SavePath  string
	WorldPath string
	Seed      int64
	Headless  bool
	Shop      bool
	Restore   string
	Resume    bool

	Autosave         bool
	AutosaveInterval int
	AutosavePath     string

	LogLevel    string
	LogEncoding string
	LogOutput   string

	MCPHTTP      bool
	MCPAddr      string
	MCPPath      string
	MCPToken     string
	MCPJSON      bool
	MCPStateless bool
	MCPOrigins   stringSlice
}

func defaultConfig() *Config {
	return &Config{
		SavePath:         DefaultSavePath,
		Seed:             -1,
		AutosaveInterval: 5,
		AutosavePath:     "data/autosave.db",
		LogLevel:         "warn",
		LogEncoding:      "console",
		LogOutput:        "stderr",
		MCPAddr:          "127.0.0.1:8765",
		MCPPath:          "/mcp",
	}
}

func configPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	return DefaultConfigPath
}

// loadConfig reads the ini file at path over the defaults. A missing file is
// not an error.
func loadConfig(path string) (*Config, error) {
	c := defaultConfig()
	f, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	game := f.Section("Game")
	c.SavePath = game.Key("SavePath").MustString(c.SavePath)
	c.WorldPath = game.Key("WorldPath").MustString(c.WorldPath)
	c.Seed = game.Key("Seed").MustInt64(c.Seed)
	c.Headless = game.Key("Headless").MustBool(c.Headless)
	c.Shop = game.Key("Shop").MustBool(c.Shop)

	auto := f.Section("Autosave")
	c.Autosave = auto.Key("Enabled").MustBool(c.Autosave)
	c.AutosaveInterval = auto.Key("Interval").MustInt(c.AutosaveInterval)
	c.AutosavePath = auto.Key("Path").MustString(c.AutosavePath)

	lg := f.Section("Log")
	c.LogLevel = lg.Key("Level").MustString(c.LogLevel)
	c.LogEncoding = lg.Key("Encoding").MustString(c.LogEncoding)
	c.LogOutput = lg.Key("Output").MustString(c.LogOutput)

	m := f.Section("MCP")
	c.MCPHTTP = m.Key("Enabled").MustBool(c.MCPHTTP)
	c.MCPAddr = m.Key("Addr").MustString(c.MCPAddr)
	c.MCPPath = m.Key("Path").MustString(c.MCPPath)
	c.MCPToken = m.Key("Token").MustString(c.MCPToken)
	c.MCPJSON = m.Key("JSONResponse").MustBool(c.MCPJSON)
	c.MCPStateless = m.Key("Stateless").MustBool(c.MCPStateless)
	if m.HasKey("Origins") {
		c.MCPOrigins = stringSlice{values: m.Key("Origins").Strings(",")}
	}
	return c, nil
}

// bindFlags registers command line flags whose defaults are the values
// already in c, so flags win over the config file.
func bindFlags(fs *flag.FlagSet, c *Config) {
	fs.StringVar(&c.SavePath, "save-path", c.SavePath, "Save file path")
	fs.StringVar(&c.WorldPath, "world", c.WorldPath, "World file overriding the built-in narration")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Deterministic game seed (optional)")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "Run in headless mode (no raw terminal input)")
	fs.BoolVar(&c.Shop, "shop", c.Shop, "Start the run in the item shop")
	fs.StringVar(&c.Restore, "restore", c.Restore, "Start from the archived save with this key code")
	fs.BoolVar(&c.Resume, "resume", c.Resume, "Start from the latest autosave")

	fs.BoolVar(&c.Autosave, "autosave", c.Autosave, "Enable autosave and the save archive")
	fs.IntVar(&c.AutosaveInterval, "autosave-interval", c.AutosaveInterval, "Turns between autosaves")
	fs.StringVar(&c.AutosavePath, "autosave-path", c.AutosavePath, "Path to the archive database")

	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.LogEncoding, "log-encoding", c.LogEncoding, "Log encoding (console or json)")

	fs.BoolVar(&c.MCPHTTP, "mcp-http", c.MCPHTTP, "Run MCP Streamable HTTP server")
	fs.StringVar(&c.MCPAddr, "mcp-addr", c.MCPAddr, "MCP listen address")
	fs.StringVar(&c.MCPPath, "mcp-path", c.MCPPath, "MCP endpoint path")
	fs.StringVar(&c.MCPToken, "mcp-token", c.MCPToken, "Bearer token for MCP requests (optional)")
	fs.BoolVar(&c.MCPJSON, "mcp-json-response", c.MCPJSON, "Force JSON responses instead of SSE")
	fs.BoolVar(&c.MCPStateless, "mcp-stateless", c.MCPStateless, "Run MCP server in stateless mode (no sessions/SSE)")
	fs.Var(&c.MCPOrigins, "mcp-origin", "Allowed Origin for MCP requests (repeatable)")
}
