package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		AdminPassword string   `json:"admin_password"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		Clients       string   `json:"supported_clients"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Limits struct {
		MaxDataSize   int64   `json:"max_data_size"`
		MaxVersions   int     `json:"max_versions"`
		RatePerSecond float64 `json:"rate_per_second"`
		RateBurst     int     `json:"rate_burst"`
	} `json:"limits,omitempty"`

	Workers struct {
		PruneInterval Duration `json:"prune_interval"`
	} `json:"workers,omitempty"`

	Client struct {
		StateDSN    string `json:"state_dsn"`
		ProfilePath string `json:"profile"`
		LogFile     string `json:"log_file"`
		Debug       bool   `json:"debug"`
	} `json:"client,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Crypto struct {
		Scheme         string `json:"scheme"`
		ArgonMemoryKiB uint32 `json:"argon_memory_kib"`
		ArgonTime      uint32 `json:"argon_time"`
		ArgonThreads   uint8  `json:"argon_threads"`
	} `json:"crypto,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AdminPassword:    jsonCfg.App.AdminPassword,
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			Version:          jsonCfg.App.Version,
			SupportedClients: jsonCfg.App.Clients,
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				MaxOpenConns:    jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:    jsonCfg.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: time.Duration(jsonCfg.Storage.DB.ConnMaxLifetime),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Limits: Limits{
			MaxDataSize:   jsonCfg.Limits.MaxDataSize,
			MaxVersions:   jsonCfg.Limits.MaxVersions,
			RatePerSecond: jsonCfg.Limits.RatePerSecond,
			RateBurst:     jsonCfg.Limits.RateBurst,
		},
		Workers: Workers{
			PruneInterval: time.Duration(jsonCfg.Workers.PruneInterval),
		},
		Client: Client{
			StateDSN:    jsonCfg.Client.StateDSN,
			ProfilePath: jsonCfg.Client.ProfilePath,
			LogFile:     jsonCfg.Client.LogFile,
			Debug:       jsonCfg.Client.Debug,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Crypto: Crypto{
			Scheme:         jsonCfg.Crypto.Scheme,
			ArgonMemoryKiB: jsonCfg.Crypto.ArgonMemoryKiB,
			ArgonTime:      jsonCfg.Crypto.ArgonTime,
			ArgonThreads:   jsonCfg.Crypto.ArgonThreads,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
