package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Version      string `json:"version"`
		PublicOrigin string `json:"public_origin"`
		LogLevel     string `json:"log_level"`
		CookieSecure bool   `json:"cookie_secure"`
	} `json:"app,omitempty"`

	Backend struct {
		Endpoint            string   `json:"endpoint"`
		ProjectID           string   `json:"project_id"`
		APIKey              string   `json:"api_key"`
		DatabaseID          string   `json:"database_id"`
		JobsCollectionID    string   `json:"jobs_collection_id"`
		ReviewsCollectionID string   `json:"reviews_collection_id"`
		BucketID            string   `json:"bucket_id"`
		RequestTimeout      Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DB     struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Files struct {
			Driver string `json:"driver"`
			S3     struct {
				Region       string   `json:"region"`
				BaseEndpoint string   `json:"base_endpoint"`
				AccessKey    string   `json:"access_key"`
				SecretKey    string   `json:"secret_key"`
				Bucket       string   `json:"bucket"`
				PresignTTL   Duration `json:"presign_ttl"`
			} `json:"s3,omitempty"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimitRPS   int      `json:"rate_limit_rps"`
		RateLimitBurst int      `json:"rate_limit_burst"`
		TrustedProxies []string `json:"trusted_proxies"`
	} `json:"server,omitempty"`

	Guard struct {
		ProtectedPrefixes []string `json:"protected_prefixes"`
		AuthOnlyPrefixes  []string `json:"auth_only_prefixes"`
	} `json:"guard,omitempty"`

	Workers struct {
		ExpiryInterval Duration `json:"expiry_interval"`
	} `json:"workers,omitempty"`
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

	s3 := jsonCfg.Storage.Files.S3
	cfg := &StructuredConfig{
		App: App{
			Version:      jsonCfg.App.Version,
			PublicOrigin: jsonCfg.App.PublicOrigin,
			LogLevel:     jsonCfg.App.LogLevel,
			CookieSecure: jsonCfg.App.CookieSecure,
		},
		Backend: Backend{
			Endpoint:            jsonCfg.Backend.Endpoint,
			ProjectID:           jsonCfg.Backend.ProjectID,
			APIKey:              jsonCfg.Backend.APIKey,
			DatabaseID:          jsonCfg.Backend.DatabaseID,
			JobsCollectionID:    jsonCfg.Backend.JobsCollectionID,
			ReviewsCollectionID: jsonCfg.Backend.ReviewsCollectionID,
			BucketID:            jsonCfg.Backend.BucketID,
			RequestTimeout:      time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Driver: jsonCfg.Storage.Files.Driver,
				S3: S3{
					Region:       s3.Region,
					BaseEndpoint: s3.BaseEndpoint,
					AccessKey:    s3.AccessKey,
					SecretKey:    s3.SecretKey,
					Bucket:       s3.Bucket,
					PresignTTL:   time.Duration(s3.PresignTTL),
				},
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimitRPS:   jsonCfg.Server.RateLimitRPS,
			RateLimitBurst: jsonCfg.Server.RateLimitBurst,
			TrustedProxies: jsonCfg.Server.TrustedProxies,
		},
		Guard: Guard{
			ProtectedPrefixes: jsonCfg.Guard.ProtectedPrefixes,
			AuthOnlyPrefixes:  jsonCfg.Guard.AuthOnlyPrefixes,
		},
		Workers: Workers{
			ExpiryInterval: time.Duration(jsonCfg.Workers.ExpiryInterval),
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
