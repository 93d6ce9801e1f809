package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly Duration type so operators can keep a readable config file.
type StructuredJSONConfig struct {
	App struct {
		Version         string   `json:"version"`
		APIKey          string   `json:"api_key"`
		APIKeySecretRef string   `json:"api_key_secret_ref"`
		CORSOrigins     []string `json:"cors_origins"`
	} `json:"app,omitempty"`

	Identity struct {
		Region                string `json:"region"`
		UserPoolID            string `json:"user_pool_id"`
		JWKSRequestsPerMinute int    `json:"jwks_requests_per_minute"`
	} `json:"identity,omitempty"`

	AppleMusic struct {
		TeamID        string   `json:"team_id"`
		KeyID         string   `json:"key_id"`
		PrivateKey    string   `json:"private_key"`
		SecretRef     string   `json:"secret_ref"`
		APIBaseURL    string   `json:"api_base_url"`
		Storefront    string   `json:"storefront"`
		TokenValidity Duration `json:"token_validity"`
		RefreshBuffer Duration `json:"refresh_buffer"`
	} `json:"apple_music,omitempty"`

	Secrets struct {
		BaseURL        string   `json:"base_url"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"secrets,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
			Version:         jsonCfg.App.Version,
			APIKey:          jsonCfg.App.APIKey,
			APIKeySecretRef: jsonCfg.App.APIKeySecretRef,
			CORSOrigins:     jsonCfg.App.CORSOrigins,
		},
		Identity: Identity{
			Region:                jsonCfg.Identity.Region,
			UserPoolID:            jsonCfg.Identity.UserPoolID,
			JWKSRequestsPerMinute: jsonCfg.Identity.JWKSRequestsPerMinute,
		},
		AppleMusic: AppleMusic{
			TeamID:        jsonCfg.AppleMusic.TeamID,
			KeyID:         jsonCfg.AppleMusic.KeyID,
			PrivateKey:    jsonCfg.AppleMusic.PrivateKey,
			SecretRef:     jsonCfg.AppleMusic.SecretRef,
			APIBaseURL:    jsonCfg.AppleMusic.APIBaseURL,
			Storefront:    jsonCfg.AppleMusic.Storefront,
			TokenValidity: time.Duration(jsonCfg.AppleMusic.TokenValidity),
			RefreshBuffer: time.Duration(jsonCfg.AppleMusic.RefreshBuffer),
		},
		Secrets: Secrets{
			BaseURL:        jsonCfg.Secrets.BaseURL,
			Token:          jsonCfg.Secrets.Token,
			RequestTimeout: time.Duration(jsonCfg.Secrets.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
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
