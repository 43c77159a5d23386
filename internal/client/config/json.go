package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/quickserve/internal/flagx"
	"github.com/dmitrijs2005/quickserve/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from an explicit zero.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_url"`
	SessionDBPath  string          `json:"session_db"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       string          `json:"log_level"`
	LogFormat      string          `json:"log_format"`
	MetricsAddr    string          `json:"metrics_addr"`
	OTLPEndpoint   string          `json:"otlp_endpoint"`
	OTLPInsecure   *bool           `json:"otlp_insecure"`
}

// parseJson overlays Config with the fields present in the JSON file named
// by -c or -config. Without either flag nothing happens. Read and unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.SessionDBPath, jc.SessionDBPath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.MetricsAddr, jc.MetricsAddr)
	setString(&cfg.OTLPEndpoint, jc.OTLPEndpoint)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OTLPInsecure != nil {
		cfg.OTLPInsecure = *jc.OTLPInsecure
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
