package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

const (
	DefaultWAPIVersion = "2.13.1"
	DefaultRecordType  = "record:a"

	DefaultCloudThresholdDays  = 14
	DefaultOnPremThresholdDays = 30

	DefaultMaxInFlightRequests = 10
)

// Config holds one audit run's settings. Every field can also be supplied
// through flags, environment, or interactive prompts; the file is just the
// lowest layer.
type Config struct {
	GridAddress string `json:"grid_address"`
	WAPIVersion string `json:"wapi_version,omitempty"`

	Username string `json:"username"`
	Password string `json:"password,omitempty"`

	RecordType string `json:"record_type,omitempty"`

	CloudThresholdDays  int `json:"cloud_threshold_days,omitempty"`
	OnPremThresholdDays int `json:"onprem_threshold_days,omitempty"`

	MaxInFlightRequests int `json:"max_in_flight_requests,omitempty"`

	CACertPath    string `json:"ca_cert_path,omitempty"`
	SkipTLSVerify bool   `json:"skip_tls_verify,omitempty"`

	OutputDir string `json:"output_dir,omitempty"`
}

func Default() Config {
	c := Config{}
	c.applyDefaults()
	return c
}

func LoadFromFile(path string, fs boshsys.FileSystem) (Config, error) {
	contents, err := fs.ReadFile(path)
	if err != nil {
		return Config{}, bosherr.WrapErrorf(err, "Reading config file '%s'", path)
	}

	c := Config{}
	if err := json.Unmarshal(contents, &c); err != nil {
		return Config{}, bosherr.WrapErrorf(err, "Parsing config file '%s'", path)
	}

	c.applyDefaults()

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.WAPIVersion == "" {
		c.WAPIVersion = DefaultWAPIVersion
	}
	if c.RecordType == "" {
		c.RecordType = DefaultRecordType
	}
	if c.CloudThresholdDays <= 0 {
		c.CloudThresholdDays = DefaultCloudThresholdDays
	}
	if c.OnPremThresholdDays <= 0 {
		c.OnPremThresholdDays = DefaultOnPremThresholdDays
	}
	if c.MaxInFlightRequests <= 0 {
		c.MaxInFlightRequests = DefaultMaxInFlightRequests
	}
}

// BaseURL is the WAPI endpoint root. A grid address that already carries a
// scheme is used as-is, which keeps test grids and proxies reachable.
func (c Config) BaseURL() string {
	if strings.Contains(c.GridAddress, "://") {
		return c.GridAddress
	}
	return fmt.Sprintf("https://%s/wapi/v%s", c.GridAddress, c.WAPIVersion)
}

// ParseThresholds turns operator-entered day counts into threshold values,
// falling back to the documented defaults when either value does not parse
// as a non-negative integer. Bad input is never fatal.
func ParseThresholds(cloudInput, onPremInput string) (cloudDays, onPremDays int, usedDefaults bool) {
	cloudDays, cloudErr := parseDays(cloudInput)
	onPremDays, onPremErr := parseDays(onPremInput)

	if cloudErr != nil || onPremErr != nil {
		return DefaultCloudThresholdDays, DefaultOnPremThresholdDays, true
	}

	return cloudDays, onPremDays, false
}

func parseDays(input string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, err
	}
	if days < 0 {
		return 0, bosherr.Errorf("Day count must not be negative, got %d", days)
	}
	return days, nil
}
