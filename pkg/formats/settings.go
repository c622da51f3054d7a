package formats

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/validators/pkg/config"
	"github.com/dmitrymomot/validators/pkg/hexgroup"
	"github.com/dmitrymomot/validators/pkg/host"
	"github.com/dmitrymomot/validators/pkg/logger"
	"github.com/dmitrymomot/validators/pkg/number"
	"github.com/dmitrymomot/validators/pkg/policy"
)

// Settings configures every validator in a Kit. The zero value is usable:
// it accepts any case and optional separators, any host, any finite number
// and phone numbers from every supported country.
type Settings struct {
	MAC    HexSettings      `envPrefix:"MAC_" yaml:"mac"`
	UUID   HexSettings      `envPrefix:"UUID_" yaml:"uuid"`
	Host   host.Validator   `envPrefix:"HOST_" yaml:"host"`
	Number number.Validator `envPrefix:"NUMBER_" yaml:"number"`
	Phone  PhoneSettings    `envPrefix:"PHONE_" yaml:"phone"`
	Log    logger.Config    `envPrefix:"LOG_" yaml:"log"`
}

// HexSettings configures a hex-group format such as MAC or UUID.
type HexSettings struct {
	Case      hexgroup.Case `env:"CASE" yaml:"case"`
	Separator policy.Policy `env:"SEPARATOR" yaml:"separator"`
	// Delimiter is a single character; empty selects the format default.
	Delimiter string `env:"DELIMITER" yaml:"delimiter"`
}

// PhoneSettings lists the ISO 3166 country codes a phone number is matched
// against. Empty means every supported country.
type PhoneSettings struct {
	Countries []string `env:"COUNTRIES" envSeparator:"," yaml:"countries"`
}

// Load reads Settings from the environment.
func Load() (Settings, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadFile reads Settings from a YAML file and applies environment variables on top.
func LoadFile(path string) (Settings, error) {
	var s Settings
	if err := config.LoadFile(path, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Logger returns a logger configured from the Log section.
func (s Settings) Logger() *slog.Logger {
	return logger.New(logger.WithConfig(s.Log))
}

func (h HexSettings) delimiter() (byte, error) {
	switch len(h.Delimiter) {
	case 0:
		return 0, nil
	case 1:
		return h.Delimiter[0], nil
	}
	return 0, fmt.Errorf("delimiter %q must be a single character", h.Delimiter)
}

func checkPolicies(ps ...policy.Policy) error {
	for _, p := range ps {
		if !p.Valid() {
			return fmt.Errorf("%w: %s", policy.ErrUnknownPolicy, p)
		}
	}
	return nil
}
