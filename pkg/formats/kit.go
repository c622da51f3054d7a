package formats

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/validators/pkg/boolean"
	"github.com/dmitrymomot/validators/pkg/host"
	"github.com/dmitrymomot/validators/pkg/logger"
	"github.com/dmitrymomot/validators/pkg/mac"
	"github.com/dmitrymomot/validators/pkg/number"
	"github.com/dmitrymomot/validators/pkg/phone"
	"github.com/dmitrymomot/validators/pkg/uuidfmt"
)

// Format names served by Kit.Check.
const (
	MAC     = "mac"
	UUID    = "uuid"
	Host    = "host"
	IP      = "ip"
	IPv4    = "ipv4"
	IPv6    = "ipv6"
	Number  = "number"
	Phone   = "phone"
	Boolean = "boolean"
)

// Kit holds validators built from Settings.
type Kit struct {
	mac    mac.Parser
	uuid   uuidfmt.Parser
	host   host.Validator
	number number.Validator
	phone  *phone.Matcher
	checks map[string]func(string) error
	log    *slog.Logger
}

// Build validates the settings and constructs every validator. A nil log
// discards output.
func (s Settings) Build(log *slog.Logger) (*Kit, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With(logger.Component("formats"))

	macParser, err := buildHex(s.MAC, func(c HexSettings, d byte) (mac.Parser, error) {
		p := mac.Parser{Case: c.Case, Separator: c.Separator, Delimiter: d}
		return p, p.Check()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: mac: %w", ErrInvalidSettings, err)
	}
	uuidParser, err := buildHex(s.UUID, func(c HexSettings, d byte) (uuidfmt.Parser, error) {
		p := uuidfmt.Parser{Case: c.Case, Separator: c.Separator, Delimiter: d}
		return p, p.Check()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: uuid: %w", ErrInvalidSettings, err)
	}

	hostValidator := s.Host
	hostValidator.Kinds = host.KindAny
	if err := checkPolicies(hostValidator.Local, hostValidator.Port, hostValidator.AtLeastTwoLabels); err != nil {
		return nil, fmt.Errorf("%w: host: %w", ErrInvalidSettings, err)
	}
	if err := checkPolicies(s.Number.Negative, s.Number.Zero); err != nil {
		return nil, fmt.Errorf("%w: number: %w", ErrInvalidSettings, err)
	}

	matcher, err := buildMatcher(s.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: phone: %w", ErrInvalidSettings, err)
	}

	k := &Kit{
		mac:    macParser,
		uuid:   uuidParser,
		host:   hostValidator,
		number: s.Number,
		phone:  matcher,
		log:    log,
	}
	k.checks = map[string]func(string) error{
		MAC:     k.mac.Validate,
		UUID:    k.uuid.Validate,
		Host:    k.host.Validate,
		IP:      k.hostOf(host.KindIP).Validate,
		IPv4:    k.hostOf(host.KindIPv4).Validate,
		IPv6:    k.hostOf(host.KindIPv6).Validate,
		Number:  k.number.Validate,
		Phone:   k.phone.Validate,
		Boolean: boolean.Validate,
	}

	log.Info("validator kit ready",
		logger.Group("mac",
			logger.Setting("case", macParser.Case),
			logger.Setting("separator", macParser.Separator),
		),
		logger.Group("uuid",
			logger.Setting("case", uuidParser.Case),
			logger.Setting("separator", uuidParser.Separator),
		),
		logger.Group("host",
			logger.Setting("local", hostValidator.Local),
			logger.Setting("port", hostValidator.Port),
			logger.Setting("at_least_two_labels", hostValidator.AtLeastTwoLabels),
		),
		logger.Group("number",
			logger.Setting("negative", s.Number.Negative),
			logger.Setting("zero", s.Number.Zero),
		),
		logger.Group("phone", logger.Count(len(matcher.Countries()))),
	)
	return k, nil
}

func buildHex[P any](c HexSettings, build func(HexSettings, byte) (P, error)) (P, error) {
	d, err := c.delimiter()
	if err != nil {
		var zero P
		return zero, err
	}
	return build(c, d)
}

func buildMatcher(s PhoneSettings) (*phone.Matcher, error) {
	if len(s.Countries) == 0 {
		return phone.Default(), nil
	}
	countries, err := phone.ParseCountries(s.Countries...)
	if err != nil {
		return nil, err
	}
	return phone.NewMatcher(countries...)
}

func (k *Kit) hostOf(kinds host.Kind) host.Validator {
	v := k.host
	v.Kinds = kinds
	return v
}

// Check validates input against the named format. Rejections are logged at
// debug level.
func (k *Kit) Check(format, input string) error {
	check, ok := k.checks[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := check(input); err != nil {
		k.log.Debug("input rejected",
			logger.FormatName(format),
			logger.Input(input),
			logger.Error(err),
		)
		return err
	}
	return nil
}

// Formats returns the sorted names accepted by Check.
func (k *Kit) Formats() []string {
	names := make([]string, 0, len(k.checks))
	for name := range k.checks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MAC returns the configured MAC address parser.
func (k *Kit) MAC() mac.Parser { return k.mac }

// UUID returns the configured UUID parser.
func (k *Kit) UUID() uuidfmt.Parser { return k.uuid }

// Host returns the configured host validator accepting every kind.
func (k *Kit) Host() host.Validator { return k.host }

// IP returns the host validator restricted to the given IP kinds. Kinds
// without an IP family select both.
func (k *Kit) IP(kinds host.Kind) host.Validator {
	kinds &= host.KindIP
	if kinds == 0 {
		kinds = host.KindIP
	}
	return k.hostOf(kinds)
}

// Number returns the configured number validator.
func (k *Kit) Number() number.Validator { return k.number }

// Phone returns the configured phone matcher.
func (k *Kit) Phone() *phone.Matcher { return k.phone }
