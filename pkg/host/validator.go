package host

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"golang.org/x/net/idna"

	"github.com/dmitrymomot/validators/pkg/policy"
)

// profile converts domains for lookup with STD3 rules, DNS length limits and
// hyphen checks enabled.
var profile = idna.New(
	idna.MapForLookup(),
	idna.VerifyDNSLength(true),
	idna.CheckHyphens(true),
	idna.BidiRule(),
	idna.Transitional(false),
)

// Validator resolves hosts under fixed policies. The zero value accepts any
// host with an optional port.
type Validator struct {
	// Kinds limits the accepted variants; zero means KindAny.
	Kinds            Kind          `yaml:"-"`
	Local            policy.Policy `env:"LOCAL" yaml:"local"`
	Port             policy.Policy `env:"PORT" yaml:"port"`
	AtLeastTwoLabels policy.Policy `env:"AT_LEAST_TWO_LABELS" yaml:"at_least_two_labels"`
}

// Parse resolves s into a Host.
func (v Validator) Parse(s string) (Host, error) {
	if s == "" {
		return Host{}, ErrInvalid
	}
	if s[0] == '[' {
		return v.parseBracketed(s)
	}

	if addr, ok := parseIPv6(s); ok {
		if !v.kinds().has(KindIPv6) {
			return Host{}, ErrInvalid
		}
		if v.Port == policy.Must {
			return Host{}, ErrPortMust
		}
		return v.resolveIP(addr, KindIPv6, 0, false)
	}

	name, port, hasPort, err := v.splitPort(s)
	if err != nil {
		return Host{}, err
	}
	if name == "" || name[len(name)-1] == '.' {
		return Host{}, ErrInvalid
	}

	if addr, err := netip.ParseAddr(name); err == nil && addr.Is4() {
		if !v.kinds().has(KindIPv4) {
			return Host{}, ErrInvalid
		}
		if v.AtLeastTwoLabels == policy.Disallow {
			return Host{}, ErrAtLeastTwoLabelsDisallow
		}
		return v.resolveIP(addr, KindIPv4, port, hasPort)
	}

	return v.resolveDomain(name, port, hasPort)
}

// Validate reports whether s resolves under the validator's policies.
func (v Validator) Validate(s string) error {
	_, err := v.Parse(s)
	return err
}

// MustParse is like Parse but panics on error.
func (v Validator) MustParse(s string) Host {
	h, err := v.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("host: MustParse(%q): %v", s, err))
	}
	return h
}

func (v Validator) kinds() Kind {
	if v.Kinds == 0 {
		return KindAny
	}
	return v.Kinds
}

func (v Validator) parseBracketed(s string) (Host, error) {
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return Host{}, ErrInvalid
	}
	if !v.kinds().has(KindIPv6) {
		return Host{}, ErrInvalid
	}

	if end == len(s)-1 {
		if v.Port == policy.Must {
			return Host{}, ErrPortMust
		}
		addr, ok := parseIPv6(s[1:end])
		if !ok {
			return Host{}, ErrInvalid
		}
		return v.resolveIP(addr, KindIPv6, 0, false)
	}

	if v.Port == policy.Disallow {
		return Host{}, ErrPortDisallow
	}
	colon := strings.LastIndexByte(s, ':')
	if colon != end+1 {
		return Host{}, ErrInvalid
	}
	addr, ok := parseIPv6(s[1:end])
	if !ok {
		return Host{}, ErrInvalid
	}
	port, err := parsePort(s[colon+1:])
	if err != nil {
		return Host{}, err
	}
	return v.resolveIP(addr, KindIPv6, port, true)
}

func (v Validator) splitPort(s string) (name string, port uint16, hasPort bool, err error) {
	colon := strings.LastIndexByte(s, ':')
	if colon < 0 {
		if v.Port == policy.Must {
			return "", 0, false, ErrPortMust
		}
		return s, 0, false, nil
	}
	if v.Port == policy.Disallow {
		return "", 0, false, ErrPortDisallow
	}
	port, err = parsePort(s[colon+1:])
	if err != nil {
		return "", 0, false, err
	}
	return s[:colon], port, true, nil
}

func (v Validator) resolveIP(addr netip.Addr, kind Kind, port uint16, hasPort bool) (Host, error) {
	local := IsLocalAddr(addr)
	if err := v.checkLocal(local); err != nil {
		return Host{}, err
	}
	return Host{kind: kind, addr: addr, port: port, hasPort: hasPort, local: local}, nil
}

func (v Validator) resolveDomain(name string, port uint16, hasPort bool) (Host, error) {
	if !v.kinds().has(KindDomain) {
		return Host{}, ErrInvalid
	}
	ascii, err := profile.ToASCII(name)
	if err != nil || ascii == "" {
		return Host{}, ErrInvalid
	}

	local := IsLocalDomain(ascii)
	if !local {
		twoLabels := strings.IndexByte(ascii, '.') > 0
		switch {
		case v.AtLeastTwoLabels == policy.Must && !twoLabels:
			return Host{}, ErrAtLeastTwoLabelsMust
		case v.AtLeastTwoLabels == policy.Disallow && twoLabels:
			return Host{}, ErrAtLeastTwoLabelsDisallow
		}
	}
	if err := v.checkLocal(local); err != nil {
		return Host{}, err
	}
	return Host{kind: KindDomain, domain: ascii, port: port, hasPort: hasPort, local: local}, nil
}

func (v Validator) checkLocal(local bool) error {
	switch {
	case v.Local == policy.Must && !local:
		return ErrLocalMust
	case v.Local == policy.Disallow && local:
		return ErrLocalDisallow
	}
	return nil
}

// parseIPv6 accepts unzoned IPv6 literals only.
func parseIPv6(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is6() || addr.Zone() != "" {
		return netip.Addr{}, false
	}
	return addr, true
}

func parsePort(s string) (uint16, error) {
	p, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, ErrInvalid
	}
	return uint16(p), nil
}
