package host

import "strings"

// Kind identifies the variant of a Host. Kinds are bit flags so a Validator
// can accept several of them.
type Kind uint8

const (
	KindIPv4 Kind = 1 << iota
	KindIPv6
	KindDomain

	// KindIP accepts both IP families.
	KindIP = KindIPv4 | KindIPv6
	// KindAny accepts every variant.
	KindAny = KindIP | KindDomain
)

func (k Kind) String() string {
	switch k {
	case KindIPv4:
		return "ipv4"
	case KindIPv6:
		return "ipv6"
	case KindDomain:
		return "domain"
	}
	var parts []string
	for _, one := range []Kind{KindIPv4, KindIPv6, KindDomain} {
		if k&one != 0 {
			parts = append(parts, one.String())
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

func (k Kind) has(one Kind) bool {
	return k&one != 0
}
