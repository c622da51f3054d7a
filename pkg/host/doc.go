// Package host resolves a single string into an IPv4 address, an IPv6 address
// or a domain name, with an optional ":port" suffix, and classifies it as local
// or public.
//
// # Resolution order
//
//  1. A leading '[' introduces a bracketed IPv6 literal, optionally followed
//     by ":port".
//  2. Otherwise the whole input is tried as a bare IPv6 literal, which never
//     carries a port.
//  3. Otherwise the text after the last ':' is the port and the rest is an
//     IPv4 literal or a domain name. Domains are normalised to ASCII with IDNA
//     (STD3 rules, DNS length limits, hyphen checks) using golang.org/x/net/idna.
//
// # Policies
//
// A Validator combines three policy.Policy switches: Local (loopback, private
// and link-local ranges, "localhost"), Port and AtLeastTwoLabels. Local domains
// are exempt from the two-labels check so "localhost" passes a Must
// AtLeastTwoLabels policy while Local still decides whether it is acceptable.
// IPv4 literals are rejected outright by a Disallow AtLeastTwoLabels policy.
//
// Kinds narrows the accepted variants, which yields the IP-only, IPv4-only and
// IPv6-only validators:
//
//	ip := host.Validator{Kinds: host.KindIP, Port: policy.Disallow}
//	h, err := ip.Parse("[::1]")
//	h.IsLocal() // true
package host
