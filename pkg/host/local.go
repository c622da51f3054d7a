package host

import (
	"net/netip"
	"strings"
)

// IsLocalAddr reports whether addr is loopback, private (RFC 1918, RFC 4193)
// or link-local. IPv4-mapped IPv6 addresses are judged by their IPv4 form.
func IsLocalAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast()
}

// IsLocalDomain reports whether an ASCII, lower-case domain is reserved for
// local use: "localhost" and its subdomains.
func IsLocalDomain(domain string) bool {
	return domain == "localhost" || strings.HasSuffix(domain, ".localhost")
}
