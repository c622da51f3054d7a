package host

import (
	"net/netip"
	"strconv"
	"strings"
)

// Host is a resolved host: an IP address or an ASCII domain, with an optional port.
type Host struct {
	kind    Kind
	addr    netip.Addr
	domain  string
	port    uint16
	hasPort bool
	local   bool
}

// Kind returns the variant of the host.
func (h Host) Kind() Kind { return h.kind }

// Addr returns the IP address for IP hosts.
func (h Host) Addr() (netip.Addr, bool) {
	return h.addr, h.kind != KindDomain && h.addr.IsValid()
}

// Domain returns the IDNA ASCII form of a domain host.
func (h Host) Domain() (string, bool) {
	return h.domain, h.kind == KindDomain
}

// Port returns the port and whether one was present.
func (h Host) Port() (uint16, bool) { return h.port, h.hasPort }

// IsLocal reports whether the host is loopback, private, link-local or a
// reserved local domain.
func (h Host) IsLocal() bool { return h.local }

// Hostname returns the host without the port. IPv6 addresses are not bracketed.
func (h Host) Hostname() string {
	if h.kind == KindDomain {
		return h.domain
	}
	if !h.addr.IsValid() {
		return ""
	}
	return h.addr.String()
}

// String renders the canonical form: "a.b.c.d[:port]", "addr" or
// "[addr]:port" for IPv6, and "domain[:port]".
func (h Host) String() string {
	name := h.Hostname()
	if !h.hasPort {
		return name
	}
	if h.kind == KindIPv6 {
		name = "[" + name + "]"
	}
	return name + ":" + strconv.FormatUint(uint64(h.port), 10)
}

// AddrPort returns the address and port of an IP host that carries a port.
func (h Host) AddrPort() (netip.AddrPort, bool) {
	if h.kind == KindDomain || !h.hasPort {
		return netip.AddrPort{}, false
	}
	return netip.AddrPortFrom(h.addr, h.port), true
}

// Labels returns the number of dot-separated labels of a domain host, zero for IP hosts.
func (h Host) Labels() int {
	if h.kind != KindDomain {
		return 0
	}
	return strings.Count(h.domain, ".") + 1
}
