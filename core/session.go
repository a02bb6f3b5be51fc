package core

import (
	"net/netip"
	"strconv"
)

// Session identifies a remote endpoint. Loggers only print it.
type Session struct {
	Addr    netip.AddrPort
	IfIndex int
}

// String renders the endpoint as addr:port, bracketing IPv6 addresses
// and appending %ifindex when an interface is set.
func (s Session) String() string {
	if !s.Addr.IsValid() {
		return "(unspecified)"
	}
	out := s.Addr.String()
	if s.IfIndex > 0 {
		out += "%" + strconv.Itoa(s.IfIndex)
	}
	return out
}
