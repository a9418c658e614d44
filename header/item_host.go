package header

import (
	"net/netip"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
	"golang.org/x/net/http/httpguts"

	"github.com/ghettovoice/gohttp/internal/errorutil"
)

// ErrInvalidHost is returned for malformed Host values.
const ErrInvalidHost errorutil.Error = "invalid host"

// HostPort is the uri-host [ ":" port ] pair of the Host header.
// Port 0 means the port is absent, so an explicit ":0" is rejected by the parser.
// An empty port ("example.com:") is read as absent.
// An empty Host is a valid value for requests whose target has no authority.
type HostPort struct {
	Host string
	Port uint16
}

func (hp HostPort) String() string {
	host := hp.Host
	if strings.IndexByte(host, ':') >= 0 {
		host = "[" + host + "]"
	}
	if hp.Port == 0 {
		return host
	}
	return host + ":" + strconv.FormatUint(uint64(hp.Port), 10)
}

// UnmarshalText parses the value. Only IP literals and syntactically valid
// domain names are accepted, so a parsed HostPort never holds control characters.
func (hp *HostPort) UnmarshalText(text []byte) error {
	s := string(text)
	if !httpguts.ValidHostHeader(s) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "%q", s))
	}
	if s == "" {
		*hp = HostPort{}
		return nil
	}

	var host, port string
	if s[0] == '[' {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "missing ']' in %q", s))
		}
		host, port = s[1:end], s[end+1:]
		if port != "" {
			if port[0] != ':' {
				return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "unexpected %q after IP literal", port))
			}
			port = port[1:]
		}
		if addr, err := netip.ParseAddr(host); err != nil || !addr.Is6() {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "bad IPv6 literal %q", host))
		}
	} else {
		// Outside brackets a colon can only separate the port.
		host = s
		if i := strings.IndexByte(s, ':'); i >= 0 {
			host, port = s[:i], s[i+1:]
			if strings.IndexByte(port, ':') >= 0 {
				return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "unbracketed IPv6 literal %q", s))
			}
		}
		if _, err := netip.ParseAddr(host); err != nil {
			if _, ok := dns.IsDomainName(host); !ok || host == "" {
				return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "bad domain name %q", host))
			}
		}
	}

	var p uint64
	if port != "" {
		var err error
		if p, err = parseDigits([]byte(port), 16); err != nil {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, err))
		}
		if p == 0 {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "port 0 in %q", s))
		}
	}
	*hp = HostPort{Host: host, Port: uint16(p)}
	return nil
}

func (hp HostPort) Equal(val any) bool {
	var other HostPort
	switch v := val.(type) {
	case HostPort:
		other = v
	case *HostPort:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return strings.EqualFold(hp.Host, other.Host) && hp.Port == other.Port
}
