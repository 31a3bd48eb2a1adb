// Package format implements the named string formats recognized by the
// "format" keyword of a schema, and the pattern matcher used for "pattern".
package format

import (
	"net/mail"
	"net/netip"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// A Func reports whether a decoded string has a particular format.
type Func func(string) bool

var formats = map[string]Func{
	"date":      IsDate,
	"time":      IsTime,
	"date-time": IsDateTime,
	"email":     IsEmail,
	"ipv4":      IsIPv4,
	"ipv6":      IsIPv6,
	"uuid":      IsUUID,
}

// Lookup returns the predicate for the named format, or nil if the name is
// not known.
func Lookup(name string) Func { return formats[name] }

// Names returns the names of the known formats, in no particular order.
func Names() []string {
	out := make([]string, 0, len(formats))
	for name := range formats {
		out = append(out, name)
	}
	return out
}

// IsDate reports whether s is a full date, "2006-01-02".
func IsDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// IsTime reports whether s is a time of day, "15:04:05", optionally with
// fractional seconds and a zone offset ("Z" or "-07:00").
func IsTime(s string) bool {
	if _, err := time.Parse("15:04:05Z07:00", s); err == nil {
		return true
	}
	_, err := time.Parse(time.TimeOnly, s)
	return err == nil
}

// IsDateTime reports whether s is an RFC 3339 timestamp.
func IsDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// IsEmail reports whether s is a bare email address, "user@domain", with no
// display name or angle brackets.
func IsEmail(s string) bool {
	if len(s) > 254 || !strings.Contains(s, "@") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Name == "" && addr.Address == s
}

// IsIPv4 reports whether s is an IPv4 address in dotted decimal notation.
func IsIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

// IsIPv6 reports whether s is an IPv6 address without a zone.
func IsIPv6(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is6() && addr.Zone() == ""
}

// IsUUID reports whether s is a UUID in its canonical hyphenated form,
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx".
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

var patterns = struct {
	sync.Mutex
	m map[string]*regexp.Regexp // nil for an invalid expression
}{m: make(map[string]*regexp.Regexp)}

// Match reports whether s contains a match of the regular expression
// pattern. An invalid pattern matches nothing. Compiled patterns are cached,
// and Match is safe for concurrent use.
func Match(pattern, s string) bool {
	re := compile(pattern)
	return re != nil && re.MatchString(s)
}

// Valid reports whether pattern is a valid regular expression.
func Valid(pattern string) bool { return compile(pattern) != nil }

func compile(pattern string) *regexp.Regexp {
	patterns.Lock()
	defer patterns.Unlock()
	re, ok := patterns.m[pattern]
	if !ok {
		re, _ = regexp.Compile(pattern)
		patterns.m[pattern] = re
	}
	return re
}
