package uri

import (
	"strings"

	"github.com/weburi/weburi/std/uri/inet"
)

// Options select the grammar and the leniency of the parser.
type Options struct {
	// Follow the WHATWG URL standard instead of RFC 3986. Invalid
	// characters become warnings, input is trimmed and special schemes
	// accept backslashes.
	Whatwg bool `json:"whatwg"`
	// Accept references without a scheme.
	AllowRelative bool `json:"allow_relative"`
	// Leniency of IPv4 hosts.
	IPv4 inet.IPv4Options `json:"ipv4"`
	// Decode xn-- labels to make sure they are valid punycode.
	CheckPunycode bool `json:"validate_punycode"`
	// Check label length and hyphen placement of registered names.
	CheckLabels bool `json:"check_labels"`
}

// Strict follows RFC 3986.
var Strict = Options{
	AllowRelative: true,
	IPv4:          inet.IPv4Options{TrailingDots: inet.TrailingDotAllowOne},
	CheckPunycode: true,
	CheckLabels:   true,
}

// Loose follows the WHATWG URL standard.
var Loose = Options{
	Whatwg:        true,
	AllowRelative: true,
	IPv4: inet.IPv4Options{
		AllowNonDecimal: true,
		AllowShortForm:  true,
		TrailingDots:    inet.TrailingDotAllowMany,
	},
	CheckPunycode: true,
}

var defaultPorts = map[string]int{
	"ftp":   21,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
	"file":  -1,
}

// IsSpecial reports whether scheme is one of the WHATWG special schemes.
func IsSpecial(scheme string) bool {
	_, ok := defaultPorts[strings.ToLower(scheme)]
	return ok
}

// DefaultPort returns the default port of a special scheme.
func DefaultPort(scheme string) (int, bool) {
	p, ok := defaultPorts[strings.ToLower(scheme)]
	return p, ok && p >= 0
}
