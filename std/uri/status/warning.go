package status

import (
	"math/bits"
	"strings"
)

// Warning is a set of non-fatal diagnostics. Each constant is a single bit;
// any number of them may be set at once.
type Warning uint32

const (
	HasCredentials Warning = 1 << iota
	ReverseSolidusUsed
	WindowsDriveLetterUsed
	InvalidUserInfoCharacterUsed
	InvalidPathCharacterUsed
	InvalidQueryCharacterUsed
	InvalidFragmentCharacterUsed
	IPv4TrailingEmptyOctet
	IPv4NonDecimalPart
	IPv6DeprecatedIPv4Compatible
	DefaultPortUsed
	MissingSolidusAfterScheme
	LeadingTrailingC0ControlOrSpace
	TabOrNewlineIgnored
	UppercaseScheme
	EmptyPort

	lastWarning = EmptyPort
)

var warningInfo = map[Warning]struct {
	name string
	msg  string
}{
	HasCredentials:                  {"has_credentials", "The URI contains credentials."},
	ReverseSolidusUsed:              {"reverse_solidus_used", "A reverse solidus was used as a path delimiter."},
	WindowsDriveLetterUsed:          {"windows_drive_letter_used", "The path starts with a Windows drive letter."},
	InvalidUserInfoCharacterUsed:    {"invalid_userinfo_character_used", "The user-info contains a character that should be percent-encoded."},
	InvalidPathCharacterUsed:        {"invalid_path_character_used", "The path contains a character that should be percent-encoded."},
	InvalidQueryCharacterUsed:       {"invalid_query_character_used", "The query contains a character that should be percent-encoded."},
	InvalidFragmentCharacterUsed:    {"invalid_fragment_character_used", "The fragment contains a character that should be percent-encoded."},
	IPv4TrailingEmptyOctet:          {"ipv4_trailing_empty_octet", "The IPv4 address ends with an empty part."},
	IPv4NonDecimalPart:              {"ipv4_non_decimal_part", "The IPv4 address contains a hexadecimal or octal part."},
	IPv6DeprecatedIPv4Compatible:    {"ipv6_deprecated_ipv4_compatible", "The IPv6 address uses the deprecated IPv4-compatible form."},
	DefaultPortUsed:                 {"default_port_used", "The port is the default port of the scheme."},
	MissingSolidusAfterScheme:       {"missing_solidus_after_scheme", "The scheme is not followed by two solidi."},
	LeadingTrailingC0ControlOrSpace: {"leading_trailing_c0_control_or_space", "Leading or trailing control characters or spaces were removed."},
	TabOrNewlineIgnored:             {"tab_or_newline_ignored", "Tab or newline characters were removed."},
	UppercaseScheme:                 {"uppercase_scheme", "The scheme contains uppercase letters."},
	EmptyPort:                       {"empty_port", "The port is empty."},
}

// Has returns true if every bit of o is set in w.
func (w Warning) Has(o Warning) bool {
	return o != 0 && w&o == o
}

// Count returns the number of warnings in the set.
func (w Warning) Count() int {
	return bits.OnesCount32(uint32(w))
}

// Name returns the snake_case identifier of a single warning.
func (w Warning) Name() string {
	if info, ok := warningInfo[w]; ok {
		return info.name
	}
	return "unknown"
}

// String returns the sentence of a single warning, or one line per
// warning for a set. An empty set yields "".
func (w Warning) String() string {
	if w == 0 {
		return ""
	}
	if info, ok := warningInfo[w]; ok {
		return info.msg
	}
	if w.Count() <= 1 {
		return "Unknown URI warning."
	}
	lines := make([]string, 0, w.Count())
	for rest := w; rest != 0; rest &= rest - 1 {
		lines = append(lines, (rest & -rest).String())
	}
	return strings.Join(lines, "\n")
}

// ParseWarning looks up a single warning by its Name.
func ParseWarning(name string) (Warning, bool) {
	for w := Warning(1); w <= lastWarning; w <<= 1 {
		if warningInfo[w].name == name {
			return w, true
		}
	}
	return 0, false
}
