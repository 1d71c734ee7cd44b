package status

// Value is the exclusive outcome of a parse: unparsed, one of the valid
// kinds, or exactly one error kind.
type Value uint8

const (
	Unparsed Value = iota

	Valid
	ValidPunycode
	ValidOpaquePath
	ValidRelative

	// scheme
	InvalidSchemeCharacter
	SchemeEndedUnexpectedly
	MissingScheme
	IncompatibleSchemes

	// authority and host
	HostMissing
	InvalidHostCodePoint
	InvalidDomainCodePoint
	DomainLabelTooLong
	DomainLeadingHyphen
	DomainTrailingHyphen
	DomainDoubleHyphen
	DomainEmptyLabel
	InvalidPunycode
	InvalidCredentials

	// IPv4, IPv6 and IPvFuture literals
	IPTooFewOctets
	IPTooManyOctets
	IPInvalidOctetRange
	IPInvalidLeadingZero
	IPEmptyOctet
	IPBadEnding
	IPInvalidCharacter
	IPInvalidColonUsage
	IPv6Unclosed
	IPv6InvalidIPv4Embedding
	IPvFutureInvalid

	// port
	PortOutOfRange
	PortInvalidCharacter

	// path, query and fragment
	InvalidPathCharacter
	InvalidQueryCharacter
	InvalidFragmentCharacter
	InvalidPercentEncoding

	numValues
)

const firstError = InvalidSchemeCharacter

var valueInfo = [numValues]struct {
	name string
	msg  string
}{
	Unparsed:        {"unparsed", "The URI has not been parsed yet."},
	Valid:           {"valid", "Valid URI."},
	ValidPunycode:   {"valid_punycode", "Valid URI with a punycode host."},
	ValidOpaquePath: {"valid_opaque_path", "Valid URI with an opaque path."},
	ValidRelative:   {"valid_relative", "Valid relative reference."},

	InvalidSchemeCharacter:  {"invalid_scheme_character", "The scheme contains an invalid character."},
	SchemeEndedUnexpectedly: {"scheme_ended_unexpectedly", "The input ended before the scheme was terminated by a colon."},
	MissingScheme:           {"missing_scheme", "The URI has no scheme and relative references are not allowed."},
	IncompatibleSchemes:     {"incompatible_schemes", "The schemes of the two URIs are incompatible."},

	HostMissing:            {"host_missing", "The URI has an authority but its host is missing."},
	InvalidHostCodePoint:   {"invalid_host_code_point", "The host contains a forbidden host code point."},
	InvalidDomainCodePoint: {"invalid_domain_code_point", "The domain contains a forbidden domain code point."},
	DomainLabelTooLong:     {"domain_label_too_long", "A domain label is longer than 63 characters."},
	DomainLeadingHyphen:    {"domain_leading_hyphen", "A domain label starts with a hyphen."},
	DomainTrailingHyphen:   {"domain_trailing_hyphen", "A domain label ends with a hyphen."},
	DomainDoubleHyphen:     {"domain_double_hyphen", "A domain label has hyphens in its third and fourth positions but is not punycode."},
	DomainEmptyLabel:       {"domain_empty_label", "The domain contains an empty label."},
	InvalidPunycode:        {"invalid_punycode", "The host contains an invalid punycode label."},
	InvalidCredentials:     {"invalid_credentials", "The user-info contains an invalid character."},

	IPTooFewOctets:           {"ip_too_few_octets", "The IP address has too few parts."},
	IPTooManyOctets:          {"ip_too_many_octets", "The IP address has too many parts."},
	IPInvalidOctetRange:      {"ip_invalid_octet_range", "A part of the IP address is out of range."},
	IPInvalidLeadingZero:     {"ip_invalid_leading_zero", "A part of the IPv4 address has a leading zero."},
	IPEmptyOctet:             {"ip_empty_octet", "The IP address contains an empty part."},
	IPBadEnding:              {"ip_bad_ending", "The IP address ends unexpectedly."},
	IPInvalidCharacter:       {"ip_invalid_character", "The IP address contains an invalid character."},
	IPInvalidColonUsage:      {"ip_invalid_colon_usage", "The IPv6 address uses colons incorrectly."},
	IPv6Unclosed:             {"ipv6_unclosed", "The IPv6 address is missing its closing bracket."},
	IPv6InvalidIPv4Embedding: {"ipv6_invalid_ipv4_embedding", "An IPv4 address is embedded in an IPv6 address that is not IPv4-mapped."},
	IPvFutureInvalid:         {"ipvfuture_invalid", "The IPvFuture literal is malformed."},

	PortOutOfRange:       {"port_out_of_range", "The port is out of range."},
	PortInvalidCharacter: {"port_invalid_character", "The port contains a non-digit character."},

	InvalidPathCharacter:     {"invalid_path_character", "The path contains an invalid character."},
	InvalidQueryCharacter:    {"invalid_query_character", "The query contains an invalid character."},
	InvalidFragmentCharacter: {"invalid_fragment_character", "The fragment contains an invalid character."},
	InvalidPercentEncoding:   {"invalid_percent_encoding", "The URI contains a malformed percent-encoded sequence."},
}

// IsValid returns true for the valid kinds.
func (v Value) IsValid() bool {
	return v >= Valid && v < firstError
}

// IsError returns true for the error kinds.
func (v Value) IsError() bool {
	return v >= firstError && v < numValues
}

// Name returns the snake_case identifier of the value.
func (v Value) Name() string {
	if v >= numValues {
		return "unknown"
	}
	return valueInfo[v].name
}

// String returns the English sentence describing the value.
func (v Value) String() string {
	if v >= numValues {
		return "Unknown URI status."
	}
	return valueInfo[v].msg
}

// ParseValue looks up a value by its Name.
func ParseValue(name string) (Value, bool) {
	for v := Unparsed; v < numValues; v++ {
		if valueInfo[v].name == name {
			return v, true
		}
	}
	return Unparsed, false
}
