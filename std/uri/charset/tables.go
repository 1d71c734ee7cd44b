package charset

// RFC 3986 productions. The *NotPctEncoded sets list the bytes that may
// appear unescaped in the component.
var (
	Alpha    = Union(Range('a', 'z'), Range('A', 'Z'))
	Digit    = Range('0', '9')
	HexDigit = Union(Digit, Range('a', 'f'), Range('A', 'F'))

	Unreserved = Union(Alpha, Digit, Of("-._~"))
	GenDelims  = Of(":/?#[]@")
	SubDelims  = Of("!$&'()*+,;=")
	Reserved   = Union(GenDelims, SubDelims)

	PcharNotPctEncoded           = Union(Unreserved, SubDelims, Of(":@"))
	PathNotPctEncoded            = PcharNotPctEncoded.With("/")
	QueryOrFragmentNotPctEncoded = PcharNotPctEncoded.With("/?")
	UserInfoNotPctEncoded        = Union(Unreserved, SubDelims, Of(":"))
	RegNameNotPctEncoded         = Union(Unreserved, SubDelims)
	SchemeNotFirst               = Union(Alpha, Digit, Of("+-."))
	IPvFutureLastPart            = Union(Unreserved, SubDelims, Of(":"))
	Port                         = Digit

	// Bytes a query key or value may hold unescaped once the pair
	// delimiters are taken out.
	QueryKey   = QueryOrFragmentNotPctEncoded.Except("&=+")
	QueryValue = QueryOrFragmentNotPctEncoded.Except("&+")

	// A single path segment, used when encoding slugs.
	Slug = PcharNotPctEncoded
	// User name part of the user-info, which ends at the first colon.
	Username = UserInfoNotPctEncoded.Except(":")
)

// WHATWG URL sets used by the loose parser. The *PercentEncode sets list
// the bytes that must be escaped, call Complement to obtain the allowed set.
var (
	C0Control        = Range(0x00, 0x1f)
	C0ControlOrSpace = C0Control.With(" ")
	ASCIITabOrNL     = Of("\t\n\r")

	C0ControlPercentEncode = Union(C0Control, Range(0x7f, 0xff))
	FragmentPercentEncode  = C0ControlPercentEncode.With(" \"<>`")
	QueryPercentEncode     = C0ControlPercentEncode.With(" \"#<>")
	SpecialQueryPercent    = QueryPercentEncode.With("'")
	PathPercentEncode      = QueryPercentEncode.With("?^`{}")
	UserInfoPercentEncode  = PathPercentEncode.With("/:;=@[\\]|")

	ForbiddenHostCodePoints   = Of("\x00\t\n\r #/:<>?@[\\]^|")
	ForbiddenDomainCodePoints = Union(ForbiddenHostCodePoints, C0Control, Of("%\x7f"))
)

// ByName maps the names accepted by the command line tools to sets.
var ByName = map[string]Set{
	"alpha":              Alpha,
	"digit":              Digit,
	"hex":                HexDigit,
	"unreserved":         Unreserved,
	"gen-delims":         GenDelims,
	"sub-delims":         SubDelims,
	"reserved":           Reserved,
	"pchar":              PcharNotPctEncoded,
	"path":               PathNotPctEncoded,
	"slug":               Slug,
	"query":              QueryOrFragmentNotPctEncoded,
	"fragment":           QueryOrFragmentNotPctEncoded,
	"query-key":          QueryKey,
	"query-value":        QueryValue,
	"userinfo":           UserInfoNotPctEncoded,
	"reg-name":           RegNameNotPctEncoded,
	"scheme":             SchemeNotFirst,
	"ipvfuture":          IPvFutureLastPart,
	"whatwg-fragment":    FragmentPercentEncode.Complement(),
	"whatwg-query":       QueryPercentEncode.Complement(),
	"whatwg-path":        PathPercentEncode.Complement(),
	"whatwg-userinfo":    UserInfoPercentEncode.Complement(),
	"whatwg-host-forbid": ForbiddenHostCodePoints,
}

// IsAlpha returns true for ASCII letters.
func IsAlpha(b byte) bool { return Alpha.Contains(b) }

// IsDigit returns true for ASCII decimal digits.
func IsDigit(b byte) bool { return '0' <= b && b <= '9' }

// IsHexDigit returns true for ASCII hexadecimal digits.
func IsHexDigit(b byte) bool { return HexDigit.Contains(b) }

// HexValue returns the value of a hexadecimal digit.
func HexValue(b byte) (byte, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
