package x690

/*
err.go contains the symbolic error taxonomy shared by every component
in this package. Every failure this codec returns is a *[Error]
carrying a [Kind] a caller can switch on, per spec §7.
*/

import "errors"

// Kind identifies the symbolic category of a codec failure. Callers
// that need to distinguish, say, a truncated buffer from a malformed
// tag should switch on Kind rather than match error strings.
type Kind uint8

const (
	// GenericError covers failures with no more specific Kind,
	// including deliberately-unimplemented ASN.1 features (e.g. a
	// GeneralizedTime with fractional seconds or a non-Z offset).
	GenericError Kind = iota
	// TruncationError: insufficient input for a declared length.
	TruncationError
	// OverflowError: a length-of-length, tag number, or numeric
	// value exceeds the range this codec accepts.
	OverflowError
	// PaddingError: a long-form tag or length carries a forbidden
	// leading padding octet.
	PaddingError
	// ConstructionError: primitive form where constructed is
	// required, or vice versa.
	ConstructionError
	// SizeError: a fixed-width value has the wrong octet count.
	SizeError
	// UndefinedError: a reserved or unrecognized wire encoding
	// (length octet 0xFF, unknown REAL format tag).
	UndefinedError
	// RecursionError: nesting depth exceeded [NestingLimit].
	RecursionError
	// CharactersError: a character outside a restricted string
	// type's permitted set.
	CharactersError
)

func (k Kind) String() string {
	switch k {
	case TruncationError:
		return "TruncationError"
	case OverflowError:
		return "OverflowError"
	case PaddingError:
		return "PaddingError"
	case ConstructionError:
		return "ConstructionError"
	case SizeError:
		return "SizeError"
	case UndefinedError:
		return "UndefinedError"
	case RecursionError:
		return "RecursionError"
	case CharactersError:
		return "CharactersError"
	default:
		return "GenericError"
	}
}

// Error is the concrete error type returned by every decode and
// encode operation in this package.
type Error struct {
	Kind Kind
	Rule EncodingRule
	msg  string
}

func (e *Error) Error() string {
	if e.Rule != invalidEncodingRule {
		return e.Rule.String() + ": " + e.Kind.String() + ": " + e.msg
	}
	return e.Kind.String() + ": " + e.msg
}

// Is reports whether target is an *Error of the same Kind, so callers
// may write errors.Is(err, x690.TruncationError) style checks via
// [KindError].
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// KindError returns a sentinel *Error of the given kind, suitable as
// the target of an errors.Is comparison.
func KindError(k Kind) error { return &Error{Kind: k} }

func newErr(k Kind, rule EncodingRule, msg string) error {
	return &Error{Kind: k, Rule: rule, msg: msg}
}

func newErrf(k Kind, rule EncodingRule, parts ...any) error {
	return &Error{Kind: k, Rule: rule, msg: joinParts(parts)}
}

func joinParts(parts []any) string {
	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case error:
			b.WriteString(v.Error())
		case int:
			b.WriteString(itoa(v))
		case EncodingRule:
			b.WriteString(v.String())
		default:
			b.WriteString("<unsupported>")
		}
	}
	return b.String()
}

// Sentinel errors used internally and safe to compare via errors.Is.
var (
	errTruncated        = newErr(TruncationError, invalidEncodingRule, "truncated input")
	errLengthOverflow   = newErr(OverflowError, invalidEncodingRule, "length-of-length too large")
	errTagOverflow      = newErr(OverflowError, invalidEncodingRule, "tag number overflow")
	errIntOverflow      = newErr(OverflowError, invalidEncodingRule, "integer value exceeds machine-word range")
	errPaddingTag       = newErr(PaddingError, invalidEncodingRule, "leading-zero continuation octet in long-form tag")
	errConstruction     = newErr(ConstructionError, invalidEncodingRule, "wrong construction (primitive/constructed) for type")
	errIndefinite       = newErr(ConstructionError, invalidEncodingRule, "indefinite length requires constructed form")
	errReservedLength   = newErr(UndefinedError, invalidEncodingRule, "reserved length octet 0xFF")
	errIndefiniteDenied = newErr(GenericError, invalidEncodingRule, "encoding rule forbids indefinite length")
	errRecursion        = newErr(RecursionError, invalidEncodingRule, "nesting limit exceeded")
	errNoEOC            = newErr(TruncationError, invalidEncodingRule, "missing end-of-contents for indefinite value")
)
