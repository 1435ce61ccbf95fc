package x690

/*
common.go contains small helpers shared across the codec, following
the teacher's convention of aliasing frequently used standard-library
functions to short package-local names.
*/

import (
	"strconv"
	"strings"
)

var (
	itoa   func(int) string       = strconv.Itoa
	atoi   func(string) (int, error) = strconv.Atoi
	fmtInt func(int64, int) string = strconv.FormatInt
	lc     func(string) string    = strings.ToLower
	hasPfx func(string, string) bool = strings.HasPrefix
	trimS  func(string) string    = strings.TrimSpace
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// classUniversal returns ClassUniversal, the implicit class of the
// UNIVERSAL-tagged constructors this package exposes.
func classUniversal() int { return ClassUniversal }

// isRestrictedStringTag reports whether tag is one of the UNIVERSAL
// string types that ITU-T X.690 §8.21 permits to be encoded in
// constructed (fragmented) form.
func isRestrictedStringTag(tag int) bool {
	switch tag {
	case TagOctetString, TagUTF8String, TagNumericString, TagPrintableString,
		TagT61String, TagVideotexString, TagIA5String, TagGraphicString,
		TagVisibleString, TagGeneralString, TagUniversalString, TagBMPString,
		TagObjectDescriptor, TagBitString:
		return true
	default:
		return false
	}
}
