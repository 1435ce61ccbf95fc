package x690

/*
time.go implements the ASN.1 UTCTime and GeneralizedTime types, per
spec §4.2 and ITU-T X.690 clauses 8.25-8.26. Grounded on the teacher's
time.go for the type surface, but diverging from it in two ways noted
as Open Question resolutions: the teacher's regexp-driven, build-tag
variant parsers (time_dprc_on.go/time_dprc_off.go) are dropped in
favor of plain digit-by-digit field validation, and this package
accepts only the canonical "Z" (UTC) form on decode — a
GeneralizedTime carrying fractional seconds or a non-Z zone offset is
rejected with GenericError rather than accepted and normalized.
*/

import "time"

// UTCTime implements the ASN.1 UTCTime type: a timestamp with a
// two-digit year, resolved to a century by the pivot in
// [utcTimeCentury].
type UTCTime time.Time

// Tag returns TagUTCTime.
func (UTCTime) Tag() int { return TagUTCTime }

// String returns the receiver in its canonical wire form.
func (r UTCTime) String() string { return formatUTCTime(time.Time(r)) }

// NewUTCTime constructs a UTCTime from a time.Time or an existing
// UTCTime.
func NewUTCTime(x any) (UTCTime, error) {
	switch tv := x.(type) {
	case UTCTime:
		return tv, nil
	case time.Time:
		return UTCTime(tv.UTC()), nil
	default:
		return UTCTime{}, newErr(GenericError, invalidEncodingRule, "invalid type for UTCTime")
	}
}

// ToElement encodes the receiver as a primitive UNIVERSAL UTCTime
// Element in its canonical "YYMMDDHHMMSSZ" form.
func (r UTCTime) ToElement() *Element {
	return Universal(TagUTCTime, false, []byte(formatUTCTime(time.Time(r))))
}

// ParseUTCTime decodes e, previously read under rule, as a UTCTime.
func ParseUTCTime(e *Element, rule EncodingRule) (UTCTime, error) {
	if e.Constructed {
		return UTCTime{}, newErr(ConstructionError, rule, "UTCTime must be primitive")
	}
	t, err := parseUTCTime(string(e.Value))
	if err != nil {
		return UTCTime{}, err
	}
	return UTCTime(t), nil
}

// utcTimeCentury resolves a two-digit UTCTime year to a century using
// the conventional 50/50 pivot: 50-99 is 19xx, 00-49 is 20xx.
func utcTimeCentury(yy int) int {
	if yy >= 50 {
		return 1900 + yy
	}
	return 2000 + yy
}

func formatUTCTime(t time.Time) string {
	t = t.UTC()
	return pad2(t.Year()%100) + pad2(int(t.Month())) + pad2(t.Day()) +
		pad2(t.Hour()) + pad2(t.Minute()) + pad2(t.Second()) + "Z"
}

func parseUTCTime(s string) (time.Time, error) {
	if len(s) != 13 || s[12] != 'Z' {
		return time.Time{}, newErr(SizeError, invalidEncodingRule, "UTCTime must be exactly YYMMDDHHMMSSZ")
	}
	if !allDigits(s[:12]) {
		return time.Time{}, newErr(CharactersError, invalidEncodingRule, "non-digit character in UTCTime")
	}
	yy := digits2(s, 0)
	month := digits2(s, 2)
	day := digits2(s, 4)
	hour := digits2(s, 6)
	minute := digits2(s, 8)
	second := digits2(s, 10)
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, newErr(GenericError, invalidEncodingRule, "UTCTime field out of range")
	}
	return time.Date(utcTimeCentury(yy), time.Month(month), day, hour, minute, second, 0, time.UTC), nil
}

// GeneralizedTime implements the ASN.1 GeneralizedTime type: a
// timestamp with a four-digit year. Only the canonical "Z"-suffixed,
// whole-second form is accepted on decode.
type GeneralizedTime time.Time

// Tag returns TagGeneralizedTime.
func (GeneralizedTime) Tag() int { return TagGeneralizedTime }

// String returns the receiver in its canonical wire form.
func (r GeneralizedTime) String() string { return formatGeneralizedTime(time.Time(r)) }

// NewGeneralizedTime constructs a GeneralizedTime from a time.Time or
// an existing GeneralizedTime.
func NewGeneralizedTime(x any) (GeneralizedTime, error) {
	switch tv := x.(type) {
	case GeneralizedTime:
		return tv, nil
	case time.Time:
		return GeneralizedTime(tv.UTC()), nil
	default:
		return GeneralizedTime{}, newErr(GenericError, invalidEncodingRule, "invalid type for GeneralizedTime")
	}
}

// ToElement encodes the receiver as a primitive UNIVERSAL
// GeneralizedTime Element in its canonical "YYYYMMDDHHMMSSZ" form.
func (r GeneralizedTime) ToElement() *Element {
	return Universal(TagGeneralizedTime, false, []byte(formatGeneralizedTime(time.Time(r))))
}

// ParseGeneralizedTime decodes e, previously read under rule, as a
// GeneralizedTime.
func ParseGeneralizedTime(e *Element, rule EncodingRule) (GeneralizedTime, error) {
	if e.Constructed {
		return GeneralizedTime{}, newErr(ConstructionError, rule, "GeneralizedTime must be primitive")
	}
	t, err := parseGeneralizedTime(string(e.Value))
	if err != nil {
		return GeneralizedTime{}, err
	}
	return GeneralizedTime(t), nil
}

func formatGeneralizedTime(t time.Time) string {
	t = t.UTC()
	return pad4(t.Year()) + pad2(int(t.Month())) + pad2(t.Day()) +
		pad2(t.Hour()) + pad2(t.Minute()) + pad2(t.Second()) + "Z"
}

func parseGeneralizedTime(s string) (time.Time, error) {
	for i := 10; i < len(s); i++ {
		switch s[i] {
		case '.', ',', '+', '-':
			return time.Time{}, newErr(GenericError, invalidEncodingRule,
				"GeneralizedTime fractional seconds and zone offsets are not supported")
		}
	}
	if len(s) != 15 || s[14] != 'Z' {
		return time.Time{}, newErr(SizeError, invalidEncodingRule,
			"GeneralizedTime must be exactly YYYYMMDDHHMMSSZ; fractional seconds and zone offsets are not accepted")
	}
	if !allDigits(s[:14]) {
		return time.Time{}, newErr(CharactersError, invalidEncodingRule, "non-digit character in GeneralizedTime")
	}
	year := digits4(s, 0)
	month := digits2(s, 4)
	day := digits2(s, 6)
	hour := digits2(s, 8)
	minute := digits2(s, 10)
	second := digits2(s, 12)
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, newErr(GenericError, invalidEncodingRule, "GeneralizedTime field out of range")
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func digits2(s string, i int) int { return int(s[i]-'0')*10 + int(s[i+1]-'0') }

func digits4(s string, i int) int {
	return int(s[i]-'0')*1000 + int(s[i+1]-'0')*100 + int(s[i+2]-'0')*10 + int(s[i+3]-'0')
}

func pad2(n int) string {
	s := itoa(n)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

func pad4(n int) string {
	s := itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
