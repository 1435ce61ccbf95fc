package x690

import "testing"

func TestBooleanRoundTrip(t *testing.T) {
	for _, rule := range []EncodingRule{BER, CER, DER} {
		for _, want := range []bool{true, false} {
			b, err := NewBoolean(want)
			if err != nil {
				t.Fatalf("%s: NewBoolean(%v): %v", rule, want, err)
			}
			wire, err := b.ToElement().ToBytes(rule)
			if err != nil {
				t.Fatalf("%s: ToBytes: %v", rule, err)
			}
			e, n, err := FromBytes(rule, wire)
			if err != nil {
				t.Fatalf("%s: FromBytes: %v", rule, err)
			}
			if n != len(wire) {
				t.Fatalf("%s: consumed %d, want %d", rule, n, len(wire))
			}
			got, err := ParseBoolean(e, rule)
			if err != nil {
				t.Fatalf("%s: ParseBoolean: %v", rule, err)
			}
			if bool(got) != want {
				t.Errorf("%s: got %v, want %v", rule, got, want)
			}
		}
	}
}

func TestBooleanTrueEncodesAsFF(t *testing.T) {
	wire, err := Boolean(true).ToElement().ToBytes(BER)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x01, 0x01, 0xFF}
	if string(wire) != string(want) {
		t.Errorf("got % X, want % X", wire, want)
	}
}

func TestBooleanStrictRejectsNonCanonical(t *testing.T) {
	wire := []byte{0x01, 0x01, 0x01}
	e, _, err := FromBytes(DER, wire)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseBoolean(e, DER); err == nil {
		t.Error("expected DER to reject a non-canonical BOOLEAN content octet")
	}
	if _, err := ParseBoolean(e, BER); err != nil {
		t.Errorf("BER should accept a nonzero BOOLEAN content octet: %v", err)
	}
}
