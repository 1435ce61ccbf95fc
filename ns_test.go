package x690

import "testing"

func TestNumericStringRoundTrip(t *testing.T) {
	want := "012 345 6789"
	s, err := NewNumericString(want)
	if err != nil {
		t.Fatal(err)
	}
	el, err := s.ToElement(DER)
	if err != nil {
		t.Fatal(err)
	}
	wire, err := el.ToBytes(DER)
	if err != nil {
		t.Fatal(err)
	}
	e, n, err := FromBytes(DER, wire)
	if err != nil || n != len(wire) {
		t.Fatalf("FromBytes: %v", err)
	}
	got, err := ParseNumericString(e, DER)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNumericStringRejectsLetters(t *testing.T) {
	if _, err := NewNumericString("abc"); err == nil {
		t.Error("expected letters to be rejected in NumericString")
	}
}
