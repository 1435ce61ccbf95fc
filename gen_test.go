package x690

import "testing"

func TestGeneralStringRoundTrip(t *testing.T) {
	want := "general string text"
	s, err := NewGeneralString(want)
	if err != nil {
		t.Fatal(err)
	}
	el, err := s.ToElement(BER)
	if err != nil {
		t.Fatal(err)
	}
	wire, err := el.ToBytes(BER)
	if err != nil {
		t.Fatal(err)
	}
	e, n, err := FromBytes(BER, wire)
	if err != nil || n != len(wire) {
		t.Fatalf("FromBytes: %v", err)
	}
	got, err := ParseGeneralString(e, BER)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
