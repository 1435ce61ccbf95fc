package x690

import "testing"

func TestT61StringRoundTrip(t *testing.T) {
	want := "legacy teletex text"
	s, err := NewT61String(want)
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
	got, err := ParseT61String(e, BER)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
