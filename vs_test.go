package x690

import "testing"

func TestVisibleStringRoundTrip(t *testing.T) {
	want := "Visible Text ~ 123"
	s, err := NewVisibleString(want)
	if err != nil {
		t.Fatal(err)
	}
	el, err := s.ToElement(CER)
	if err != nil {
		t.Fatal(err)
	}
	wire, err := el.ToBytes(CER)
	if err != nil {
		t.Fatal(err)
	}
	e, n, err := FromBytes(CER, wire)
	if err != nil || n != len(wire) {
		t.Fatalf("FromBytes: %v", err)
	}
	got, err := ParseVisibleString(e, CER)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestVisibleStringRejectsControlChar(t *testing.T) {
	if _, err := NewVisibleString("line\nbreak"); err == nil {
		t.Error("expected a control character to be rejected in VisibleString")
	}
}
