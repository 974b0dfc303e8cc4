package predict

import "testing"

func TestSpanColumn(t *testing.T) {
	s := Span{2, 6}
	if s.Column() != 3 {
		t.Errorf("expected column 3, is %d", s.Column())
	}
	if c := (Span{}).Column(); c != 1 {
		t.Errorf("expected zero span to start at column 1, is %d", c)
	}
	if s.String() != "(2…6)" {
		t.Errorf("expected span (2…6), is %v", s)
	}
}
