package sparse

import "testing"

func TestMatrixAddAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	if !M.Add(2, 3, 4711) {
		t.Errorf("expected Add to an empty position to succeed")
	}
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	if v := M.Value(9, 9); v != M.NullValue() {
		t.Errorf("expected M(9,9) to be null, is %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 value in M, have %d", M.ValueCount())
	}
}

func TestMatrixAddKeepsFirst(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	if !M.Add(1, 1, 5) {
		t.Errorf("expected first Add to an empty cell to succeed")
	}
	if M.Add(1, 1, 6) {
		t.Errorf("expected second Add to report an occupied cell")
	}
	if M.Add(1, 1, 7) {
		t.Errorf("expected third Add to report an occupied cell")
	}
	if v := M.Value(1, 1); v != 5 {
		t.Errorf("expected first value 5 to be kept, is %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 value in M, have %d", M.ValueCount())
	}
}

func TestMatrixRowMajorOrder(t *testing.T) {
	M := NewIntMatrix(4, 4, -1)
	M.Add(3, 0, 30)
	M.Add(0, 2, 2)
	M.Add(1, 1, 11)
	M.Add(0, 0, 0)
	var seen []int32
	M.Each(func(i, j int, v int32) {
		seen = append(seen, v)
	})
	expected := []int32{0, 2, 11, 30}
	if len(seen) != len(expected) {
		t.Fatalf("expected %d values, have %d", len(expected), len(seen))
	}
	for k := range expected {
		if seen[k] != expected[k] {
			t.Errorf("expected value #%d to be %d, is %d", k, expected[k], seen[k])
		}
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for index out of range")
		}
	}()
	M := NewIntMatrix(2, 2, -1)
	M.Add(2, 0, 1)
}
