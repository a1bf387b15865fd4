package conv

import "testing"

func TestIntToUint32(t *testing.T) {
	if got := IntToUint32(42); got != 42 {
		t.Fatalf("IntToUint32(42) = %d, want 42", got)
	}
}

func TestIntToUint32PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("IntToUint32(-1) did not panic")
		}
	}()
	IntToUint32(-1)
}

func TestIntToUint16PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("IntToUint16(1 << 20) did not panic")
		}
	}()
	IntToUint16(1 << 20)
}
