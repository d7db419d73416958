package modelfolio

import "testing"

func TestMoney_Share(t *testing.T) {
	networth := USD(2000)

	if got := networth.Share(5); !got.Equal(USD(100)) {
		t.Errorf("Share(5) = %v, want %v", got, USD(100))
	}
	if got := networth.Share(95); !got.Equal(USD(1900)) {
		t.Errorf("Share(95) = %v, want %v", got, USD(1900))
	}
	if got := networth.Share(0); !got.IsZero() {
		t.Errorf("Share(0) = %v, want zero", got)
	}
}

func TestMoney_PercentOf(t *testing.T) {
	tests := []struct {
		value, total Money
		want         Percent
	}{
		{USD(100), USD(2000), 5},
		{USD(1900), USD(2000), 95},
		{USD(1), USD(3), 33.3333},
		{USD(100), USD(0), 0}, // zero total must not divide by zero
	}
	for _, tt := range tests {
		if got := tt.value.PercentOf(tt.total); !got.Equal(tt.want) {
			t.Errorf("%v.PercentOf(%v) = %v, want %v", tt.value, tt.total, got, tt.want)
		}
	}
}

func TestMoney_SameCents(t *testing.T) {
	tests := []struct {
		a, b Money
		want bool
	}{
		{USD(2050), USD(2050), true},
		{USD(2050.001), USD(2050), true},  // below the half-cent, same cent
		{USD(2050.01), USD(2050), false},  // a full cent apart
		{USD(2050.006), USD(2050), false}, // rounds to a different cent
	}
	for _, tt := range tests {
		if got := tt.a.SameCents(tt.b); got != tt.want {
			t.Errorf("%v.SameCents(%v) = %t, want %t", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMoney_Strings(t *testing.T) {
	if got := USD(1234.56).String(); got != "$1,234.56" {
		t.Errorf("String() = %q, want %q", got, "$1,234.56")
	}
	if got := USD(0).SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want %q", got, "-")
	}
	if got := USD(12.5).SignedString(); got != "+$12.50" {
		t.Errorf("SignedString() = %q, want %q", got, "+$12.50")
	}
	if got := USD(-12.5).SignedString(); got != "-$12.50" {
		t.Errorf("SignedString() = %q, want %q", got, "-$12.50")
	}
}
