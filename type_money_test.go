package networth

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(12500, USD), "$12,500.00"},
		{M(0.5, USD), "$0.50"},
		{M(-42.5, USD), "-$42.50"},
		{M(1234567.89, USD), "$1,234,567.89"},
	}
	for _, tc := range tests {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(2800, USD).SignedString(); got != "+$2,800.00" {
		t.Errorf("SignedString() = %q, want %q", got, "+$2,800.00")
	}
	if got := M(-100, USD).SignedString(); got != "-$100.00" {
		t.Errorf("SignedString() = %q, want %q", got, "-$100.00")
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(100.25, "EUR")
	b := M(50.75, "EUR")
	if got := a.Add(b); !got.Equal(M(151, "EUR")) {
		t.Errorf("Add = %s", got)
	}
	if got := a.Sub(b); !got.Equal(M(49.50, "EUR")) {
		t.Errorf("Sub = %s", got)
	}
	// the "" currency is weak and takes the other operand's currency.
	zero := M(0, "")
	if got := zero.Add(a); got.Currency() != "EUR" {
		t.Errorf("weak currency Add = %s", got.Currency())
	}
}

func TestMoneyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding EUR to CHF should panic")
		}
	}()
	M(1, "EUR").Add(M(1, "CHF"))
}

func TestMoneyFromDecimal(t *testing.T) {
	d := decimal.RequireFromString("9000.125")
	m := M(d, "CHF")
	if !m.Amount().Equal(d) {
		t.Errorf("Amount() = %s, want %s", m.Amount(), d)
	}
	if m.Currency() != "CHF" {
		t.Errorf("Currency() = %s", m.Currency())
	}
}

func TestPercentOf(t *testing.T) {
	got := PercentOf(decimal.NewFromInt(12500), decimal.NewFromInt(22500))
	if !got.Equal(Percent(55.5556)) {
		t.Errorf("PercentOf = %s", got)
	}
	if got := PercentOf(decimal.NewFromInt(10), decimal.Zero); got != 0 {
		t.Errorf("zero total should give 0, got %s", got)
	}
}

func TestPercentString(t *testing.T) {
	if got := Percent(6.6194).String(); got != "6.62%" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(6.6194).SignedString(); got != "+6.62%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(-3.1).SignedString(); got != "-3.10%" {
		t.Errorf("SignedString() = %q", got)
	}
}
