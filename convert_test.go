package networth

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToUSD(t *testing.T) {
	rates := map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.92"),
		"CHF": decimal.RequireFromString("0.9"),
	}

	t.Run("usd passes through", func(t *testing.T) {
		v := decimal.NewFromInt(12500)
		got, err := ToUSD(v, USD, rates)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(v) {
			t.Errorf("got %s, want %s", got, v)
		}
	})

	t.Run("divides by the rate", func(t *testing.T) {
		got, err := ToUSD(decimal.NewFromInt(9000), "CHF", rates)
		if err != nil {
			t.Fatal(err)
		}
		if want := decimal.NewFromInt(10000); !got.Equal(want) {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("keeps precision", func(t *testing.T) {
		got, err := ToUSD(decimal.NewFromInt(800), "EUR", rates)
		if err != nil {
			t.Fatal(err)
		}
		// 800 / 0.92 is periodic; only the displayed value is rounded.
		if got.Round(2).String() != "869.57" {
			t.Errorf("got %s, want 869.57 when rounded", got.Round(2))
		}
	})

	t.Run("missing rate", func(t *testing.T) {
		_, err := ToUSD(decimal.NewFromInt(1), "JPY", rates)
		if !errors.Is(err, ErrMissingRate) {
			t.Errorf("got %v, want ErrMissingRate", err)
		}
	})

	t.Run("non positive rate", func(t *testing.T) {
		bad := map[string]decimal.Decimal{"EUR": decimal.Zero}
		_, err := ToUSD(decimal.NewFromInt(1), "EUR", bad)
		if !errors.Is(err, ErrMissingRate) {
			t.Errorf("got %v, want ErrMissingRate", err)
		}
	})
}
