package calculator

import (
	"testing"

	"github.com/mmynk/tiptop/internal/models"
)

func TestCalculateTip(t *testing.T) {
	tests := []struct {
		name          string
		bill          string
		tipPercentage string
		partyCount    string
		want          Result
	}{
		{
			name:          "two people with 15% tip",
			bill:          "100",
			tipPercentage: "15",
			partyCount:    "2",
			want:          Result{PreTip: "50.00", Tip: "7.50", Total: "57.50"},
		},
		{
			name:          "empty tip means no tip",
			bill:          "50",
			tipPercentage: "",
			partyCount:    "1",
			want:          Result{PreTip: "50.00", Tip: "0.00", Total: "50.00"},
		},
		{
			name:          "empty bill degrades to zero",
			bill:          "",
			tipPercentage: "20",
			partyCount:    "4",
			want:          ZeroResult,
		},
		{
			name:          "each share rounded on its own",
			bill:          "99.99",
			tipPercentage: "10",
			partyCount:    "3",
			// 33.33 + 3.333 = 36.663, not 33.33 + 3.33
			want: Result{PreTip: "33.33", Tip: "3.33", Total: "36.66"},
		},
		{
			name:          "rounded total can drift a cent from the parts",
			bill:          "10",
			tipPercentage: "5",
			partyCount:    "3",
			// 3.3333 + 0.1667 = 3.5
			want: Result{PreTip: "3.33", Tip: "0.17", Total: "3.50"},
		},
		{
			name:          "zero party count",
			bill:          "100",
			tipPercentage: "15",
			partyCount:    "0",
			want:          ZeroResult,
		},
		{
			name:          "non-numeric party count",
			bill:          "100",
			tipPercentage: "15",
			partyCount:    "many",
			want:          ZeroResult,
		},
		{
			name:          "non-numeric bill",
			bill:          "lots",
			tipPercentage: "15",
			partyCount:    "2",
			want:          ZeroResult,
		},
		{
			name:          "non-numeric tip",
			bill:          "80",
			tipPercentage: "generous",
			partyCount:    "4",
			want:          Result{PreTip: "20.00", Tip: "0.00", Total: "20.00"},
		},
		{
			name:          "fractional party count truncates",
			bill:          "90",
			tipPercentage: "10",
			partyCount:    "3.9",
			want:          Result{PreTip: "30.00", Tip: "3.00", Total: "33.00"},
		},
		{
			name:          "party count below one truncates to zero",
			bill:          "90",
			tipPercentage: "10",
			partyCount:    "0.5",
			want:          ZeroResult,
		},
		{
			name:          "trailing text after numbers is ignored",
			bill:          "60 dollars",
			tipPercentage: "25%",
			partyCount:    "3 people",
			want:          Result{PreTip: "20.00", Tip: "5.00", Total: "25.00"},
		},
		{
			name:          "custom fractional tip",
			bill:          "42.50",
			tipPercentage: "12.5",
			partyCount:    "1",
			// 42.50 × 0.125 = 5.3125
			want: Result{PreTip: "42.50", Tip: "5.31", Total: "47.81"},
		},
		{
			name:          "bill of zero",
			bill:          "0",
			tipPercentage: "50",
			partyCount:    "5",
			want:          ZeroResult,
		},
		{
			name:          "negative zero bill renders unsigned",
			bill:          "-0",
			tipPercentage: "10",
			partyCount:    "1",
			want:          ZeroResult,
		},
		{
			name:          "negative bill keeps its sign",
			bill:          "-20",
			tipPercentage: "10",
			partyCount:    "2",
			want:          Result{PreTip: "-10.00", Tip: "-1.00", Total: "-11.00"},
		},
		{
			name:          "overflowing bill literal is invalid",
			bill:          "1e400",
			tipPercentage: "10",
			partyCount:    "2",
			want:          ZeroResult,
		},
		{
			name:          "overflowing tip share falls back to zero",
			bill:          "1e308",
			tipPercentage: "1e308",
			partyCount:    "1",
			want:          ZeroResult,
		},
		{
			name:          "party count beyond int64 is invalid",
			bill:          "10",
			tipPercentage: "10",
			partyCount:    "99999999999999999999",
			want:          ZeroResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTip(tt.bill, tt.tipPercentage, tt.partyCount)
			if got != tt.want {
				t.Errorf("CalculateTip(%q, %q, %q) = %+v, want %+v",
					tt.bill, tt.tipPercentage, tt.partyCount, got, tt.want)
			}
		})
	}
}

func TestCalculate_DefaultInputs(t *testing.T) {
	got := Calculate(models.DefaultInputs())
	if got != ZeroResult {
		t.Errorf("Calculate(defaults) = %+v, want %+v", got, ZeroResult)
	}
	if !got.IsZero() {
		t.Error("IsZero() = false for default inputs")
	}
}

func TestCalculate_MatchesCalculateTip(t *testing.T) {
	in := models.Inputs{Bill: "120", TipPercentage: "25", PartyCount: "4"}
	got := Calculate(in)
	want := Result{PreTip: "30.00", Tip: "7.50", Total: "37.50"}
	if got != want {
		t.Errorf("Calculate(%+v) = %+v, want %+v", in, got, want)
	}
	if got.IsZero() {
		t.Error("IsZero() = true for a non-zero result")
	}
}

func TestPresets(t *testing.T) {
	want := []int{5, 10, 15, 25, 50}
	got := Presets()
	if len(got) != len(want) {
		t.Fatalf("Presets() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Presets()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	// Callers must not be able to change the presets
	got[0] = 99
	if Presets()[0] != 5 {
		t.Error("Presets() exposes its backing array")
	}

	for _, p := range want {
		if !IsPreset(p) {
			t.Errorf("IsPreset(%d) = false", p)
		}
	}
	for _, p := range []int{0, 20, 100, -5} {
		if IsPreset(p) {
			t.Errorf("IsPreset(%d) = true", p)
		}
	}

	if got := PresetText(15); got != "15" {
		t.Errorf("PresetText(15) = %q, want %q", got, "15")
	}
}
