// Package form holds the editable state of one tip calculator widget.
//
// A Form is a plain mutable record of the three input fields. It keeps no
// derived values: Result runs the calculator on every read, and observers
// registered with OnChange are called synchronously after each mutation.
// A Form is owned by a single UI goroutine and is not safe for concurrent use.
package form

import (
	"errors"
	"fmt"

	"github.com/mmynk/tiptop/internal/calculator"
	"github.com/mmynk/tiptop/internal/models"
)

var (
	// ErrUnknownField is returned for a field name that is not one of the three inputs.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownPreset is returned when selecting a tip percentage that is not a preset.
	ErrUnknownPreset = errors.New("unknown tip preset")
)

// Field identifies one of the widget inputs.
type Field int

const (
	FieldBill Field = iota
	FieldTipPercentage
	FieldPartyCount
)

var fieldNames = map[Field]string{
	FieldBill:          "bill",
	FieldTipPercentage: "tip_percentage",
	FieldPartyCount:    "party_count",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps a wire name such as "tip_percentage" to its Field.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ChangeFunc observes the form after a mutation.
type ChangeFunc func(in models.Inputs, result calculator.Result)

// Form is the state holder behind a widget.
type Form struct {
	inputs    models.Inputs
	observers []ChangeFunc
}

// New returns a form showing the defaults.
func New() *Form {
	return &Form{inputs: models.DefaultInputs()}
}

// FromInputs returns a form initialised with previously captured inputs.
func FromInputs(in models.Inputs) *Form {
	return &Form{inputs: in}
}

// OnChange registers fn to run after every mutation, including Reset.
func (f *Form) OnChange(fn ChangeFunc) {
	f.observers = append(f.observers, fn)
}

// Inputs returns a copy of the current field values.
func (f *Form) Inputs() models.Inputs {
	return f.inputs
}

// Result derives the per-person shares from the current fields.
func (f *Form) Result() calculator.Result {
	return calculator.Calculate(f.inputs)
}

// Set overwrites one field with value. Any text is accepted.
func (f *Form) Set(field Field, value string) error {
	switch field {
	case FieldBill:
		f.inputs.Bill = value
	case FieldTipPercentage:
		f.inputs.TipPercentage = value
	case FieldPartyCount:
		f.inputs.PartyCount = value
	default:
		return fmt.Errorf("%w: %v", ErrUnknownField, field)
	}
	f.notify()
	return nil
}

func (f *Form) SetBill(value string) { _ = f.Set(FieldBill, value) }

func (f *Form) SetTipPercentage(value string) { _ = f.Set(FieldTipPercentage, value) }

func (f *Form) SetPartyCount(value string) { _ = f.Set(FieldPartyCount, value) }

// SelectPreset writes a preset percentage into the tip field as text.
func (f *Form) SelectPreset(percent int) error {
	if !calculator.IsPreset(percent) {
		return fmt.Errorf("%w: %d", ErrUnknownPreset, percent)
	}
	return f.Set(FieldTipPercentage, calculator.PresetText(percent))
}

// SelectedPreset returns the preset whose text matches the tip field exactly.
// A custom "15.0" does not select the 15 preset.
func (f *Form) SelectedPreset() (int, bool) {
	for _, p := range calculator.Presets() {
		if calculator.PresetText(p) == f.inputs.TipPercentage {
			return p, true
		}
	}
	return 0, false
}

// Reset restores the defaults.
func (f *Form) Reset() {
	f.inputs = models.DefaultInputs()
	f.notify()
}

func (f *Form) notify() {
	if len(f.observers) == 0 {
		return
	}
	result := f.Result()
	for _, fn := range f.observers {
		fn(f.inputs, result)
	}
}
