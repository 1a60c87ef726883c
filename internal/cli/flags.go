package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a fixed set of choices.
type enumValue struct {
	choices []string
	value   string
	set     bool
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(def string, choices ...string) *enumValue {
	return &enumValue{choices: choices, value: def}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range e.choices {
		if c == s {
			e.value = s
			e.set = true
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(e.choices, ", "))
}

func (e *enumValue) Type() string { return "string" }

// vizValue returns a flag accepting the dashboard visualization names.
func vizValue() *enumValue {
	names := make([]string, 0, len(domain.ValidVisualizations))
	for v := range domain.ValidVisualizations {
		names = append(names, string(v))
	}
	sort.Strings(names)
	return newEnumValue("", names...)
}

func (e *enumValue) viz() domain.VisualizationType {
	return domain.VisualizationType(e.value)
}

// changedFloat returns a pointer to a float flag's value if it was given.
func changedFloat(flags *pflag.FlagSet, name string) (*float64, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	v, err := flags.GetFloat64(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// changedString returns a pointer to a string flag's value if it was given.
func changedString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return nil
	}
	return &v
}
