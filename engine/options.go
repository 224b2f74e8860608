package engine

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// CaseInsensitiveLess orders option names as if every letter were
// lower-cased, compared byte-wise. The UCI protocol requires option names
// to match case-insensitively, and this is the one ordering the registry
// and combo comparisons both rely on.
func CaseInsensitiveLess(a, b string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		c1 := lowerByte(a[i])
		c2 := lowerByte(b[i])
		if c1 != c2 {
			return c1 < c2
		}
	}
	return len(a) < len(b)
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func caseEqual(a, b string) bool {
	return !CaseInsensitiveLess(a, b) && !CaseInsensitiveLess(b, a)
}

// optionValue is the closed set of option payloads. Exactly one
// implementation exists per option kind; Option.Set switches over all five.
type optionValue interface {
	typeName() string
}

type stringValue struct{ def, cur string }
type comboValue struct {
	def, cur string
	choices  []string
}
type checkValue struct{ def, cur bool }
type spinValue struct {
	def, cur float64
	min, max int
}
type buttonValue struct{}

func (*stringValue) typeName() string { return "string" }
func (*comboValue) typeName() string  { return "combo" }
func (*checkValue) typeName() string  { return "check" }
func (*spinValue) typeName() string   { return "spin" }
func (*buttonValue) typeName() string { return "button" }

// Option is a single configurable engine value. The zero Option is not
// usable; construct one with the New*Option constructors and hand it to
// OptionsMap.Add, which assigns its printing position.
type Option struct {
	name     string
	value    optionValue
	idx      int
	onChange func(*Option)
}

func NewStringOption(def string, onChange func(*Option)) *Option {
	return &Option{value: &stringValue{def: def, cur: def}, onChange: onChange}
}

func NewComboOption(def string, choices []string, onChange func(*Option)) *Option {
	return &Option{value: &comboValue{def: def, cur: def, choices: choices}, onChange: onChange}
}

func NewCheckOption(def bool, onChange func(*Option)) *Option {
	return &Option{value: &checkValue{def: def, cur: def}, onChange: onChange}
}

func NewSpinOption(def, min, max int, onChange func(*Option)) *Option {
	return &Option{value: &spinValue{def: float64(def), cur: float64(def), min: min, max: max}, onChange: onChange}
}

func NewButtonOption(onChange func(*Option)) *Option {
	return &Option{value: &buttonValue{}, onChange: onChange}
}

// Name returns the option's display name as it was declared.
func (o *Option) Name() string { return o.name }

// TypeName returns the UCI type tag: string, combo, check, spin or button.
func (o *Option) TypeName() string { return o.value.typeName() }

// Set validates v against the option's kind and, on success, commits it and
// then runs the change handler. Bad input is dropped without touching the
// current value or the handler; it is up to the GUI to respect the declared
// bounds, but operators type values by hand, so everything is checked here.
func (o *Option) Set(v string) {
	if _, isButton := o.value.(*buttonValue); !isButton && v == "" {
		return
	}
	switch val := o.value.(type) {
	case *stringValue:
		val.cur = v
	case *comboValue:
		if !slices.Contains(val.choices, v) {
			return
		}
		val.cur = v
	case *checkValue:
		if v != "true" && v != "false" {
			return
		}
		val.cur = v == "true"
	case *spinValue:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < float64(val.min) || n > float64(val.max) {
			return
		}
		val.cur = n
	case *buttonValue:
		// no stored value, the handler is the whole effect
	}
	if o.onChange != nil {
		o.onChange(o)
	}
}

// Int returns the current value of a spin option, truncated to an integer.
func (o *Option) Int() int {
	val, ok := o.value.(*spinValue)
	if !ok {
		panic(fmt.Sprintf("option %q is %s, not spin", o.name, o.TypeName()))
	}
	return int(val.cur)
}

// Bool returns the current value of a check option.
func (o *Option) Bool() bool {
	val, ok := o.value.(*checkValue)
	if !ok {
		panic(fmt.Sprintf("option %q is %s, not check", o.name, o.TypeName()))
	}
	return val.cur
}

// Text returns the current value of a string or combo option.
func (o *Option) Text() string {
	switch val := o.value.(type) {
	case *stringValue:
		return val.cur
	case *comboValue:
		return val.cur
	}
	panic(fmt.Sprintf("option %q is %s, not string or combo", o.name, o.TypeName()))
}

// Equals reports whether a combo option's current value matches lit under
// the protocol's case-insensitive name comparison.
func (o *Option) Equals(lit string) bool {
	val, ok := o.value.(*comboValue)
	if !ok {
		panic(fmt.Sprintf("option %q is %s, not combo", o.name, o.TypeName()))
	}
	return caseEqual(val.cur, lit)
}

// OptionsMap holds every declared option, keyed case-insensitively, and
// remembers the declaration order so printing is stable no matter how the
// map iterates. It is populated once at startup and only read afterwards.
type OptionsMap struct {
	entries map[string]*Option
	nextIdx int
}

func NewOptionsMap() *OptionsMap {
	return &OptionsMap{entries: make(map[string]*Option)}
}

// Add declares o under name and assigns its insertion index. Declaration
// happens exactly once per name, during initialization; later value changes
// go through Option.Set.
func (om *OptionsMap) Add(name string, o *Option) *Option {
	o.name = name
	o.idx = om.nextIdx
	om.nextIdx++
	om.entries[strings.ToLower(name)] = o
	return o
}

// Lookup resolves name case-insensitively.
func (om *OptionsMap) Lookup(name string) (*Option, bool) {
	o, ok := om.entries[strings.ToLower(name)]
	return o, ok
}

// Len returns the number of declared options.
func (om *OptionsMap) Len() int { return len(om.entries) }

func (om *OptionsMap) ordered() []*Option {
	opts := make([]*Option, 0, len(om.entries))
	for _, o := range om.entries {
		opts = append(opts, o)
	}
	slices.SortFunc(opts, func(a, b *Option) int { return a.idx - b.idx })
	return opts
}

// String renders the registry for the active protocol, one option per line
// in declaration order, skipping the Protocol selector itself.
func (om *OptionsMap) String() string {
	if proto, ok := om.Lookup("Protocol"); ok && proto.Equals("xboard") {
		return om.xboardFeatures()
	}
	return om.uciOptions()
}

func (om *OptionsMap) uciOptions() string {
	var sb strings.Builder
	for _, o := range om.ordered() {
		if o.name == "Protocol" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "option name %s type %s", o.name, o.TypeName())
		switch val := o.value.(type) {
		case *stringValue:
			fmt.Fprintf(&sb, " default %s", val.def)
		case *checkValue:
			fmt.Fprintf(&sb, " default %v", val.def)
		case *comboValue:
			fmt.Fprintf(&sb, " default %s", val.def)
			for _, c := range val.choices {
				fmt.Fprintf(&sb, " var %s", c)
			}
		case *spinValue:
			fmt.Fprintf(&sb, " default %d min %d max %d", int(val.def), val.min, val.max)
		case *buttonValue:
		}
	}
	return sb.String()
}

func (om *OptionsMap) xboardFeatures() string {
	var sb strings.Builder
	for _, o := range om.ordered() {
		if o.name == "Protocol" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "feature option=\"%s -%s", o.name, o.TypeName())
		switch val := o.value.(type) {
		case *stringValue:
			fmt.Fprintf(&sb, " %s", val.def)
		case *checkValue:
			n := 0
			if val.def {
				n = 1
			}
			fmt.Fprintf(&sb, " %d", n)
		case *comboValue:
			fmt.Fprintf(&sb, " %s", val.def)
			for _, c := range val.choices {
				if c != val.def {
					fmt.Fprintf(&sb, " /// %s", c)
				}
			}
		case *spinValue:
			fmt.Fprintf(&sb, " %d %d %d", int(val.def), val.min, val.max)
		case *buttonValue:
		}
		sb.WriteByte('"')
	}
	return sb.String()
}
