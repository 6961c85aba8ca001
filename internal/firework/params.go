package firework

import (
	"fmt"
	"math"
	"strings"
)

type ParamType uint8

const (
	ParamFloat ParamType = iota
	ParamInt
	ParamBool
)

func (t ParamType) String() string {
	switch t {
	case ParamFloat:
		return "float"
	case ParamInt:
		return "int"
	case ParamBool:
		return "bool"
	}
	return fmt.Sprintf("ParamType(%d)", uint8(t))
}

// Value is a tagged parameter value. The zero Value is Float(0).
type Value struct {
	Type ParamType
	f    float64
	i    int
	b    bool
}

func FloatValue(f float64) Value { return Value{Type: ParamFloat, f: f} }
func IntValue(i int) Value       { return Value{Type: ParamInt, i: i} }
func BoolValue(b bool) Value     { return Value{Type: ParamBool, b: b} }

// Float coerces the value to float64. true is 1.
func (v Value) Float() float64 {
	switch v.Type {
	case ParamInt:
		return float64(v.i)
	case ParamBool:
		if v.b {
			return 1
		}
		return 0
	}
	return v.f
}

// Int coerces the value to int, rounding floats to nearest.
func (v Value) Int() int {
	switch v.Type {
	case ParamFloat:
		if math.IsNaN(v.f) {
			return 0
		}
		return int(math.Round(v.f))
	case ParamBool:
		if v.b {
			return 1
		}
		return 0
	}
	return v.i
}

// Bool coerces the value; numbers are true at >= 0.5.
func (v Value) Bool() bool {
	switch v.Type {
	case ParamFloat:
		return v.f >= 0.5
	case ParamInt:
		return v.i >= 1
	}
	return v.b
}

func (v Value) String() string {
	switch v.Type {
	case ParamInt:
		return fmt.Sprintf("%d", v.i)
	case ParamBool:
		return fmt.Sprintf("%t", v.b)
	}
	return fmt.Sprintf("%g", v.f)
}

// ParamSpec describes one tunable for UI generation.
type ParamSpec struct {
	Key         string
	DisplayName string
	Description string
	Type        ParamType
	Min         float64
	Max         float64
	Default     float64
	Step        float64
}

// params binds ParamSpecs to style fields.
type params struct {
	specs  []ParamSpec
	floats map[string]*float64
	ints   map[string]*int
	bools  map[string]*bool
}

func (ps *params) spec(key string) (ParamSpec, bool) {
	for _, s := range ps.specs {
		if strings.EqualFold(s.Key, key) {
			return s, true
		}
	}
	return ParamSpec{}, false
}

func (ps *params) bindFloat(dst *float64, s ParamSpec) {
	if ps.floats == nil {
		ps.floats = make(map[string]*float64)
	}
	s.Type = ParamFloat
	*dst = s.Default
	ps.floats[s.Key] = dst
	ps.specs = append(ps.specs, s)
}

func (ps *params) bindInt(dst *int, s ParamSpec) {
	if ps.ints == nil {
		ps.ints = make(map[string]*int)
	}
	s.Type = ParamInt
	if s.Step == 0 {
		s.Step = 1
	}
	*dst = int(s.Default)
	ps.ints[s.Key] = dst
	ps.specs = append(ps.specs, s)
}

func (ps *params) bindBool(dst *bool, s ParamSpec) {
	if ps.bools == nil {
		ps.bools = make(map[string]*bool)
	}
	s.Type = ParamBool
	s.Min, s.Max, s.Step = 0, 1, 1
	*dst = s.Default >= 0.5
	ps.bools[s.Key] = dst
	ps.specs = append(ps.specs, s)
}

// Parameters returns a copy of the declared schema.
func (ps *params) Parameters() []ParamSpec {
	out := make([]ParamSpec, len(ps.specs))
	copy(out, ps.specs)
	return out
}

// SetParameter converts v to the declared type and clamps it into range.
// Unknown keys are ignored and reported as false.
func (ps *params) SetParameter(key string, v Value) bool {
	s, ok := ps.spec(key)
	if !ok {
		return false
	}
	switch s.Type {
	case ParamFloat:
		f := v.Float()
		if math.IsNaN(f) {
			return false
		}
		*ps.floats[s.Key] = clampF(f, s.Min, s.Max)
	case ParamInt:
		*ps.ints[s.Key] = int(clampF(float64(v.Int()), s.Min, s.Max))
	case ParamBool:
		*ps.bools[s.Key] = v.Bool()
	}
	return true
}

// GetParameter returns the current value; unknown keys yield (Value{}, false).
func (ps *params) GetParameter(key string) (Value, bool) {
	s, ok := ps.spec(key)
	if !ok {
		return Value{}, false
	}
	switch s.Type {
	case ParamInt:
		return IntValue(*ps.ints[s.Key]), true
	case ParamBool:
		return BoolValue(*ps.bools[s.Key]), true
	}
	return FloatValue(*ps.floats[s.Key]), true
}
