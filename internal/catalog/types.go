package catalog

import "strconv"

type ValueKind int

const (
	// ValueEmpty is the placeholder for data the backend could not provide.
	ValueEmpty ValueKind = iota
	ValueText
	ValueNumber
)

// Value is a single record cell: a categorical string, a resolved metric
// number, or the empty placeholder.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
}

var EmptyValue = Value{}

func TextValue(s string) Value {
	return Value{Kind: ValueText, Text: s}
}

func NumberValue(f float64) Value {
	return Value{Kind: ValueNumber, Number: f}
}

func (v Value) IsEmpty() bool {
	return v.Kind == ValueEmpty
}

func (v Value) String() string {
	switch v.Kind {
	case ValueText:
		return v.Text
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Record maps header names to resolved values. It always contains an entry
// for every header declared for its type, plus the Type meta header.
type Record map[string]Value

// Type returns the benchmark type the record belongs to.
func (r Record) Type() string {
	return r[HeaderType].Text
}

// AlarmIndex maps measurable header names to the console URIs of alarms
// currently firing on that header's metric. A resolved header is always
// present, with an empty slice when nothing fires.
type AlarmIndex map[string][]string

// Entry pairs one benchmark record with its alarm index.
type Entry struct {
	Record Record
	Alarms AlarmIndex
}
