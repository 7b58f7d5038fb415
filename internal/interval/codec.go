package interval

import (
	"bytes"
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/akmistry/timeintervals/internal/temporal"
)

const (
	startField = "start"
	endField   = "end"
)

// Intervals are encoded as a two-field object, {"start": ..., "end": ...},
// holding ISO-8601 literals. The unbounded interval is encoded as null. When
// decoding, a missing field stands for the domain's Min or Max.

type wireInterval struct {
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

func (i Interval[T, D]) MarshalJSON() ([]byte, error) {
	if i.IsUnbounded() {
		return []byte("null"), nil
	}
	var d D
	start, end := d.Format(i.start), d.Format(i.end)
	return json.Marshal(wireInterval{Start: &start, End: &end})
}

func (i *Interval[T, D]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*i = Unbounded[T, D]()
		return nil
	}

	var w wireInterval
	err := json.Unmarshal(data, &w)
	if err != nil {
		return fmt.Errorf("decoding interval: %w", err)
	}
	parsed, err := fromFields[T, D](w.Start, w.End)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// ToValue converts i into a protobuf struct value, or a null value if i is
// unbounded.
func (i Interval[T, D]) ToValue() (*structpb.Value, error) {
	if i.IsUnbounded() {
		return structpb.NewNullValue(), nil
	}
	var d D
	s, err := structpb.NewStruct(map[string]any{
		startField: d.Format(i.start),
		endField:   d.Format(i.end),
	})
	if err != nil {
		return nil, err
	}
	return structpb.NewStructValue(s), nil
}

// FromValue is the inverse of ToValue. A nil or null value decodes to the
// unbounded interval.
func FromValue[T any, D Domain[T]](v *structpb.Value) (Interval[T, D], error) {
	switch k := v.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return Unbounded[T, D](), nil
	case *structpb.Value_StructValue:
		fields := k.StructValue.GetFields()
		start, err := stringField(fields, startField)
		if err != nil {
			return Interval[T, D]{}, err
		}
		end, err := stringField(fields, endField)
		if err != nil {
			return Interval[T, D]{}, err
		}
		return fromFields[T, D](start, end)
	default:
		return Interval[T, D]{}, fmt.Errorf("%w: interval value of kind %T", temporal.ErrParse, k)
	}
}

func stringField(fields map[string]*structpb.Value, name string) (*string, error) {
	v, ok := fields[name]
	if !ok {
		return nil, nil
	}
	switch k := v.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_StringValue:
		return &k.StringValue, nil
	}
	return nil, fmt.Errorf("%w: interval field %q is not a string", temporal.ErrParse, name)
}

func fromFields[T any, D Domain[T]](start, end *string) (Interval[T, D], error) {
	var d D
	s, e := d.Min(), d.Max()
	var err error
	if start != nil {
		s, err = d.Parse(*start)
		if err != nil {
			return Interval[T, D]{}, err
		}
	}
	if end != nil {
		e, err = d.Parse(*end)
		if err != nil {
			return Interval[T, D]{}, err
		}
	}
	return New[T, D](s, e)
}
