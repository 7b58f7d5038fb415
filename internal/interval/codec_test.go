package interval

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/akmistry/timeintervals/internal/temporal"
)

func TestMarshalJSON(t *testing.T) {
	i, err := ParseInstants("2018-01-01T00:00", "2019-01-01T00:00", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		v   any
		exp string
	}{
		{i, `{"start":"2018-01-01T00:00:00Z","end":"2019-01-01T00:00:00Z"}`},
		{dates("2018-01-01", "2018-12-31"), `{"start":"2018-01-01","end":"2018-12-31"}`},
		{UnboundedDates(), `null`},
		{UnboundedInstants(), `null`},
		{UnboundedDateTimes(), `null`},
		{(*DateInterval)(nil), `null`},
		{struct {
			Valid DateInterval `json:"valid"`
		}{dates("2018-01-01", "2018-01-01")}, `{"valid":{"start":"2018-01-01","end":"2018-01-01"}}`},
	}
	for _, tc := range tests {
		b, err := json.Marshal(tc.v)
		if err != nil {
			t.Errorf("Marshal(%v) unexpected error %v", tc.v, err)
			continue
		}
		if string(b) != tc.exp {
			t.Errorf("Marshal(%v) %s != %s", tc.v, b, tc.exp)
		}
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		json string
		exp  DateInterval
	}{
		{`{"start":"2018-01-01","end":"2018-12-31"}`, dates("2018-01-01", "2018-12-31")},
		{`{"start":"2018-01-01"}`, MustNew[civil.Date, temporal.Dates](date("2018-01-01"), temporal.MaxDate)},
		{`{"end":"2018-12-31"}`, MustNew[civil.Date, temporal.Dates](temporal.MinDate, date("2018-12-31"))},
		{`{"start":null,"end":"2018-12-31"}`, MustNew[civil.Date, temporal.Dates](temporal.MinDate, date("2018-12-31"))},
		{`{}`, UnboundedDates()},
		{`null`, UnboundedDates()},
	}
	for _, tc := range tests {
		var i DateInterval
		err := json.Unmarshal([]byte(tc.json), &i)
		if err != nil {
			t.Errorf("Unmarshal(%s) unexpected error %v", tc.json, err)
			continue
		}
		if i != tc.exp {
			t.Errorf("Unmarshal(%s) %v != %v", tc.json, i, tc.exp)
		}
	}

	var i InstantInterval
	err := json.Unmarshal([]byte(`{"start":"2018-01-01T00:00:00Z","end":"2019-01-01T00:00:00Z"}`), &i)
	if err != nil || i != instants("2018-01-01T00:00:00Z", "2019-01-01T00:00:00Z") {
		t.Errorf("Unmarshal instant interval (%v, %v)", i, err)
	}

	var odt OffsetDateTimeInterval
	err = json.Unmarshal([]byte(`{"start":"2018-01-01T00:00:00+01:00"}`), &odt)
	if err != nil || odt.Start().Offset != 3600 || odt.End() != temporal.MaxOffsetDateTime {
		t.Errorf("Unmarshal offset interval (%v, %v)", odt, err)
	}
}

func TestUnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		json   string
		expErr error
	}{
		{`{"start":"2018-12-31","end":"2018-01-01"}`, ErrInvalidRange},
		{`{"start":"2018-13-01"}`, temporal.ErrParse},
		{`{"end":"1960-01-01"}`, ErrInvalidRange},
	}
	for _, tc := range tests {
		var i DateInterval
		err := json.Unmarshal([]byte(tc.json), &i)
		if !errors.Is(err, tc.expErr) {
			t.Errorf("Unmarshal(%s) error %v is not %v", tc.json, err, tc.expErr)
		}
	}

	var i DateInterval
	if err := json.Unmarshal([]byte(`{"start":1}`), &i); err == nil {
		t.Errorf("Unmarshal with numeric start: expected error")
	}
}

func TestStructValue(t *testing.T) {
	in := dates("2018-01-01", "2018-12-31")
	v, err := in.ToValue()
	if err != nil {
		t.Fatal(err)
	}
	fields := v.GetStructValue().GetFields()
	if fields["start"].GetStringValue() != "2018-01-01" || fields["end"].GetStringValue() != "2018-12-31" {
		t.Errorf("ToValue(%v) fields %v", in, fields)
	}
	out, err := FromValue[civil.Date, temporal.Dates](v)
	if err != nil || out != in {
		t.Errorf("FromValue (%v, %v) != %v", out, err, in)
	}

	v, err = UnboundedDates().ToValue()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.GetKind().(*structpb.Value_NullValue); !ok {
		t.Errorf("unbounded ToValue kind %T", v.GetKind())
	}
	for _, null := range []*structpb.Value{nil, v} {
		out, err := FromValue[civil.Date, temporal.Dates](null)
		if err != nil || out != UnboundedDates() {
			t.Errorf("FromValue(%v) (%v, %v)", null, out, err)
		}
	}

	partial, _ := structpb.NewStruct(map[string]any{"end": "2018-12-31"})
	out, err = FromValue[civil.Date, temporal.Dates](structpb.NewStructValue(partial))
	if err != nil || out.Start() != temporal.MinDate {
		t.Errorf("FromValue(partial) (%v, %v)", out, err)
	}

	bad, _ := structpb.NewStruct(map[string]any{"start": 12.0})
	if _, err := FromValue[civil.Date, temporal.Dates](structpb.NewStructValue(bad)); !errors.Is(err, temporal.ErrParse) {
		t.Errorf("FromValue(numeric start) error %v is not ErrParse", err)
	}
	if _, err := FromValue[civil.Date, temporal.Dates](structpb.NewStringValue("2018")); !errors.Is(err, temporal.ErrParse) {
		t.Errorf("FromValue(string) error %v is not ErrParse", err)
	}
}
