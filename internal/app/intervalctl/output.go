package intervalctl

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/docker/go-units"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/akmistry/timeintervals/internal/interval"
	"github.com/akmistry/timeintervals/internal/intervalmap"
)

type queryResult struct {
	point string
	value string
	found bool
}

type report[T any, D interval.Domain[T]] struct {
	entries     []intervalmap.Entry[T, D, string]
	span        *interval.Interval[T, D]
	duration    time.Duration
	hasDuration bool
	query       *queryResult
}

func (r *report[T, D]) writeText(w io.Writer) error {
	for _, e := range r.entries {
		if _, err := fmt.Fprintf(w, "%v\t%s\n", e.Interval, e.Value); err != nil {
			return err
		}
	}
	if r.span != nil {
		line := fmt.Sprintf("span\t%v", r.span)
		if r.hasDuration {
			line += fmt.Sprintf("\t(%s)", units.HumanDuration(r.duration))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintln(w, "span\t<empty>"); err != nil {
			return err
		}
	}
	if r.query != nil {
		value := "<none>"
		if r.query.found {
			value = r.query.value
		}
		if _, err := fmt.Fprintf(w, "get %s\t%s\n", r.query.point, value); err != nil {
			return err
		}
	}
	return nil
}

type jsonEntry[T any, D interval.Domain[T]] struct {
	Interval interval.Interval[T, D] `json:"interval"`
	Value    string                  `json:"value"`
}

type jsonQuery struct {
	Point string  `json:"point"`
	Value *string `json:"value"`
}

type jsonReport[T any, D interval.Domain[T]] struct {
	Entries  []jsonEntry[T, D]        `json:"entries"`
	Span     *interval.Interval[T, D] `json:"span,omitempty"`
	Duration string                   `json:"duration,omitempty"`
	Query    *jsonQuery               `json:"query,omitempty"`
}

func (r *report[T, D]) writeJSON(w io.Writer) error {
	out := jsonReport[T, D]{
		Entries: make([]jsonEntry[T, D], 0, len(r.entries)),
		Span:    r.span,
	}
	for _, e := range r.entries {
		out.Entries = append(out.Entries, jsonEntry[T, D]{Interval: e.Interval, Value: e.Value})
	}
	if r.span != nil && r.hasDuration {
		out.Duration = units.HumanDuration(r.duration)
	}
	if r.query != nil {
		out.Query = &jsonQuery{Point: r.query.point}
		if r.query.found {
			out.Query.Value = &r.query.value
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (r *report[T, D]) toStruct() (*structpb.Struct, error) {
	entries := make([]*structpb.Value, 0, len(r.entries))
	for _, e := range r.entries {
		iv, err := e.Interval.ToValue()
		if err != nil {
			return nil, err
		}
		entries = append(entries, structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"interval": iv,
				"value":    structpb.NewStringValue(e.Value),
			},
		}))
	}

	s := &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"entries": structpb.NewListValue(&structpb.ListValue{Values: entries}),
		},
	}
	if r.span != nil {
		sv, err := r.span.ToValue()
		if err != nil {
			return nil, err
		}
		s.Fields["span"] = sv
		if r.hasDuration {
			s.Fields["duration"] = structpb.NewStringValue(units.HumanDuration(r.duration))
		}
	}
	if r.query != nil {
		q := map[string]*structpb.Value{
			"point": structpb.NewStringValue(r.query.point),
			"value": structpb.NewNullValue(),
		}
		if r.query.found {
			q["value"] = structpb.NewStringValue(r.query.value)
		}
		s.Fields["query"] = structpb.NewStructValue(&structpb.Struct{Fields: q})
	}
	return s, nil
}

func (r *report[T, D]) writePrototext(w io.Writer) error {
	s, err := r.toStruct()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, prototext.MarshalOptions{Multiline: true}.Format(s))
	return err
}
