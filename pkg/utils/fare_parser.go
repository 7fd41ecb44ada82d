package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// FareParser turns raw fare records into validated FlightFare values
type FareParser struct {
	validate *validator.Validate
	logger   logger.Logger
}

// NewFareParser creates a new fare parser
func NewFareParser(logger logger.Logger) *FareParser {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Report validation failures under the upstream field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &FareParser{
		validate: validate,
		logger:   logger,
	}
}

// Parse converts one raw record. The returned error is always a *entity.ParseError.
func (p *FareParser) Parse(raw json.RawMessage) (*entity.FlightFare, error) {
	var record map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&record); err != nil || record == nil {
		return nil, &entity.ParseError{Reason: "record is not a JSON object", Raw: raw}
	}

	r := &recordReader{record: record, raw: raw}
	fare := &entity.FlightFare{
		FlightNumber:      strings.ToUpper(r.str(FieldFlightNumber)),
		DepartureAirport:  strings.ToUpper(r.str(FieldDepartureAirport)),
		ArrivalAirport:    strings.ToUpper(r.str(FieldArrivalAirport)),
		ArrivalCountry:    r.str(FieldArrivalCountry),
		OutboundPrice:     r.price(FieldOutboundPrice),
		ReturnPrice:       r.price(FieldReturnPrice),
		DepartureDateTime: r.timestamp(FieldDepartureDateTime),
		ArrivalDateTime:   r.timestamp(FieldArrivalDateTime),
		AirlineCode:       strings.ToUpper(r.optionalStr(FieldAirlineCode)),
	}
	if r.err != nil {
		return nil, r.err
	}

	if err := p.validate.Struct(fare); err != nil {
		return nil, validationError(err, raw)
	}

	return fare, nil
}

// ParseAll parses every record of a response, skipping the malformed ones
func (p *FareParser) ParseAll(records []json.RawMessage) ([]*entity.FlightFare, []*entity.ParseError) {
	fares := make([]*entity.FlightFare, 0, len(records))
	var rejected []*entity.ParseError

	for i, raw := range records {
		fare, err := p.Parse(raw)
		if err != nil {
			var parseErr *entity.ParseError
			if !errors.As(err, &parseErr) {
				parseErr = &entity.ParseError{Reason: err.Error(), Raw: raw}
			}
			p.logger.Warn("Skipping malformed fare record",
				"index", i,
				"field", parseErr.Field,
				"reason", parseErr.Reason,
				"record", string(raw))
			rejected = append(rejected, parseErr)
			continue
		}
		fares = append(fares, fare)
	}

	p.logger.Debug("Parsed fare records",
		"received", len(records),
		"parsed", len(fares),
		"rejected", len(rejected))

	return fares, rejected
}

// recordReader extracts typed fields and keeps the first failure
type recordReader struct {
	record map[string]interface{}
	raw    json.RawMessage
	err    *entity.ParseError
}

func (r *recordReader) fail(field, reason string) {
	if r.err == nil {
		r.err = &entity.ParseError{Field: field, Reason: reason, Raw: r.raw}
	}
}

func (r *recordReader) value(field string) (interface{}, bool) {
	v, ok := r.record[field]
	if !ok || v == nil {
		r.fail(field, "missing")
		return nil, false
	}
	return v, true
}

func (r *recordReader) str(field string) string {
	v, ok := r.value(field)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(field, fmt.Sprintf("expected a string, got %v", v))
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		r.fail(field, "missing")
	}
	return s
}

// optionalStr is like str but reads a missing field as empty
func (r *recordReader) optionalStr(field string) string {
	v, ok := r.record[field]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(field, fmt.Sprintf("expected a string, got %v", v))
		return ""
	}
	return strings.TrimSpace(s)
}

func (r *recordReader) price(field string) float64 {
	v, ok := r.value(field)
	if !ok {
		return 0
	}

	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case json.Number:
		f, err = t.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		err = fmt.Errorf("unexpected type %T", v)
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		r.fail(field, fmt.Sprintf("not a price: %v", v))
		return 0
	}
	return f
}

func (r *recordReader) timestamp(field string) time.Time {
	s := r.str(field)
	if s == "" {
		return time.Time{}
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		r.fail(field, err.Error())
		return time.Time{}
	}
	return t
}

func validationError(err error, raw json.RawMessage) *entity.ParseError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &entity.ParseError{Reason: err.Error(), Raw: raw}
	}

	fe := verrs[0]
	reason := fe.Tag()
	switch fe.Tag() {
	case "required":
		reason = "missing"
	case "len", "alpha":
		reason = fmt.Sprintf("not a 3-letter IATA code: %v", fe.Value())
	case "min", "max", "alphanum":
		reason = fmt.Sprintf("not an airline designator: %v", fe.Value())
	case "nefield":
		reason = "departure and arrival airports are the same"
	case "gte":
		reason = fmt.Sprintf("negative price: %v", fe.Value())
	case "gtefield":
		reason = "arrival is before departure"
	}
	return &entity.ParseError{Field: fe.Field(), Reason: reason, Raw: raw}
}
