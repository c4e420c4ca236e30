package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

// TimestampField is the record field stamped with the event creation time in
// Unix milliseconds.
const TimestampField = "timestamp"

// EmptyDocument is the serialized form of an empty EventCollection.
const EmptyDocument = "{}"

// EventRecord is a single recorded event: the timestamp plus caller supplied
// properties.
type EventRecord map[string]any

// NewEventRecord stamps a record with ts and copies properties verbatim.
// Properties are applied after the timestamp, so a caller supplied
// "timestamp" property overrides the stamped value.
func NewEventRecord(ts time.Time, properties map[string]any) EventRecord {
	rec := make(EventRecord, len(properties)+1)
	rec[TimestampField] = ts.UnixMilli()
	for k, v := range properties {
		rec[k] = normalizeValue(v)
	}
	return rec
}

// Timestamp returns the stamped creation time in Unix milliseconds.
func (r EventRecord) Timestamp() (int64, bool) {
	switch v := r[TimestampField].(type) {
	case int64:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// normalizeValue renders Stringer values (dates, enums, ids) through String
// unless they already know how to encode themselves. Nil pointers and
// interfaces pass through unchanged and encode as null.
func normalizeValue(v any) any {
	if rv := reflect.ValueOf(v); rv.IsValid() {
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if rv.IsNil() {
				return v
			}
		}
	}
	switch t := v.(type) {
	case json.Marshaler:
		return v
	case fmt.Stringer:
		return t.String()
	default:
		return v
	}
}

// EventCollection maps an event name to its most recent record.
type EventCollection map[string]EventRecord

// DecodeEventCollection parses a serialized collection. Blank input yields an
// empty collection. Numbers are kept as json.Number so timestamps survive a
// round trip without float rounding.
func DecodeEventCollection(doc string) (EventCollection, error) {
	coll := EventCollection{}
	if len(bytes.TrimSpace([]byte(doc))) == 0 {
		return coll, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(doc)))
	dec.UseNumber()
	if err := dec.Decode(&coll); err != nil {
		return EventCollection{}, err
	}
	if coll == nil {
		coll = EventCollection{}
	}
	return coll, nil
}

// Put inserts or overwrites the record stored under name.
func (c EventCollection) Put(name string, rec EventRecord) {
	c[name] = rec
}

// Encode serializes the collection into a Document.
func (c EventCollection) Encode() (Document, error) {
	if len(c) == 0 {
		return EmptyDocument, nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return Document(b), nil
}
