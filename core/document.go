package core

import (
	"github.com/tidwall/gjson"
)

// Document is a serialized EventCollection as persisted under EventsKey.
type Document string

// String implements fmt.Stringer.
func (d Document) String() string { return string(d) }

// Valid reports whether the document is well-formed JSON.
func (d Document) Valid() bool { return gjson.Valid(string(d)) }

// Len returns the number of recorded events.
func (d Document) Len() int {
	n := 0
	gjson.Parse(string(d)).ForEach(func(_, _ gjson.Result) bool {
		n++
		return true
	})
	return n
}

// Names lists the recorded event names in document order.
func (d Document) Names() []string {
	names := []string{}
	gjson.Parse(string(d)).ForEach(func(key, _ gjson.Result) bool {
		names = append(names, key.String())
		return true
	})
	return names
}

// Has reports whether an event named name is recorded.
func (d Document) Has(name string) bool {
	return d.event(name).Exists()
}

// Field returns a property of the named event.
func (d Document) Field(name, property string) (gjson.Result, bool) {
	ev := d.event(name)
	if !ev.Exists() {
		return gjson.Result{}, false
	}
	v := ev.Get(gjson.Escape(property))
	return v, v.Exists()
}

// Query evaluates a raw gjson path against the document.
func (d Document) Query(path string) gjson.Result {
	return gjson.Get(string(d), path)
}

// Decode parses the document into an EventCollection.
func (d Document) Decode() (EventCollection, error) {
	return DecodeEventCollection(string(d))
}

func (d Document) event(name string) gjson.Result {
	return gjson.Get(string(d), gjson.Escape(name))
}
