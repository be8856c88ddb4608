package logging

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(e entry)
}

type entry map[string]any

// Field creates a single key value pair based logging detail.
// It will enrich the log entry with a value in the key you gave.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(e entry) {
	if fields, ok := f.Value.(Fields); ok {
		nested := make(entry)
		fields.addTo(nested)
		e[f.Key] = nested
		return
	}
	e[f.Key] = f.Value
}

// Fields is a collection of field that you can add to your loggig record.
// It will enrich the log entry with a value in the key you gave.
type Fields map[string]any

func (fields Fields) addTo(e entry) {
	for k, v := range fields {
		Field(k, v).addTo(e)
	}
}
