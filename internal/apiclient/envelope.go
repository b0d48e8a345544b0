package apiclient

import (
	"bytes"
	"encoding/json"
)

// Envelope is the {code, message, data} wrapper around API responses. Presence is explicit:
// a nil Code or Message means the field was absent, and HasData separates an absent data
// field from one that is present but null or falsy.
type Envelope struct {
	Code    *int
	Message *string
	Data    json.RawMessage
	HasData bool
}

// parseEnvelope reports whether body is a JSON object carrying at least one envelope field.
func parseEnvelope(body []byte) (Envelope, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Envelope{}, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Envelope{}, false
	}

	var env Envelope
	found := false
	if raw, ok := fields["code"]; ok {
		found = true
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			if v, err := n.Int64(); err == nil {
				code := int(v)
				env.Code = &code
			}
		}
	}
	if raw, ok := fields["message"]; ok {
		found = true
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil {
			env.Message = &msg
		}
	}
	if raw, ok := fields["data"]; ok {
		found = true
		env.HasData = true
		env.Data = raw
	}
	return env, found
}

// serverMessage extracts a non-empty envelope message from an error body.
func serverMessage(body []byte) string {
	env, ok := parseEnvelope(body)
	if !ok || env.Message == nil {
		return ""
	}
	return *env.Message
}
