package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrIncorrectField = errors.New("profile field must be name=value")

// User is a chat user. Username is the lookup key; every other field the
// server sends is kept verbatim in Fields so an update posts it back
// unchanged.
type User struct {
	Username string
	Fields   map[string]json.RawMessage
}

const usernameKey = "username"

func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(u.Fields)+1)
	for k, v := range u.Fields {
		out[k] = v
	}
	name, err := json.Marshal(u.Username)
	if err != nil {
		return nil, err
	}
	out[usernameKey] = name
	return json.Marshal(out)
}

func (u *User) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*u = User{}
	if name, ok := raw[usernameKey]; ok {
		if err := json.Unmarshal(name, &u.Username); err != nil {
			return fmt.Errorf("user: username: %w", err)
		}
		delete(raw, usernameKey)
	}
	if len(raw) > 0 {
		u.Fields = raw
	}
	return nil
}

// Field returns the named profile field as text: JSON strings are unquoted,
// anything else is returned as raw JSON.
func (u User) Field(name string) (string, bool) {
	v, ok := u.Fields[name]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, true
	}
	return string(v), true
}

// SetField stores value under name as a JSON string.
func (u *User) SetField(name, value string) {
	if u.Fields == nil {
		u.Fields = make(map[string]json.RawMessage)
	}
	b, _ := json.Marshal(value)
	u.Fields[name] = b
}

// FieldNames returns profile field names in sorted order.
func (u User) FieldNames() []string {
	names := make([]string, 0, len(u.Fields))
	for k := range u.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ProfileField is a single name=value edit typed by the user.
type ProfileField struct {
	Name  string
	Value string
}

// ProfileFieldsFromLines parses "name=value" lines, splitting at the first
// '='. Whitespace is kept as typed; a line without '=' or with an empty name
// fails. The username can't be edited this way.
func ProfileFieldsFromLines(lines []string) ([]ProfileField, error) {
	fields := make([]ProfileField, len(lines))
	for n, line := range lines {
		name, value, ok := strings.Cut(line, "=")
		if !ok || name == "" {
			return nil, ErrIncorrectField
		}
		if strings.TrimSpace(name) == usernameKey {
			return nil, fmt.Errorf("%w: %s is read-only", ErrIncorrectField, usernameKey)
		}
		fields[n] = ProfileField{Name: name, Value: value}
	}
	return fields, nil
}
