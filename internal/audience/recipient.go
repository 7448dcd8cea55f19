// Package audience resolves campaign recipients and personalizes templates for them.
package audience

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/badoux/checkmail"
)

// Kind tags which shape an audience entry had
type Kind int

const (
	KindEmailOnly Kind = iota
	KindRecord
)

// Recipient is one audience entry: either a bare address or a structured record.
type Recipient struct {
	Kind     Kind
	Email    string
	Name     string
	FullName string
	Company  string
	Position string
	Location string
	LeadID   string
	// Fields holds every key of a decoded record, including ones not modelled above
	Fields map[string]any
}

type recordJSON struct {
	Email    string          `json:"email"`
	Name     string          `json:"name,omitempty"`
	FullName string          `json:"full_name,omitempty"`
	Company  string          `json:"company,omitempty"`
	Position string          `json:"position,omitempty"`
	Location string          `json:"location,omitempty"`
	ID       json.RawMessage `json:"id,omitempty"`
	LeadID   json.RawMessage `json:"lead_id,omitempty"`
}

// EmailOnly builds a bare address entry
func EmailOnly(email string) Recipient {
	return Recipient{Kind: KindEmailOnly, Email: email}
}

// UnmarshalJSON accepts either a JSON string or an object with an email field.
func (r *Recipient) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var email string
		if err := json.Unmarshal(data, &email); err != nil {
			return err
		}
		*r = EmailOnly(email)
		return nil
	}

	var rec recordJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("audience entry is neither an address nor a record: %w", err)
	}
	fields := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return fmt.Errorf("audience entry is neither an address nor a record: %w", err)
	}
	leadID := rawID(rec.ID)
	if leadID == "" {
		leadID = rawID(rec.LeadID)
	}
	*r = Recipient{
		Kind:     KindRecord,
		Email:    rec.Email,
		Name:     rec.Name,
		FullName: rec.FullName,
		Company:  rec.Company,
		Position: rec.Position,
		Location: rec.Location,
		LeadID:   leadID,
		Fields:   fields,
	}
	return nil
}

// rawID reads a record id written as either a JSON string or a number
func rawID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return string(raw)
}

// MarshalJSON writes bare addresses as strings and records as objects.
func (r Recipient) MarshalJSON() ([]byte, error) {
	if r.Kind == KindEmailOnly {
		return json.Marshal(r.Email)
	}
	if r.Fields != nil {
		return json.Marshal(r.Fields)
	}
	rec := recordJSON{
		Email:    r.Email,
		Name:     r.Name,
		FullName: r.FullName,
		Company:  r.Company,
		Position: r.Position,
		Location: r.Location,
	}
	if r.LeadID != "" {
		id, err := json.Marshal(r.LeadID)
		if err != nil {
			return nil, err
		}
		rec.ID = id
	}
	return json.Marshal(rec)
}

// Address returns the trimmed address and whether it is a syntactically valid email.
func (r Recipient) Address() (string, bool) {
	addr := strings.TrimSpace(r.Email)
	if addr == "" {
		return "", false
	}
	if err := checkmail.ValidateFormat(addr); err != nil {
		return "", false
	}
	return addr, true
}

// DisplayName prefers name over full name
func (r Recipient) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.FullName
}

// Variables returns the placeholder values for this recipient. Bare addresses get none.
func (r Recipient) Variables() map[string]string {
	if r.Kind == KindEmailOnly {
		return nil
	}
	name := r.DisplayName()
	first := ""
	if fields := strings.Fields(name); len(fields) > 0 {
		first = fields[0]
	}
	return map[string]string{
		"lead_name":  name,
		"first_name": first,
		"company":    r.Company,
		"position":   r.Position,
		"location":   r.Location,
	}
}

// Decode parses a campaign audience array
func Decode(raw []byte) ([]Recipient, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var recipients []Recipient
	if err := json.Unmarshal(raw, &recipients); err != nil {
		return nil, fmt.Errorf("failed to decode audience: %w", err)
	}
	return recipients, nil
}

// Encode serializes an audience for storage
func Encode(recipients []Recipient) ([]byte, error) {
	if recipients == nil {
		recipients = []Recipient{}
	}
	return json.Marshal(recipients)
}
