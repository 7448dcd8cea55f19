package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/gomail.v2"
)

var ErrInvalidMessage = errors.New("invalid message")

// Attachment is a file already loaded into memory
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is a fully rendered email
type Message struct {
	From        string
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Body        string
	IsHTML      bool
	Attachments []Attachment
}

// Result is the provider's acknowledgement of a send
type Result struct {
	MessageID string
}

func (m Message) validate() error {
	if len(m.To) == 0 {
		return fmt.Errorf("%w: no recipients", ErrInvalidMessage)
	}
	for _, a := range m.Attachments {
		if a.Filename == "" {
			return fmt.Errorf("%w: attachment without filename", ErrInvalidMessage)
		}
	}
	return nil
}

// BuildMIME renders msg as an RFC 5322 message: a single text part, or
// multipart/mixed when attachments are present.
func BuildMIME(msg Message) ([]byte, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	if msg.From != "" {
		m.SetHeader("From", msg.From)
	}
	m.SetHeader("To", msg.To...)
	if len(msg.Cc) > 0 {
		m.SetHeader("Cc", msg.Cc...)
	}
	m.SetHeader("Subject", msg.Subject)

	contentType := "text/plain"
	if msg.IsHTML {
		contentType = "text/html"
	}
	m.SetBody(contentType, msg.Body)

	for _, a := range msg.Attachments {
		data := a.Data
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {a.ContentType},
			}))
		}
		m.Attach(a.Filename, settings...)
	}

	var buf bytes.Buffer
	// gomail never writes Bcc; the provider needs it in the raw message and strips it on delivery.
	if len(msg.Bcc) > 0 {
		buf.WriteString("Bcc: " + strings.Join(msg.Bcc, ", ") + "\r\n")
	}
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to build mime message: %w", err)
	}
	return buf.Bytes(), nil
}
