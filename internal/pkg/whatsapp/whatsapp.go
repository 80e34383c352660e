// Package whatsapp builds click-to-chat links with a pre-filled message.
package whatsapp

import (
	"net/url"
	"strings"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/utils"
)

const baseURL = "https://wa.me/"

// componentEscaper turns url.QueryEscape output into URI-component encoding:
// spaces as %20 and the marks !'()* left as is.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Message accumulates WhatsApp-formatted lines. Labels are rendered in bold.
type Message struct {
	b strings.Builder
}

func NewMessage(title string) *Message {
	m := &Message{}
	m.b.WriteString("*" + title + "*\n\n")

	return m
}

// Field adds a "*Label:* value" line. Empty values are skipped.
func (m *Message) Field(label, value string) *Message {
	if strings.TrimSpace(value) == "" {
		return m
	}

	m.b.WriteString("*" + label + ":* " + value + "\n")

	return m
}

func (m *Message) String() string {
	return m.b.String()
}

// DeepLink returns the wa.me link that opens a chat with phone and text filled in.
// Non-digits are stripped from the phone number.
func DeepLink(phone, text string) string {
	link := baseURL + utils.DigitsOnly(phone)
	if text == "" {
		return link
	}

	return link + "?text=" + componentEscaper.Replace(url.QueryEscape(text))
}
