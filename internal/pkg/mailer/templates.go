package mailer

import (
	"bytes"
	"fmt"
	"text/template"
)

type emailTemplate struct {
	subject *template.Template
	body    *template.Template
}

var templates = map[Kind]emailTemplate{
	KindTeamNotification: {
		subject: template.Must(template.New("team_subject").Parse(`New Trip Planning Request from {{.from_name}}`)),
		body: template.Must(template.New("team_body").Parse(`Name: {{.from_name}}
Email: {{.from_email}}
Phone: {{.phone}}
Destination: {{.destination}}
Travel Dates: {{.travel_dates}}
Travelers: {{.travelers}}
Budget: {{.budget}}
Trip Type: {{.trip_type}}
Requirements: {{.requirements}}
Additional Notes: {{.notes}}
`)),
	},
	KindCustomerConfirmation: {
		subject: template.Must(template.New("customer_subject").Parse(`We received your trip request, {{.from_name}}`)),
		body: template.Must(template.New("customer_body").Parse(`Hi {{.from_name}},

Thank you for planning your trip with us. Our travel team will get back to you shortly.

Destination: {{.destination}}
Travel Dates: {{.travel_dates}}
Travelers: {{.travelers}}
Trip Type: {{.trip_type}}

You can also reach us on WhatsApp for a faster reply.
`)),
	},
}

func render(email Email) (string, string, error) {
	tmpl, ok := templates[email.Kind]
	if !ok {
		return "", "", fmt.Errorf("no template for email kind %q", email.Kind)
	}

	var subject, body bytes.Buffer

	if err := tmpl.subject.Execute(&subject, email.Params); err != nil {
		return "", "", fmt.Errorf("render subject: %w", err)
	}

	if err := tmpl.body.Execute(&body, email.Params); err != nil {
		return "", "", fmt.Errorf("render body: %w", err)
	}

	return subject.String(), body.String(), nil
}
