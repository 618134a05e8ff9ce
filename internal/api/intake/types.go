// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.
package intake

import (
	"log/slog"
	"time"

	"github.com/retr0h/caregate/internal/audit"
	"github.com/retr0h/caregate/internal/records"
)

// Inquiry statuses.
const (
	StatusNew     = "new"
	StatusReplied = "replied"
)

// Inquiry is a care request from a prospective client or family member.
type Inquiry struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone,omitempty"`
	ZipCode       string  `json:"zip_code,omitempty"`
	CareRecipient string  `json:"care_recipient,omitempty"`
	CareNeeds     string  `json:"care_needs,omitempty"`
	Message       string  `json:"message,omitempty"`
	Status        string  `json:"status"`
	Replies       []Reply `json:"replies,omitempty"`
}

// Reply is a back-office response to an inquiry.
type Reply struct {
	Message string    `json:"message"`
	By      string    `json:"by,omitempty"`
	SentAt  time.Time `json:"sent_at,omitempty"`
}

// Application is a caregiver job application.
type Application struct {
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	ZipCode         string   `json:"zip_code,omitempty"`
	Position        string   `json:"position,omitempty"`
	YearsExperience int      `json:"years_experience"`
	Certifications  []string `json:"certifications,omitempty"`
	Availability    string   `json:"availability,omitempty"`
}

// Contact is a general message from the contact page.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// PHILogger records work on protected information beyond the request itself.
type PHILogger interface {
	LogPHIAccess(access audit.PHIAccess)
}

// Intake serves the public form endpoints and their admin views.
type Intake struct {
	logger       *slog.Logger
	inquiries    records.Repository[Inquiry]
	applications records.Repository[Application]
	contacts     records.Repository[Contact]
	phi          PHILogger
	now          func() time.Time
}
