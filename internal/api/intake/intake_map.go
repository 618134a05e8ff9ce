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
	"github.com/retr0h/caregate/internal/api/intake/gen"
	"github.com/retr0h/caregate/internal/records"
)

func inquiryFromRequest(
	body gen.InquiryRequest,
) Inquiry {
	return Inquiry{
		Name:          body.Name,
		Email:         body.Email,
		Phone:         value(body.Phone),
		ZipCode:       value(body.ZipCode),
		CareRecipient: value(body.CareRecipient),
		CareNeeds:     value(body.CareNeeds),
		Message:       value(body.Message),
		Status:        StatusNew,
	}
}

func applicationFromRequest(
	body gen.ApplicationRequest,
) Application {
	app := Application{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Email:        body.Email,
		Phone:        body.Phone,
		ZipCode:      value(body.ZipCode),
		Position:     value(body.Position),
		Availability: value(body.Availability),
	}
	if body.YearsExperience != nil {
		app.YearsExperience = *body.YearsExperience
	}
	if body.Certifications != nil {
		app.Certifications = *body.Certifications
	}

	return app
}

func inquiryToGen(
	rec records.Record[Inquiry],
) gen.InquiryRecord {
	in := rec.Data
	out := gen.Inquiry{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         optional(in.Phone),
		ZipCode:       optional(in.ZipCode),
		CareRecipient: optional(in.CareRecipient),
		CareNeeds:     optional(in.CareNeeds),
		Message:       optional(in.Message),
		Status:        in.Status,
	}

	if len(in.Replies) > 0 {
		replies := make([]gen.Reply, 0, len(in.Replies))
		for _, r := range in.Replies {
			reply := gen.Reply{
				Message: r.Message,
				By:      optional(r.By),
			}
			if !r.SentAt.IsZero() {
				sentAt := r.SentAt
				reply.SentAt = &sentAt
			}
			replies = append(replies, reply)
		}
		out.Replies = &replies
	}

	return gen.InquiryRecord{
		Id:        rec.ID,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		Data:      out,
	}
}

func applicationToGen(
	rec records.Record[Application],
) gen.ApplicationRecord {
	in := rec.Data
	out := gen.Application{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		ZipCode:         optional(in.ZipCode),
		Position:        optional(in.Position),
		YearsExperience: in.YearsExperience,
		Availability:    optional(in.Availability),
	}
	if len(in.Certifications) > 0 {
		certs := in.Certifications
		out.Certifications = &certs
	}

	return gen.ApplicationRecord{
		Id:        rec.ID,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		Data:      out,
	}
}

func value(
	s *string,
) string {
	if s == nil {
		return ""
	}

	return *s
}

func optional(
	s string,
) *string {
	if s == "" {
		return nil
	}

	return &s
}
