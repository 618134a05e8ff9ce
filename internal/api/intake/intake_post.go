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
	"context"

	"github.com/retr0h/caregate/internal/api/intake/gen"
	"github.com/retr0h/caregate/internal/validation"
)

// PostInquiry stores a care inquiry.
func (i *Intake) PostInquiry(
	ctx context.Context,
	request gen.PostInquiryRequestObject,
) (gen.PostInquiryResponseObject, error) {
	if errMsg, ok := validation.Struct(request.Body); !ok {
		return gen.PostInquiry400JSONResponse{Error: &errMsg}, nil
	}

	rec, err := i.inquiries.Create(ctx, inquiryFromRequest(*request.Body))
	if err != nil {
		return gen.PostInquiry500JSONResponse{
			Error: i.storeFailed("failed to store inquiry", err),
		}, nil
	}

	return gen.PostInquiry201JSONResponse{
		Id:      rec.ID,
		Message: "Thank you, a care coordinator will contact you shortly.",
	}, nil
}

// PostApplication stores a caregiver application.
func (i *Intake) PostApplication(
	ctx context.Context,
	request gen.PostApplicationRequestObject,
) (gen.PostApplicationResponseObject, error) {
	if errMsg, ok := validation.Struct(request.Body); !ok {
		return gen.PostApplication400JSONResponse{Error: &errMsg}, nil
	}

	rec, err := i.applications.Create(ctx, applicationFromRequest(*request.Body))
	if err != nil {
		return gen.PostApplication500JSONResponse{
			Error: i.storeFailed("failed to store application", err),
		}, nil
	}

	return gen.PostApplication201JSONResponse{
		Id:      rec.ID,
		Message: "Thank you for applying, our recruiting team will be in touch.",
	}, nil
}

// PostContact stores a contact message.
func (i *Intake) PostContact(
	ctx context.Context,
	request gen.PostContactRequestObject,
) (gen.PostContactResponseObject, error) {
	if errMsg, ok := validation.Struct(request.Body); !ok {
		return gen.PostContact400JSONResponse{Error: &errMsg}, nil
	}

	body := request.Body
	rec, err := i.contacts.Create(ctx, Contact{
		Name:    body.Name,
		Email:   body.Email,
		Subject: value(body.Subject),
		Message: body.Message,
	})
	if err != nil {
		return gen.PostContact500JSONResponse{
			Error: i.storeFailed("failed to store contact message", err),
		}, nil
	}

	return gen.PostContact201JSONResponse{
		Id:      rec.ID,
		Message: "Thank you for reaching out.",
	}, nil
}
