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
	"log/slog"

	"github.com/retr0h/caregate/internal/api/common"
	"github.com/retr0h/caregate/internal/api/intake/gen"
	"github.com/retr0h/caregate/internal/audit"
	"github.com/retr0h/caregate/internal/validation"
)

// GetInquiries lists inquiries, newest first.
func (i *Intake) GetInquiries(
	ctx context.Context,
	request gen.GetInquiriesRequestObject,
) (gen.GetInquiriesResponseObject, error) {
	if errMsg, ok := validation.Struct(request.Params); !ok {
		return gen.GetInquiries400JSONResponse{Error: &errMsg}, nil
	}

	limit, offset := common.PageBounds(request.Params.Limit, request.Params.Offset)

	recs, total, err := i.inquiries.List(ctx, limit, offset)
	if err != nil {
		return gen.GetInquiries500JSONResponse{
			Error: i.storeFailed("failed to list inquiries", err),
		}, nil
	}

	items := make([]gen.InquiryRecord, 0, len(recs))
	for _, rec := range recs {
		items = append(items, inquiryToGen(rec))
	}

	return gen.GetInquiries200JSONResponse{
		TotalItems: total,
		Items:      items,
	}, nil
}

// GetInquiry returns one inquiry.
func (i *Intake) GetInquiry(
	ctx context.Context,
	request gen.GetInquiryRequestObject,
) (gen.GetInquiryResponseObject, error) {
	rec, err := i.inquiries.Get(ctx, request.Id)
	if err != nil {
		if notFound(err) {
			errMsg := "inquiry not found"
			return gen.GetInquiry404JSONResponse{Error: &errMsg}, nil
		}
		return gen.GetInquiry500JSONResponse{
			Error: i.storeFailed("failed to get inquiry", err, slog.String("id", request.Id)),
		}, nil
	}

	return gen.GetInquiry200JSONResponse(inquiryToGen(rec)), nil
}

// GetApplications lists applications, newest first.
func (i *Intake) GetApplications(
	ctx context.Context,
	request gen.GetApplicationsRequestObject,
) (gen.GetApplicationsResponseObject, error) {
	if errMsg, ok := validation.Struct(request.Params); !ok {
		return gen.GetApplications400JSONResponse{Error: &errMsg}, nil
	}

	limit, offset := common.PageBounds(request.Params.Limit, request.Params.Offset)

	recs, total, err := i.applications.List(ctx, limit, offset)
	if err != nil {
		return gen.GetApplications500JSONResponse{
			Error: i.storeFailed("failed to list applications", err),
		}, nil
	}

	items := make([]gen.ApplicationRecord, 0, len(recs))
	for _, rec := range recs {
		items = append(items, applicationToGen(rec))
	}

	return gen.GetApplications200JSONResponse{
		TotalItems: total,
		Items:      items,
	}, nil
}

// GetApplication returns one application.
func (i *Intake) GetApplication(
	ctx context.Context,
	request gen.GetApplicationRequestObject,
) (gen.GetApplicationResponseObject, error) {
	rec, err := i.applications.Get(ctx, request.Id)
	if err != nil {
		if notFound(err) {
			errMsg := "application not found"
			return gen.GetApplication404JSONResponse{Error: &errMsg}, nil
		}
		return gen.GetApplication500JSONResponse{
			Error: i.storeFailed("failed to get application", err, slog.String("id", request.Id)),
		}, nil
	}

	return gen.GetApplication200JSONResponse(applicationToGen(rec)), nil
}

// PostInquiryReply records a reply to an inquiry. Sending the reply reads
// the inquirer's contact details, which is logged as its own PHI access.
func (i *Intake) PostInquiryReply(
	ctx context.Context,
	request gen.PostInquiryReplyRequestObject,
) (gen.PostInquiryReplyResponseObject, error) {
	if errMsg, ok := validation.Struct(request.Body); !ok {
		return gen.PostInquiryReply400JSONResponse{Error: &errMsg}, nil
	}

	rec, err := i.inquiries.Get(ctx, request.Id)
	if err != nil {
		if notFound(err) {
			errMsg := "inquiry not found"
			return gen.PostInquiryReply404JSONResponse{Error: &errMsg}, nil
		}
		return gen.PostInquiryReply500JSONResponse{
			Error: i.storeFailed("failed to get inquiry", err, slog.String("id", request.Id)),
		}, nil
	}

	caller := common.CallerFrom(ctx)

	inquiry := rec.Data
	inquiry.Replies = append(inquiry.Replies, Reply{
		Message: request.Body.Message,
		By:      caller.Session.UserID,
		SentAt:  i.now().UTC(),
	})
	inquiry.Status = StatusReplied

	updated, err := i.inquiries.Update(ctx, request.Id, inquiry)
	if err != nil {
		return gen.PostInquiryReply500JSONResponse{
			Error: i.storeFailed("failed to update inquiry", err, slog.String("id", request.Id)),
		}, nil
	}

	if i.phi != nil {
		i.phi.LogPHIAccess(audit.PHIAccess{
			UserID:       caller.Session.UserID,
			SessionID:    caller.Session.ID,
			Action:       audit.ActionUpdate,
			ResourceType: "inquiries",
			ResourceID:   request.Id,
			Fields:       []string{"name", "email"},
			IPAddress:    caller.IPAddress,
			UserAgent:    caller.UserAgent,
			Metadata:     map[string]string{"operation": "reply"},
		})
	}

	return gen.PostInquiryReply200JSONResponse(inquiryToGen(updated)), nil
}
