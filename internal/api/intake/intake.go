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

// Package intake serves the public inquiry, application and contact forms
// and the admin endpoints that read them.
package intake

import (
	"errors"
	"log/slog"
	"time"

	"github.com/retr0h/caregate/internal/api/intake/gen"
	"github.com/retr0h/caregate/internal/records"
)

// ensure that we've conformed to the `StrictServerInterface` with a compile-time check
var _ gen.StrictServerInterface = (*Intake)(nil)

// New factory to create a new instance. A nil phi logger disables manual
// audit entries.
func New(
	logger *slog.Logger,
	inquiries records.Repository[Inquiry],
	applications records.Repository[Application],
	contacts records.Repository[Contact],
	phi PHILogger,
) *Intake {
	return &Intake{
		logger:       logger,
		inquiries:    inquiries,
		applications: applications,
		contacts:     contacts,
		phi:          phi,
		now:          time.Now,
	}
}

// storeFailed logs a repository error and returns the client message.
func (i *Intake) storeFailed(
	msg string,
	err error,
	attrs ...any,
) *string {
	i.logger.Error(
		msg,
		append([]any{slog.String("error", err.Error())}, attrs...)...,
	)

	return &msg
}

func notFound(
	err error,
) bool {
	return errors.Is(err, records.ErrNotFound)
}
