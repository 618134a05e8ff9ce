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

package api

import (
	"github.com/labstack/echo/v4"

	"github.com/retr0h/caregate/internal/api/intake"
	intakeGen "github.com/retr0h/caregate/internal/api/intake/gen"
	"github.com/retr0h/caregate/internal/records"
)

// GetIntakeHandler returns the public form routes and their admin views.
// Public submissions pass the form limiter, which only runs in production.
// The last strict middleware wraps outermost, so the scope check runs first.
func (s *Server) GetIntakeHandler(
	inquiries records.Repository[intake.Inquiry],
	applications records.Repository[intake.Application],
	contacts records.Repository[intake.Contact],
) []func(e *echo.Echo) {
	var phi intake.PHILogger
	if s.recorder != nil {
		phi = s.recorder
	}

	intakeHandler := intake.New(s.logger, inquiries, applications, contacts, phi)
	limiter := s.limiter("form", s.appConfig.RateLimit.Form, !s.appConfig.IsProduction(), false)

	strictHandler := intakeGen.NewStrictHandler(
		intakeHandler,
		[]intakeGen.StrictMiddlewareFunc{
			callerMiddleware,
			func(handler intakeGen.StrictHandlerFunc, operationID string) intakeGen.StrictHandlerFunc {
				return formLimiter(handler, operationID, limiter)
			},
			func(handler intakeGen.StrictHandlerFunc, _ string) intakeGen.StrictHandlerFunc {
				return scopeMiddleware(handler, intakeGen.BearerAuthScopes)
			},
		},
	)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			intakeGen.RegisterHandlers(e, strictHandler)
		},
	}
}
