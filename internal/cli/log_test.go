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
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LogTestSuite struct {
	suite.Suite

	buf      *bytes.Buffer
	logger   *slog.Logger
	exitCode int
	restore  func(int)
}

func (s *LogTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.logger = slog.New(slog.NewJSONHandler(s.buf, nil))
	s.exitCode = -1
	s.restore = osExit
	osExit = func(code int) { s.exitCode = code }
}

func (s *LogTestSuite) TearDownTest() {
	osExit = s.restore
}

func (s *LogTestSuite) TestLogFatal() {
	tests := []struct {
		name    string
		msg     string
		err     error
		kvPairs []any
		want    map[string]any
		absent  []string
	}{
		{
			name: "error is logged under the error key",
			msg:  "failed to open audit bucket",
			err:  errors.New("nats: no servers available"),
			want: map[string]any{
				"msg":   "failed to open audit bucket",
				"level": "ERROR",
				"error": "nats: no servers available",
			},
		},
		{
			name:   "nil error omits the error key",
			msg:    "security.signing_key is required",
			want:   map[string]any{"msg": "security.signing_key is required"},
			absent: []string{"error"},
		},
		{
			name:    "context pairs follow the error",
			msg:     "failed to read config",
			err:     errors.New("yaml: line 3"),
			kvPairs: []any{"configFile", "/etc/caregate/caregate.yaml"},
			want: map[string]any{
				"error":      "yaml: line 3",
				"configFile": "/etc/caregate/caregate.yaml",
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.buf.Reset()

			LogFatal(s.logger, tt.msg, tt.err, tt.kvPairs...)

			s.Equal(1, s.exitCode)

			var line map[string]any
			s.Require().NoError(json.Unmarshal(s.buf.Bytes(), &line))
			for k, v := range tt.want {
				s.Equal(v, line[k], k)
			}
			for _, k := range tt.absent {
				s.NotContains(line, k)
			}
		})
	}
}

func TestLogTestSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}
