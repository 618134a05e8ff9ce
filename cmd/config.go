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
package cmd

import (
	"encoding/json"
	"fmt"

	masker "github.com/ggwhite/go-masker/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/retr0h/caregate/internal/config"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the effective configuration",
}

// configShowCmd represents the configShow command.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration with secrets masked",
	Long: `Print the configuration after defaults, the config file and CAREGATE_*
environment variables are merged. Signing keys and passwords are masked.
`,
	Run: func(_ *cobra.Command, _ []string) {
		out, err := renderConfig(appConfig, jsonOutput)
		if err != nil {
			logFatal("failed to render config", err)
		}

		fmt.Println(out)
	},
}

// renderConfig masks the secrets in cfg and renders it as YAML or JSON.
func renderConfig(
	cfg config.Config,
	asJSON bool,
) (string, error) {
	masked, err := masker.NewMaskerMarshaler().Struct(&cfg)
	if err != nil {
		return "", fmt.Errorf("masking config: %w", err)
	}

	if asJSON {
		b, err := json.MarshalIndent(masked, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal config: %w", err)
		}

		return string(b), nil
	}

	b, err := yaml.Marshal(masked)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	return string(b), nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
