/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/carverauto/switchprobe/pkg/checker/switchhealth"
	"github.com/carverauto/switchprobe/pkg/config"
	"github.com/carverauto/switchprobe/pkg/snmp"
)

// Version is set at build time via -ldflags "-X main.Version=...".
var Version = "dev"

var errFailedToLoadConfig = fmt.Errorf("failed to load config")

// probeConfig is the full probe configuration: the SNMP target plus the
// temperature policy. Field names line up with the JSON config file.
type probeConfig struct {
	snmp.Target
	switchhealth.Thresholds
}

// Validate implements config.Validator.
func (c *probeConfig) Validate() error {
	if err := c.Target.Validate(); err != nil {
		return err
	}

	return c.Thresholds.Validate()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout).ExitCode())
}

// run executes the root command and maps its outcome to a severity.
// Invocations cobra answers itself (--help, --version) are not probe runs
// and report OK; only real failures report UNKNOWN.
func run(args []string, out io.Writer) switchhealth.Severity {
	severity := switchhealth.SeverityOK

	cmd := newRootCommand(&severity)
	cmd.SetArgs(args)
	cmd.SetOut(out)

	if err := cmd.Execute(); err != nil {
		log.Printf("Fatal error: %v", err)

		return switchhealth.SeverityUnknown
	}

	return severity
}

func newRootCommand(severity *switchhealth.Severity) *cobra.Command {
	var (
		flags      probeConfig
		configPath string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:           "check-switch",
		Short:         "SNMP health probe for network switches",
		Long:          `check-switch queries a switch's uptime, temperature, interfaces, PSUs and fans over SNMP and reports an aggregated health verdict. The exit code encodes the verdict: 0=OK, 1=WARNING, 2=CRITICAL, 3=UNKNOWN.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags.Timeout = config.Duration(timeout)

			cfg := flags
			if configPath != "" {
				cfg = probeConfig{}
				if err := config.LoadFile(configPath, &cfg); err != nil {
					return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
				}

				applyFlagOverrides(cmd, &cfg, &flags)
			}

			if err := config.ValidateConfig(&cfg); err != nil {
				return err
			}

			return runProbe(cmd, &cfg, severity)
		},
	}

	cmd.Flags().StringVarP(&flags.Host, "host", "H", "", "Switch hostname or IP address")
	cmd.Flags().Uint16Var(&flags.Port, "port", 161, "SNMP port")
	cmd.Flags().StringVarP(&flags.Community, "community", "C", "public", "SNMP community string")
	cmd.Flags().StringVar((*string)(&flags.Version), "snmp-version", "v2c", "SNMP version (v1, v2c)")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Second, "SNMP request timeout")
	cmd.Flags().IntVar(&flags.Retries, "retries", 3, "SNMP request retries")
	cmd.Flags().Float64VarP(&flags.WarnTemp, "warn", "w", 50, "Temperature warning threshold (°C)")
	cmd.Flags().Float64VarP(&flags.CritTemp, "crit", "c", 70, "Temperature critical threshold (°C)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to JSON config file (flags override file values)")

	return cmd
}

// applyFlagOverrides copies explicitly-set flag values over a file-loaded
// config.
func applyFlagOverrides(cmd *cobra.Command, cfg, flags *probeConfig) {
	overrides := map[string]func(){
		"host":         func() { cfg.Host = flags.Host },
		"port":         func() { cfg.Port = flags.Port },
		"community":    func() { cfg.Community = flags.Community },
		"snmp-version": func() { cfg.Target.Version = flags.Target.Version },
		"timeout":      func() { cfg.Timeout = flags.Timeout },
		"retries":      func() { cfg.Retries = flags.Retries },
		"warn":         func() { cfg.WarnTemp = flags.WarnTemp },
		"crit":         func() { cfg.CritTemp = flags.CritTemp },
	}

	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}

func runProbe(cmd *cobra.Command, cfg *probeConfig, severity *switchhealth.Severity) error {
	client, err := snmp.NewClient(&cfg.Target)
	if err != nil {
		return fmt.Errorf("failed to create SNMP client: %w", err)
	}

	defer func() {
		if err := client.Close(); err != nil {
			log.Printf("Failed to close SNMP client: %v", err)
		}
	}()

	evaluator := switchhealth.NewEvaluator(client, cfg.Thresholds)
	report := evaluator.Run(cmd.Context())

	fmt.Fprintln(cmd.OutOrStdout(), report.Render())

	*severity = report.Severity()

	return nil
}
