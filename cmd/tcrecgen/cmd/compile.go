// Copyright 2019 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ctrlio/tcrecgen/internal/diag"
	"github.com/ctrlio/tcrecgen/tcrecgen"
)

// Exit codes per spec.md §6: 0 success, 1 parse failure, 2
// configuration/merge failure, 3 lint failure, higher codes reserved.
const (
	exitOK = iota
	exitParseFailure
	exitConfigFailure
	exitLintFailure
)

func newCompileCmd() *cobra.Command {
	compile := &cobra.Command{
		Use:   "compile <project.xml>",
		Short: "Compile a controller-project description into a record database and archive descriptor.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompile,
	}
	compile.Flags().String("out", "", "Path to write the record-database text to (defaults to stdout).")
	compile.Flags().String("archive-out", "", "Path to write the archive-descriptor text to (omitted if unset).")
	return compile
}

func runCompile(cmd *cobra.Command, args []string) error {
	viper.BindPFlags(cmd.Flags())

	in, err := os.Open(args[0])
	if err != nil {
		os.Exit(exitParseFailure)
		return err
	}
	defer in.Close()

	grammar, err := grammarFromViper()
	if err != nil {
		return err
	}

	result, err := tcrecgen.Compile(in, grammar, optionsFromViper())
	for _, d := range resultDiagnostics(result) {
		log.Warningf("%s", d.Error())
	}
	if err != nil {
		code := exitParseFailure
		if result != nil && !hasFatal(result.Report) {
			code = exitConfigFailure
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
		return nil
	}

	if out := viper.GetString("out"); out != "" {
		if err := os.WriteFile(out, []byte(result.RecordDatabase), 0o644); err != nil {
			return fmt.Errorf("writing record database: %w", err)
		}
	} else {
		fmt.Print(result.RecordDatabase)
	}

	if archiveOut := viper.GetString("archive-out"); archiveOut != "" {
		if err := os.WriteFile(archiveOut, []byte(result.ArchiveDescriptor), 0o644); err != nil {
			return fmt.Errorf("writing archive descriptor: %w", err)
		}
	}

	return nil
}

func resultDiagnostics(result *tcrecgen.Result) []diag.Diagnostic {
	if result == nil || result.Report == nil {
		return nil
	}
	return result.Report.Diagnostics()
}

func hasFatal(report *diag.Report) bool {
	return report != nil && report.HasFatal()
}
