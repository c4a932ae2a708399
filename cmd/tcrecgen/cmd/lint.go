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

// newLintCmd checks a project description against a record-definition
// grammar without writing any output, reporting every LintError found
// (spec.md §4.G). "--grammar" here may name a stricter grammar than the
// one compile would otherwise fall back to, the second of the two
// distinct grammar load paths spec.md §6 allows.
func newLintCmd() *cobra.Command {
	lint := &cobra.Command{
		Use:   "lint <project.xml>",
		Short: "Check a controller-project description against a record-definition grammar.",
		Args:  cobra.ExactArgs(1),
		RunE:  runLint,
	}
	return lint
}

func runLint(cmd *cobra.Command, args []string) error {
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

	opts := optionsFromViper()
	opts.AllowErrors = true // surface every lint finding instead of stopping at the first.

	result, err := tcrecgen.Compile(in, grammar, opts)
	if err != nil && (result == nil || hasFatal(result.Report)) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitParseFailure)
		return nil
	}

	lintFailures := 0
	for _, d := range resultDiagnostics(result) {
		if d.Kind != diag.LintError {
			continue
		}
		lintFailures++
		log.Warningf("%s", d.Error())
	}

	if lintFailures > 0 {
		fmt.Fprintf(os.Stderr, "%d lint error(s) found\n", lintFailures)
		os.Exit(exitLintFailure)
	}
	return nil
}
