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

// Package cmd is the cobra/viper command tree for the tcrecgen CLI: a
// thin shim over the tcrecgen library package (spec.md §6, "wrapped in a
// CLI").
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd builds the tcrecgen command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tcrecgen",
		Short: "tcrecgen compiles annotated controller-project descriptions into control-system record definitions.",
	}

	cfgFile := root.PersistentFlags().String("config", "", "Path to a config file (YAML/JSON/TOML) overriding default flag values.")
	root.PersistentFlags().String("grammar", "", "Path to a record-definition grammar file; the built-in grammar is used if unset.")
	root.PersistentFlags().Bool("allow-errors", false, "Demote local compilation errors to warnings and continue past them.")
	root.PersistentFlags().Int("max-name-length", 0, "Maximum record name length; 0 uses the built-in default.")
	root.PersistentFlags().String("macro-character", "", "Pragma macro sigil to substitute for '$' on emit; empty uses the built-in default.")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *cfgFile != "" {
			viper.SetConfigFile(*cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config file: %w", err)
			}
		}
		viper.BindPFlags(cmd.Flags())
		viper.BindPFlags(root.PersistentFlags())
		viper.AutomaticEnv()
		return nil
	}

	root.AddCommand(newCompileCmd())
	root.AddCommand(newLintCmd())

	return root
}
