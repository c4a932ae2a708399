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

	"github.com/spf13/viper"

	"github.com/ctrlio/tcrecgen/genutil"
	"github.com/ctrlio/tcrecgen/lint"
)

// optionsFromViper assembles genutil.Options from the bound flags/config
// file/environment (spec.md §6, "Configuration").
func optionsFromViper() genutil.Options {
	opts := genutil.NewOptions()
	opts.AllowErrors = viper.GetBool("allow-errors")
	if n := viper.GetInt("max-name-length"); n > 0 {
		opts.MaxRecordNameLength = n
	}
	if sigil := viper.GetString("macro-character"); sigil != "" {
		opts.MacroChar = sigil[0]
	}
	return opts.WithDefaults()
}

// grammarFromViper loads the record-definition grammar named by
// "--grammar", or the built-in grammar if it is unset (spec.md §6,
// "Optional a record-definition file for grammar linting").
func grammarFromViper() (*lint.Grammar, error) {
	path := viper.GetString("grammar")
	if path == "" {
		return lint.DefaultGrammar(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening grammar file: %w", err)
	}
	defer f.Close()
	return lint.Load(f)
}
