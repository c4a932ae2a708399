// Copyright 2017 Google Inc.
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

// Package diag provides the diagnostic collection types shared by every
// stage of the compilation pipeline, and the error taxonomy of §7 of the
// record-generation specification.
package diag

import "fmt"

// Kind enumerates the error taxonomy that a compilation stage can raise.
type Kind int

const (
	// Fatal kinds abort the whole pass.
	MalformedXML Kind = iota
	InternalInvariantViolated

	// Local kinds are attached to a single chain or record; the pass
	// continues past them.
	MalformedPragma
	UnresolvedType
	InvalidChain
	UnsupportedType
	LintError

	// ArchiveOmitted is an informational note, never fatal and never
	// counted as an error: a record's archive descriptor was
	// deliberately suppressed (spec.md §4.F.5, the >1000-element
	// array threshold).
	ArchiveOmitted
)

// Fatal reports whether k always aborts the pass regardless of
// allow-errors mode.
func (k Kind) Fatal() bool {
	return k == MalformedXML || k == InternalInvariantViolated
}

func (k Kind) String() string {
	switch k {
	case MalformedXML:
		return "MalformedXml"
	case InternalInvariantViolated:
		return "InternalInvariantViolated"
	case MalformedPragma:
		return "MalformedPragma"
	case UnresolvedType:
		return "UnresolvedType"
	case InvalidChain:
		return "InvalidChain"
	case UnsupportedType:
		return "UnsupportedType"
	case LintError:
		return "LintError"
	case ArchiveOmitted:
		return "ArchiveOmitted"
	default:
		return "Unknown"
	}
}

// Diagnostic carries one error or warning raised while compiling a single
// chain, annotated with enough source context to act on (spec.md §7:
// "resolve/merge errors attach the chain's tcname and the source XML
// path").
type Diagnostic struct {
	Kind    Kind
	Message string
	// TCName is the dotted source path of the chain or item that raised
	// the diagnostic, if known.
	TCName string
	// XMLPath is the path within the input XML tree, if known.
	XMLPath string
	// Warning is true once allow-errors mode has demoted a local error.
	Warning bool
}

func (d Diagnostic) Error() string {
	loc := d.TCName
	if loc == "" {
		loc = d.XMLPath
	}
	if loc == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Kind, loc, d.Message)
}

// Report accumulates diagnostics across a compilation pass. It is not
// safe for concurrent use; the pipeline runs as a single logical pass
// (spec.md §5).
type Report struct {
	diags       []Diagnostic
	allowErrors bool
}

// NewReport returns an empty Report. When allowErrors is true, local
// diagnostics are demoted to warnings instead of failing the pass
// (spec.md §7, "allow_errors mode").
func NewReport(allowErrors bool) *Report {
	return &Report{allowErrors: allowErrors}
}

// Add records d, demoting it to a warning first if allow-errors mode is
// enabled and d is not a fatal kind.
func (r *Report) Add(d Diagnostic) {
	if d.Kind == ArchiveOmitted {
		d.Warning = true
	} else if r.allowErrors && !d.Kind.Fatal() {
		d.Warning = true
	}
	r.diags = append(r.diags, d)
}

// Addf is a convenience wrapper around Add for simple messages.
func (r *Report) Addf(kind Kind, tcname, xmlPath, format string, args ...interface{}) {
	r.Add(Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), TCName: tcname, XMLPath: xmlPath})
}

// HasFatal reports whether any recorded diagnostic is fatal and was not
// demoted (fatal kinds are never demoted).
func (r *Report) HasFatal() bool {
	for _, d := range r.diags {
		if d.Kind.Fatal() {
			return true
		}
	}
	return false
}

// HasErrors reports whether any recorded diagnostic is a non-warning
// error, fatal or local.
func (r *Report) HasErrors() bool {
	for _, d := range r.diags {
		if !d.Warning {
			return true
		}
	}
	return false
}

// Diagnostics returns every diagnostic recorded so far, in recording
// order.
func (r *Report) Diagnostics() []Diagnostic {
	return r.diags
}

// Count returns the number of recorded diagnostics.
func (r *Report) Count() int {
	return len(r.diags)
}

// Errors is a slice of error, used internally by stages that accumulate
// plain errors before lifting them into a Report.
type Errors []error

func (e Errors) Error() string {
	return ToString([]error(e))
}

func (e Errors) String() string {
	return e.Error()
}

// NewErrs returns a slice of error with a single element err, or nil if
// err is nil.
func NewErrs(err error) Errors {
	if err == nil {
		return nil
	}
	return []error{err}
}

// AppendErr appends err to errs if it is not nil and returns the result.
func AppendErr(errs []error, err error) Errors {
	if err == nil {
		return errs
	}
	return append(errs, err)
}

// AppendErrs appends newErrs to errs and returns the result.
func AppendErrs(errs []error, newErrs []error) Errors {
	for _, e := range newErrs {
		errs = AppendErr(errs, e)
	}
	return errs
}

// ToString renders errs as a comma-joined string, skipping nil entries.
func ToString(errs []error) string {
	var out string
	first := true
	for _, e := range errs {
		if e == nil {
			continue
		}
		if !first {
			out += ", "
		}
		out += e.Error()
		first = false
	}
	return out
}
