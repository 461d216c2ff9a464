// SPDX-License-Identifier: Apache-2.0

package report

import (
	stderrors "errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/jllopis/parecho/pkg/errors"
)

func TestBuildFromDiagnosticError(t *testing.T) {
	err := errors.New(errors.CodeUnavailable, "vector store unreachable", stderrors.New("dial tcp")).
		WithSuggestion("verify store.path in the config").
		WithAttribute("endpoint", "localhost:6334")

	r := Build(err)
	if r.ID == "" {
		t.Errorf("expected a report id")
	}
	if r.Code != string(errors.CodeUnavailable) {
		t.Errorf("unexpected code %q", r.Code)
	}
	if !strings.Contains(r.Summary, "vector store unreachable") {
		t.Errorf("unexpected summary %q", r.Summary)
	}
	if r.Suggestion != "verify store.path in the config" {
		t.Errorf("unexpected suggestion %q", r.Suggestion)
	}
	if r.Attributes["endpoint"] != "localhost:6334" {
		t.Errorf("unexpected attributes %v", r.Attributes)
	}
	if len(r.Frames) == 0 {
		t.Errorf("expected backtrace frames")
	}
}

func TestBuildFromPlainError(t *testing.T) {
	r := Build(stderrors.New("just a message"))
	if r.Summary != "just a message" {
		t.Errorf("unexpected summary %q", r.Summary)
	}
	if r.Code != "" || r.Suggestion != "" || len(r.Frames) != 0 {
		t.Errorf("plain error must contribute nothing but its message: %+v", r)
	}
}

func TestYAML(t *testing.T) {
	err := errors.New(errors.CodeTimeout, "late", nil).
		WithSuggestion("raise the deadline")
	raw, marshalErr := Build(err).YAML()
	if marshalErr != nil {
		t.Fatalf("yaml: %v", marshalErr)
	}
	var got map[string]any
	if err := yaml.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["code"] != "TIMEOUT" {
		t.Errorf("unexpected code in yaml: %v", got["code"])
	}
	if got["suggestion"] != "raise the deadline" {
		t.Errorf("unexpected suggestion in yaml: %v", got["suggestion"])
	}
}

func TestWriteText(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "missing profile", nil).
		WithSuggestion("create one with `parecho init`")
	var sb strings.Builder
	if err := Build(err).WriteText(&sb); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "NOT_FOUND") || !strings.Contains(out, "parecho init") {
		t.Errorf("unexpected text rendering:\n%s", out)
	}
}
