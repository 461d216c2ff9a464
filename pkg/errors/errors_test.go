// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	cause := errors.New("connection refused")
	pe := New(CodeUnavailable, "store unreachable", cause)

	if pe.Code != CodeUnavailable {
		t.Errorf("expected CodeUnavailable, got %v", pe.Code)
	}
	if pe.Message != "store unreachable" {
		t.Errorf("unexpected message %q", pe.Message)
	}
	if pe.ID == "" {
		t.Errorf("expected a generated instance id")
	}
	if !errors.Is(pe, cause) {
		t.Errorf("expected errors.Is to reach the cause")
	}
}

func TestErrorString(t *testing.T) {
	pe := New(CodeTimeout, "fetch timed out", errors.New("deadline exceeded"))
	got := pe.Error()
	if !strings.Contains(got, "TIMEOUT") || !strings.Contains(got, "deadline exceeded") {
		t.Errorf("unexpected rendering: %q", got)
	}
}

func TestBacktraceCaptured(t *testing.T) {
	pe := New(CodeInternal, "boom", nil)
	bt, ok := BacktraceFrom(pe)
	if !ok {
		t.Fatalf("expected a backtrace")
	}
	frames := bt.Frames()
	if len(frames) == 0 {
		t.Fatalf("expected resolved frames")
	}
	found := false
	for _, f := range frames {
		if strings.Contains(f.Function, "TestBacktraceCaptured") {
			found = true
		}
	}
	if !found {
		t.Errorf("backtrace should contain the constructing test, got %v", frames)
	}
}

func TestSuggestion(t *testing.T) {
	pe := New(CodeInvalidInput, "bad flag", nil).
		WithSuggestion("run with --help to list valid flags")

	s, ok := SuggestionFrom(pe)
	if !ok {
		t.Fatalf("expected a suggestion")
	}
	if s != "run with --help to list valid flags" {
		t.Errorf("unexpected suggestion %q", s)
	}

	// No suggestion set: absence, not an empty string.
	if _, ok := SuggestionFrom(New(CodeInternal, "x", nil)); ok {
		t.Errorf("unset suggestion must be absent")
	}
}

func TestAttributes(t *testing.T) {
	pe := New(CodeNotFound, "missing profile", nil).
		WithAttribute("path", "/etc/parecho.yaml").
		WithAttribute("profile", "prod")

	attrs, ok := AttributesFrom(pe)
	if !ok {
		t.Fatalf("expected attributes")
	}
	if attrs["path"] != "/etc/parecho.yaml" || attrs["profile"] != "prod" {
		t.Errorf("unexpected attributes: %v", attrs)
	}
}

func TestCodeAndSummary(t *testing.T) {
	pe := New(CodeTimeout, "slow provider", nil)
	code, ok := CodeFrom(pe)
	if !ok || code != CodeTimeout {
		t.Errorf("expected CodeTimeout, got %v ok=%v", code, ok)
	}
	sum, ok := SummaryFrom(pe)
	if !ok || !strings.Contains(string(sum), "slow provider") {
		t.Errorf("unexpected summary %q ok=%v", sum, ok)
	}
}

type retryAfter int

func TestDetail(t *testing.T) {
	pe := Detail(New(CodeUnavailable, "throttled", nil), retryAfter(30))
	got, ok := ValueFrom[retryAfter](pe)
	if !ok || got != 30 {
		t.Errorf("expected retryAfter(30), got %v ok=%v", got, ok)
	}
	// The underlying int must not match the wrapper detail.
	if _, ok := ValueFrom[int](pe); ok {
		t.Errorf("bare int request must not match a retryAfter detail")
	}
}

func TestAccessorsWalkChain(t *testing.T) {
	inner := New(CodeUnavailable, "qdrant down", nil).
		WithSuggestion("check the endpoint address")
	wrapped := fmt.Errorf("loading memories: %w", inner)
	outer := New(CodeInternal, "pipeline failed", wrapped)

	// Suggestion lives two links down, behind a plain fmt wrapper.
	s, ok := SuggestionFrom(outer)
	if !ok || s != "check the endpoint address" {
		t.Errorf("expected inner suggestion, got %q ok=%v", s, ok)
	}

	// The outermost backtrace wins.
	bt, ok := BacktraceFrom(outer)
	if !ok {
		t.Fatalf("expected a backtrace")
	}
	innerBt, _ := BacktraceFrom(inner)
	if bt == innerBt {
		t.Errorf("expected the outer error's backtrace first")
	}
}

func TestAccessorsJoinedErrors(t *testing.T) {
	a := errors.New("plain")
	b := New(CodeTimeout, "late", nil).WithSuggestion("raise the deadline")
	joined := errors.Join(a, b)

	s, ok := SuggestionFrom(joined)
	if !ok || s != "raise the deadline" {
		t.Errorf("expected suggestion through errors.Join, got %q ok=%v", s, ok)
	}
}

func TestAccessorsNilAndPlainErrors(t *testing.T) {
	if _, ok := SuggestionFrom(nil); ok {
		t.Errorf("nil error must yield absence")
	}
	if _, ok := BacktraceFrom(errors.New("plain")); ok {
		t.Errorf("non-participating error must yield absence")
	}
}

func TestMarshalJSON(t *testing.T) {
	pe := New(CodeInvalidInput, "bad value", errors.New("parse int")).
		WithSuggestion("quote the value").
		WithAttribute("field", "port")

	raw, err := json.Marshal(pe)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["code"] != "INVALID_INPUT" {
		t.Errorf("unexpected code: %v", got["code"])
	}
	if got["suggestion"] != "quote the value" {
		t.Errorf("unexpected suggestion: %v", got["suggestion"])
	}
}

func TestAsError(t *testing.T) {
	if AsError(nil) != nil {
		t.Errorf("nil must stay nil")
	}
	pe := New(CodeTimeout, "late", nil)
	if AsError(pe) != pe {
		t.Errorf("existing *Error must pass through")
	}
	wrapped := AsError(errors.New("plain"))
	if wrapped.Code != CodeInternal {
		t.Errorf("unknown errors wrap as internal, got %v", wrapped.Code)
	}
}
