// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and metadata.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-14 v0.2.0: Adjusted to the reduced code set

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %s, want the caller of New", err.StackTrace()[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("sequence has %d elements", 2)
	if err.Error() != "sequence has 2 elements" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	sentinel := errors.New("original error")

	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      sentinel,
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("bad shape").WithCode(CodeInvalidInput),
			message:  "normalize failed",
			wantMsg:  "normalize failed: bad shape",
			wantCode: CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap(nil) = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidInput, SeverityLow},
		{CodeUnsupportedInput, SeverityLow},
		{CodeConnectionFailed, SeverityHigh},
		{CodeUnauthorized, SeverityHigh},
		{CodeFileIO, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestDetailsAndOperation(t *testing.T) {
	err := New("failed").
		WithDetail("length", 2).
		WithDetails(map[string]interface{}{"kind": "slice"}).
		WithOperation("timex.ToDate").
		WithRequestID("req-1")

	details := err.Details()
	if details["length"] != 2 || details["kind"] != "slice" {
		t.Errorf("Details() = %v", details)
	}
	details["length"] = 99
	if err.Details()["length"] != 2 {
		t.Error("Details() should return a copy")
	}
	if err.Operation() != "timex.ToDate" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if err.RequestID() != "req-1" {
		t.Errorf("RequestID() = %q", err.RequestID())
	}

	s := err.String()
	for _, want := range []string{"Operation: timex.ToDate", "RequestID: req-1", "kind=slice", "length=2"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "outer")
	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}

	single := New("alone")
	if single.RootCause() != single {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("inner").WithCode(CodeNotFound)
	outer := Wrap(inner, "outer").WithCode(CodeFileIO)

	if !HasCode(outer, CodeFileIO) {
		t.Error("HasCode(outer, FILE_IO) = false")
	}
	if !HasCode(outer, CodeNotFound) {
		t.Error("HasCode should search the whole chain")
	}
	if HasCode(errors.New("plain"), CodeNotFound) {
		t.Error("HasCode on plain error should be false")
	}
	if GetCode(outer) != CodeFileIO {
		t.Errorf("GetCode() = %v", GetCode(outer))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode on plain error should be UNKNOWN")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity on plain error should be medium")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "request failed").
		WithCode(CodeConnectionFailed).
		WithOperation("fleet.Request")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if e := json.Unmarshal(data, &decoded); e != nil {
		t.Fatalf("Unmarshal() error = %v", e)
	}
	if decoded["code"] != string(CodeConnectionFailed) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "high" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["operation"] != "fleet.Request" {
		t.Errorf("operation = %v", decoded["operation"])
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeInvalidFormat, "validation"},
		{CodeUnauthorized, "authentication"},
		{CodeConnectionFailed, "service"},
		{CodeFileIO, "storage"},
		{CodeInvalidConfig, "configuration"},
		{CodeUnknown, "generic"},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
	if !CodeAborted.IsValid() {
		t.Error("ABORTED should be valid")
	}
}
