package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseResolve,
				Kind:   KindSelfReference,
				Path:   []string{"field", "payload"},
				Detail: "chain cycles back on itself",
			},
			contains: []string{"[resolve]", "self_referential_layout", "field.payload", "chain cycles back on itself"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseValidate,
				Kind:  KindUnknownKind,
			},
			contains: []string{"[validate]", "unknown_reference_kind"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseCompile,
				Kind:   KindTruncated,
				Detail: "layout string needs 24 bytes, only 8 available",
				Cause:  errors.New("short read"),
			},
			contains: []string{"[compile]", "truncated_layout", "needs 24 bytes", "caused by: short read"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{Phase: PhaseCompile, Kind: KindMalformed, Cause: cause}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{Phase: PhaseResolve, Kind: KindSelfReference, Path: []string{"a"}}

	if !err.Is(&Error{Phase: PhaseResolve, Kind: KindSelfReference}) {
		t.Error("Is should match same phase and kind regardless of path")
	}
	if err.Is(&Error{Phase: PhaseValidate, Kind: KindSelfReference}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseResolve, Kind: KindMalformed}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseResolve, Kind: KindSelfReference}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("underlying")
	err := New(PhaseValidate, KindWidthViolation).
		Path("cases", "2").
		Cause(cause).
		Detail("tag width %d not in {1,2,4,8}", 3).
		Build()

	if err.Phase != PhaseValidate {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseValidate)
	}
	if err.Kind != KindWidthViolation {
		t.Errorf("Kind = %v, want %v", err.Kind, KindWidthViolation)
	}
	if len(err.Path) != 2 || err.Path[0] != "cases" || err.Path[1] != "2" {
		t.Errorf("Path = %v, want [cases 2]", err.Path)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "tag width 3 not in {1,2,4,8}" {
		t.Errorf("Detail = %q, want formatted detail", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Truncated", func(t *testing.T) {
		err := Truncated(PhaseValidate, []string{"stream"}, 24, 8)
		if err.Kind != KindTruncated {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTruncated)
		}
		if !strings.Contains(err.Detail, "24") || !strings.Contains(err.Detail, "8") {
			t.Errorf("Detail = %q, should mention both byte counts", err.Detail)
		}
	})

	t.Run("SelfReferential", func(t *testing.T) {
		err := SelfReferential(PhaseResolve, []string{"root"})
		if err.Kind != KindSelfReference {
			t.Errorf("Kind = %v, want %v", err.Kind, KindSelfReference)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		err := Malformed(PhaseResolve, nil, "unexpected reference kind 99 at offset 40")
		if err.Kind != KindMalformed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMalformed)
		}
		if !strings.Contains(err.Detail, "offset 40") {
			t.Errorf("Detail = %q, should contain offset", err.Detail)
		}
	})

	t.Run("NotInitialized", func(t *testing.T) {
		err := NotInitialized(PhaseCompile, "layout string")
		if err.Kind != KindNotInitialized {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotInitialized)
		}
		if !strings.Contains(err.Detail, "layout string") {
			t.Errorf("Detail = %q, should name what wasn't initialized", err.Detail)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("bad header")
		err := Wrap(PhaseCompile, KindMalformed, cause, "while reading header")
		if !errors.Is(err.Cause, cause) {
			t.Errorf("Cause = %v, want %v", err.Cause, cause)
		}
		if err.Detail != "while reading header" {
			t.Errorf("Detail = %q, want 'while reading header'", err.Detail)
		}
	})
}
