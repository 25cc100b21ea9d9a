package errs

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(Validation("status", "invalid status")); got != KindValidation {
		t.Fatalf("kind = %s, want validation", got)
	}
	if got := KindOf(fmt.Errorf("wrapped: %w", NotFound("lead not found"))); got != KindNotFound {
		t.Fatalf("kind = %s, want not_found", got)
	}
	if got := KindOf(errors.New("plain")); got != KindStore {
		t.Fatalf("kind = %s, want store for unclassified", got)
	}
}

func TestStore_RetryableOnDeadline(t *testing.T) {
	err := Store("update lead", fmt.Errorf("exec: %w", context.DeadlineExceeded))
	if !err.Retryable {
		t.Fatal("deadline should be retryable")
	}
	if !IsRetryable(err) {
		t.Fatal("IsRetryable = false")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("store error must unwrap to the cause")
	}
	if IsRetryable(Store("insert activity", errors.New("constraint failed"))) {
		t.Fatal("constraint failure should not be retryable")
	}
}

func TestStore_KeepsClassifiedError(t *testing.T) {
	nf := NotFound("lead not found")
	if got := Store("get lead", nf); got != nf {
		t.Fatalf("Store should pass through classified errors, got %#v", got)
	}
}

func TestIs_MatchesByKind(t *testing.T) {
	err := fmt.Errorf("ctx: %w", NotFound("lead not found"))
	if !errors.Is(err, &Error{Kind: KindNotFound}) {
		t.Fatal("errors.Is by kind failed")
	}
	if errors.Is(err, &Error{Kind: KindValidation}) {
		t.Fatal("matched wrong kind")
	}
}
