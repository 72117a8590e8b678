package request

import "testing"

func TestCaptureRequest_ResolveOrderID(t *testing.T) {
	r := CaptureRequest{OrderID: " 5O190127TN364715T "}
	if got := r.ResolveOrderID(); got != "5O190127TN364715T" {
		t.Fatalf("expected trimmed order id, got %q", got)
	}

	r2 := CaptureRequest{OrderID: "   "}
	if got := r2.ResolveOrderID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestCaptureRequest_ResolvePlan(t *testing.T) {
	r := CaptureRequest{Plan: " Annual "}
	if got := r.ResolvePlan(); got != "annual" {
		t.Fatalf("expected annual, got %q", got)
	}

	r2 := CaptureRequest{}
	if got := r2.ResolvePlan(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
