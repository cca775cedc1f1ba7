package validators

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
)

type hoursRequest struct {
	Start string `validate:"clock"`
	End   string `validate:"required,clock"`
}

func TestClockTag(t *testing.T) {
	v := validator.New()
	if err := RegisterOn(v); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		req hoursRequest
		ok  bool
	}{
		{hoursRequest{Start: "08:00", End: "18:00"}, true},
		{hoursRequest{Start: "", End: "18:00"}, true},
		{hoursRequest{Start: "8:00", End: "18:00"}, false},
		{hoursRequest{Start: "08:00", End: "24:00"}, false},
		{hoursRequest{Start: "08:00", End: ""}, false},
	}

	for _, tc := range cases {
		err := v.Struct(tc.req)
		if tc.ok && err != nil {
			t.Fatalf("%+v: unexpected error %v", tc.req, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%+v: expected error", tc.req)
		}
	}
}

func TestEmailDomainCheckerRejectsMalformed(t *testing.T) {
	c := NewEmailDomainChecker()
	for _, email := range []string{"", "semarroba", "@example.com", "ana@"} {
		if c.Valid(context.Background(), email) {
			t.Fatalf("expected %q to be rejected", email)
		}
	}
}
