package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrMissingInputs_Text(t *testing.T) {
	expected := "Missing required inputs: baseRef, headRef, owner, repo, or githubToken"
	if ErrMissingInputs.Error() != expected {
		t.Errorf("Error() = %q, want %q", ErrMissingInputs.Error(), expected)
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "ErrMissingInputs",
			err:  ErrMissingInputs,
			want: true,
		},
		{
			name: "wrapped ErrMissingInputs",
			err:  fmt.Errorf("validating task: %w", ErrMissingInputs),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidation(tt.err)
			if got != tt.want {
				t.Errorf("IsValidation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
