package inputval_test

import (
	"testing"

	"github.com/collectam/collectam-web/internal/app/system/inputval"
)

func TestCheck_Login(t *testing.T) {
	tests := []struct {
		name  string
		input inputval.LoginInput
		want  string
	}{
		{
			name:  "valid",
			input: inputval.LoginInput{Email: "a@b.c", Password: "secret123"},
			want:  "",
		},
		{
			name:  "missing email",
			input: inputval.LoginInput{Password: "secret123"},
			want:  "Email is required.",
		},
		{
			name:  "bad email shape",
			input: inputval.LoginInput{Email: "not-an-email", Password: "secret123"},
			want:  "Please enter a valid email address.",
		},
		{
			name:  "short password",
			input: inputval.LoginInput{Email: "a@b.c", Password: "short"},
			want:  "Password must be at least 8 characters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inputval.Check(tt.input); got != tt.want {
				t.Errorf("Check: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheck_Register(t *testing.T) {
	valid := inputval.RegisterInput{
		InvitationToken: "inv-1",
		FirstName:       "Carl",
		LastName:        "Collector",
		Email:           "c@b.c",
		Password:        "secret123",
	}

	if got := inputval.Check(valid); got != "" {
		t.Errorf("valid input rejected: %q", got)
	}

	t.Run("phone is optional", func(t *testing.T) {
		in := valid
		in.Phone = ""
		if got := inputval.Check(in); got != "" {
			t.Errorf("empty phone rejected: %q", got)
		}
	})

	t.Run("missing invitation token", func(t *testing.T) {
		in := valid
		in.InvitationToken = ""
		if got := inputval.Check(in); got != "Invitation token is required." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("missing first name", func(t *testing.T) {
		in := valid
		in.FirstName = ""
		if got := inputval.Check(in); got != "First name is required." {
			t.Errorf("got %q", got)
		}
	})
}
