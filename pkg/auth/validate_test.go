package auth

import (
	"errors"
	"testing"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"reader@example.com",
		"first.last+tag@sub.domain.org",
		"UPPER@CASE.IO",
	}
	invalid := []string{
		"",
		"plainaddress",
		"missing@domain",
		"@nodomain.com",
		"user@domain.c",
		"user@domain.",
	}
	for _, email := range valid {
		if !validEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if validEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		needLower bool
		want      bool
	}{
		{"meets registration policy", "Str0ng!pass", false, true},
		{"no lowercase still passes registration", "STR0NG!XX", false, true},
		{"too short", "S1!a", false, false},
		{"no digit", "Strong!pass", false, false},
		{"no uppercase", "str0ng!pass", false, false},
		{"no special", "Str0ngpass", false, false},
		{"reset policy demands lowercase", "STR0NG!XX", true, false},
		{"meets reset policy", "Str0ng!pass", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validPassword(tt.password, tt.needLower); got != tt.want {
				t.Errorf("validPassword(%q, %v) = %v, want %v", tt.password, tt.needLower, got, tt.want)
			}
		})
	}
}

func TestRegisterFormValidateOrder(t *testing.T) {
	good := RegisterForm{
		Name:            "Reader",
		Email:           "reader@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*RegisterForm)
		want   string
	}{
		{"empty name", func(f *RegisterForm) { f.Name = "  " }, MsgAllFieldsRequired},
		{"empty email", func(f *RegisterForm) { f.Email = "" }, MsgAllFieldsRequired},
		{"empty password", func(f *RegisterForm) { f.Password = "" }, MsgAllFieldsRequired},
		{"empty confirmation", func(f *RegisterForm) { f.ConfirmPassword = "" }, MsgAllFieldsRequired},
		{"bad email", func(f *RegisterForm) { f.Email = "not-an-email" }, MsgInvalidEmail},
		{"weak password", func(f *RegisterForm) { f.Password = "weak"; f.ConfirmPassword = "weak" }, MsgWeakPassword},
		{"mismatch", func(f *RegisterForm) { f.ConfirmPassword = "Other1!pass" }, MsgPasswordsMismatch},
		// Emptiness wins over every later rule.
		{"empty email with bad password", func(f *RegisterForm) { f.Email = ""; f.Password = "weak" }, MsgAllFieldsRequired},
		// Email format is checked before the password policy.
		{"bad email with weak password", func(f *RegisterForm) { f.Email = "nope"; f.Password = "weak" }, MsgInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := good
			tt.mutate(&form)
			err := form.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestValidateResetPassword(t *testing.T) {
	if err := validateResetPassword("Str0ng!pass", "Str0ng!pass"); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := validateResetPassword("STR0NG!XX", "STR0NG!XX"); err == nil || err.Error() != MsgWeakResetPassword {
		t.Errorf("expected %q, got %v", MsgWeakResetPassword, err)
	}
	if err := validateResetPassword("Str0ng!pass", "Other1!pass"); err == nil || err.Error() != MsgPasswordsMismatch {
		t.Errorf("expected %q, got %v", MsgPasswordsMismatch, err)
	}
	// The policy check runs before the mismatch check.
	if err := validateResetPassword("weak", "different"); err == nil || err.Error() != MsgWeakResetPassword {
		t.Errorf("expected %q, got %v", MsgWeakResetPassword, err)
	}
}
