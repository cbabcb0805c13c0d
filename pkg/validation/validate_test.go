package validation

import "testing"

func TestValidateMsg(t *testing.T) {
	SetRules(Rules{})
	defer SetRules(Rules{})
	if err := ValidateMsg(""); err != nil {
		t.Fatalf("unbounded rules should accept anything: %v", err)
	}

	SetRules(Rules{MaxMsgLen: 3})
	if err := ValidateMsg("abc"); err != nil {
		t.Fatalf("at the limit: %v", err)
	}
	if err := ValidateMsg("abcd"); err == nil {
		t.Fatalf("over the limit should fail")
	}
	// limits count runes, not bytes
	if err := ValidateMsg("äöü"); err != nil {
		t.Fatalf("3 runes should pass: %v", err)
	}
}

func TestValidateUsername(t *testing.T) {
	SetRules(Rules{})
	defer SetRules(Rules{})
	if err := ValidateUsername(""); err == nil {
		t.Fatalf("empty username should fail")
	}
	if err := ValidateUsername("alice"); err != nil {
		t.Fatalf("plain username: %v", err)
	}
	if err := ValidateUsername("al ice"); err == nil {
		t.Fatalf("whitespace in username should fail")
	}

	SetRules(Rules{MaxUsernameLen: 4})
	if err := ValidateUsername("alice"); err == nil {
		t.Fatalf("over the limit should fail")
	}
}
