package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rules bound accepted payloads. Zero values disable a check, so an empty
// Rules accepts everything the repository would accept.
type Rules struct {
	MaxMsgLen      int
	MaxUsernameLen int
}

var rules Rules

// SetRules installs the active rule set. Called once during startup.
func SetRules(r Rules) { rules = r }

// ValidateMsg checks a post message against the configured limits.
func ValidateMsg(msg string) error {
	if rules.MaxMsgLen > 0 && utf8.RuneCountInString(msg) > rules.MaxMsgLen {
		return fmt.Errorf("'msg' exceeds maximum length of %d", rules.MaxMsgLen)
	}
	return nil
}

// ValidateUsername checks a new username against the configured limits.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("'username' must not be empty")
	}
	if strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return fmt.Errorf("'username' must not contain whitespace")
	}
	if rules.MaxUsernameLen > 0 && utf8.RuneCountInString(username) > rules.MaxUsernameLen {
		return fmt.Errorf("'username' exceeds maximum length of %d", rules.MaxUsernameLen)
	}
	return nil
}
