package validation

import (
	"fmt"
	"unicode"
)

const MinPasswordLength = 8

// ValidatePassword проверяет пароль администратора: не короче 8 символов,
// есть заглавная и строчная буква и цифра.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("пароль должен быть не менее %d символов", MinPasswordLength)
	}

	rules := []struct {
		check   func(rune) bool
		message string
	}{
		{unicode.IsUpper, "пароль должен содержать хотя бы одну заглавную букву"},
		{unicode.IsLower, "пароль должен содержать хотя бы одну строчную букву"},
		{unicode.IsNumber, "пароль должен содержать хотя бы одну цифру"},
	}

	for _, rule := range rules {
		found := false
		for _, r := range password {
			if rule.check(r) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%s", rule.message)
		}
	}
	return nil
}
