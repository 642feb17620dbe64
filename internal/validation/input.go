package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MaxNameLength        = 100
	MaxTitleLength       = 200
	MaxShortTextLength   = 500
	MaxLongTextLength    = 5000
	MaxURLLength         = 500
	MaxEmojiIconRunes    = 8
	MaxTagsCount         = 30
	MaxTagLength         = 40
	MinSkillLevel        = 0
	MaxSkillLevel        = 100
	MinRating            = 1
	MaxRating            = 5
	MaxMessageBodyLength = 5000
)

var (
	emailLocalRegex  = regexp.MustCompile(`^[a-z0-9._+-]+$`)
	emailDomainRegex = regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	iconPathRegex    = regexp.MustCompile(`^/[A-Za-z0-9._~/-]+$`)
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateRequired проверяет обязательное текстовое поле и его максимальную длину.
func ValidateRequired(fieldName, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s обязательно", fieldName)
	}
	return ValidateLength(fieldName, strings.TrimSpace(value), 0, max)
}

// ValidateOptional проверяет необязательное поле только по длине.
func ValidateOptional(fieldName string, value *string, max int) error {
	if value == nil {
		return nil
	}
	return ValidateLength(fieldName, strings.TrimSpace(*value), 0, max)
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return fmt.Errorf("некорректный формат email")
	}
	if len(local) == 0 || len(local) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}
	if len(domain) == 0 || len(domain) > 255 {
		return fmt.Errorf("доменная часть email должна быть от 1 до 255 символов")
	}
	if !emailLocalRegex.MatchString(local) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}
	if !emailDomainRegex.MatchString(domain) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}
	return nil
}

// ValidateURL проверяет необязательную внешнюю ссылку (http/https).
func ValidateURL(fieldName string, link *string) error {
	if link == nil || strings.TrimSpace(*link) == "" {
		return nil
	}
	raw := strings.TrimSpace(*link)
	if err := ValidateLength(fieldName, raw, 0, MaxURLLength); err != nil {
		return err
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: некорректный формат URL", fieldName)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s должна начинаться с http:// или https://", fieldName)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s должна содержать доменное имя", fieldName)
	}
	return nil
}

// ValidateImageRef проверяет ссылку на изображение: пусто, путь от корня или http(s) URL.
func ValidateImageRef(fieldName, ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}
	if strings.HasPrefix(ref, "/") {
		if strings.Contains(ref, "..") || !iconPathRegex.MatchString(ref) {
			return fmt.Errorf("%s: недопустимый путь к файлу", fieldName)
		}
		return nil
	}
	return ValidateURL(fieldName, &ref)
}

// ValidateIcon принимает либо короткую строку-эмодзи, либо путь к загруженному изображению.
func ValidateIcon(icon string) error {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return nil
	}
	if strings.HasPrefix(icon, "/") {
		return ValidateImageRef("иконка", icon)
	}
	if utf8.RuneCountInString(icon) > MaxEmojiIconRunes {
		return fmt.Errorf("иконка должна быть эмодзи или путём к изображению")
	}
	return nil
}

// ValidateSkillLevel проверяет уровень владения навыком.
func ValidateSkillLevel(level int) error {
	if level < MinSkillLevel || level > MaxSkillLevel {
		return fmt.Errorf("уровень навыка должен быть от %d до %d", MinSkillLevel, MaxSkillLevel)
	}
	return nil
}

// ValidateRating проверяет оценку в отзыве.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("оценка должна быть от %d до %d", MinRating, MaxRating)
	}
	return nil
}

// ValidateTags проверяет массив тегов проекта.
func ValidateTags(tags []string) error {
	if len(tags) > MaxTagsCount {
		return fmt.Errorf("количество тегов не может превышать %d", MaxTagsCount)
	}

	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return fmt.Errorf("тег не может быть пустым")
		}
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return fmt.Errorf("тег не может быть длиннее %d символов", MaxTagLength)
		}
		lower := strings.ToLower(tag)
		if seen[lower] {
			return fmt.Errorf("тег '%s' указан дважды", tag)
		}
		seen[lower] = true
	}
	return nil
}
