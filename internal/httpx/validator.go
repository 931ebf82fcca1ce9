package httpx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var youtubeURLPattern = regexp.MustCompile(`^https?://(www\.)?(youtube\.com/watch\?v=|youtu\.be/)[\w-]{6,}`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("youtube", validateYouTubeURL)
}

func validateYouTubeURL(fl validator.FieldLevel) bool {
	return youtubeURLPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// ValidateStruct runs tag validation and flattens failures into one
// user-facing message per field.
func ValidateStruct(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var messages []string
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		fieldName := strings.ToLower(field[:1]) + field[1:]

		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fieldName)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", fieldName, err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", fieldName, err.Param())
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", fieldName)
		case "youtube":
			message = fmt.Sprintf("%s must be a valid YouTube URL", fieldName)
		default:
			message = fmt.Sprintf("%s is invalid", fieldName)
		}
		messages = append(messages, message)
	}

	return messages
}
