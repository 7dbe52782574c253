// Package validator 요청 구조체의 유효성 검증을 제공합니다.
//
// go-playground/validator를 기반으로 하며, 검증 실패 시 클라이언트에게
// 반환할 수 있는 읽기 쉬운 메시지로 변환하는 기능을 포함합니다.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate 전역 validator 인스턴스 (Thread-Safe, 캐시 공유를 위해 싱글톤으로 유지)
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct 구조체의 validate 태그를 검증합니다.
func Struct(s any) error {
	return validate.Struct(s)
}

// FormatValidationError 검증 에러를 클라이언트에게 반환할 메시지로 변환합니다.
func FormatValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "요청 값이 유효하지 않습니다"
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s은(는) 필수 항목입니다", fieldErr.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s의 길이가 너무 짧습니다 (최소: %s)", fieldErr.Field(), fieldErr.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s의 길이가 너무 깁니다 (최대: %s)", fieldErr.Field(), fieldErr.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s이(가) 유효하지 않습니다", fieldErr.Field()))
		}
	}

	return strings.Join(messages, ", ")
}
