package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// 1. Ganti underscore dengan spasi (hours_worked -> hours worked)
	s = strings.ReplaceAll(s, "_", " ")

	// 2. Ubah jadi Title Case (hours worked -> Hours Worked)
	caser := cases.Title(language.English)
	return caser.String(s)
}

func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		// Ambil error pertama
		e := errs[0]

		// e.Field() sudah memakai nama dari tag json
		// karena kita sudah set RegisterTagNameFunc di apperror.Init()
		fieldName := e.Field()
		humanReadableField := formatFieldName(fieldName)

		switch e.Tag() {
		case "required":
			// Memanggil fungsi RequiredField yang mengembalikan *AppError
			// Pesannya akan menjadi: "Confirm is required"
			return RequiredField(humanReadableField)
		default:
			// Pesannya akan menjadi: "Base is invalid"
			return InvalidField(humanReadableField)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
