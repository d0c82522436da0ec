package utils

import (
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

func GenerateUULDString() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String()
}

func GetStringPointer(text string) *string {
	return &text
}

func GetBooleanPointer(data bool) *bool {
	return &data
}

func GetFloat64Pointer(data float64) *float64 {
	return &data
}

func GetUIntPointer(data uint) *uint {
	return &data
}

func GetInt64Pointer(data int64) *int64 {
	return &data
}

// DecodeBase64Image decodes a raw or data-URL encoded base64 image
// payload into its binary form.
func DecodeBase64Image(imageData string) ([]byte, error) {
	if imageData == "" {
		return nil, errors.New("empty image payload")
	}
	data := imageData
	if index := strings.Index(imageData, ","); index != -1 {
		data = imageData[index+1:]
	}
	decoded, err := base64.StdEncoding.Strict().DecodeString(data)
	if err != nil {
		return nil, err
	}
	if len(decoded) == 0 {
		return nil, errors.New("empty image payload")
	}
	return decoded, nil
}

var fileNameRegex = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// SanitizeFileName strips characters that are unsafe in blob names.
func SanitizeFileName(value string) string {
	return fileNameRegex.ReplaceAllString(value, "_")
}

func HasItemString(arr *[]string, target string) bool {
	for _, v := range *arr {
		if v == target {
			return true
		}
	}
	return false
}
