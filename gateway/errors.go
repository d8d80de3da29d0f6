package gateway

import (
	"encoding/json"
	"fmt"
	"sort"
)

// APIError giữ nguyên status và body đã decode của backend,
// caller phân nhánh theo Status (400 validation, 409 conflict, ...)
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend %d", e.Status)
}

// FieldMessages gom toàn bộ lỗi từng field thành một danh sách có thứ tự ổn định
// (theo tên field, giữ nguyên thứ tự message trong từng field)
func (e *APIError) FieldMessages() []string {
	if len(e.Fields) == 0 {
		return nil
	}
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var messages []string
	for _, field := range fields {
		messages = append(messages, e.Fields[field]...)
	}
	return messages
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var parsed struct {
		Message string              `json:"message"`
		Title   string              `json:"title"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Message = parsed.Message
		if apiErr.Message == "" {
			apiErr.Message = parsed.Title
		}
		apiErr.Fields = parsed.Errors
	}
	return apiErr
}

// IsStatus báo err có phải APIError với status cho trước không
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == status
}
