package utils

import (
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"15:04:05",
	"15:04",
}

// NormalizeDate đưa chuỗi ngày của backend về "YYYY-MM-DD" để hiển thị.
// Không parse được thì giữ nguyên.
func NormalizeDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// NormalizeTime đưa giờ bắt đầu về "HH:MM"
func NormalizeTime(s string) string {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04")
		}
	}
	return s
}
