package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta datas YYYY-MM-DD como meia-noite UTC
func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(dateStr), time.UTC)
}
