package utils

import (
	"strconv"
	"strings"
)

// ParseID interpreta identificadores de rota; só aceita inteiros positivos
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
