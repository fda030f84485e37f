package utils

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts são os formatos aceitos, do mais ao menos preciso
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp interpreta datas ISO com ou sem fuso; sem fuso vale UTC
func ParseTimestamp(raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("data vazia")
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("data inválida: %q", raw)
}
