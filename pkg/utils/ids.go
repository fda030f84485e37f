package utils

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	backupIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	backupIDLength   = 10
	backupIDPrefix   = "bkp_"
)

// NewBackupID gera o identificador de um backup exportado, ex: bkp_3k9x0a7qzm
func NewBackupID() (string, error) {
	id, err := gonanoid.Generate(backupIDAlphabet, backupIDLength)
	if err != nil {
		return "", err
	}
	return backupIDPrefix + id, nil
}

// IsBackupID indica se o valor tem o formato gerado por NewBackupID
func IsBackupID(value string) bool {
	id, ok := strings.CutPrefix(value, backupIDPrefix)
	if !ok || len(id) != backupIDLength {
		return false
	}
	return strings.Trim(id, backupIDAlphabet) == ""
}
