package repositories

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

type contextKey string

const txKey contextKey = "tx_db"

// GetDB extracts the transaction DB from context if present, otherwise
// returns the fallback. Repositories call this on every operation so a
// unit of work can span them.
func GetDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return fallback
}

// encodeStrings packs a string slice into a JSON text column.
// Order is preserved.
func encodeStrings(values []string) string {
	if len(values) == 0 {
		return ""
	}
	data, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(data)
}

// decodeStrings unpacks a JSON text column into a string slice.
func decodeStrings(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []string{}
	}
	return values
}
