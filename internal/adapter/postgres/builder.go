package postgres

import "github.com/Masterminds/squirrel"

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Page applies limit/offset defaults: limit falls back to def and is capped at max.
func Page(limit, offset, def, max int) (uint64, uint64) {
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	if offset < 0 {
		offset = 0
	}
	return uint64(limit), uint64(offset)
}
