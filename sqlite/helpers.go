package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
)

// encodeTopics serializes topics for the topics column.
func encodeTopics(topics []string) (string, error) {
	if topics == nil {
		topics = []string{}
	}
	b, err := json.Marshal(topics)
	if err != nil {
		return "", fmt.Errorf("failed to encode topics: %w", err)
	}
	return string(b), nil
}

// decodeTopics parses the topics column.
func decodeTopics(value string) ([]string, error) {
	var topics []string
	if err := json.Unmarshal([]byte(value), &topics); err != nil {
		return nil, fmt.Errorf("failed to parse topics: %w", err)
	}
	return topics, nil
}

// appendIn appends an "AND column IN (?, ...)" clause to a query builder.
func appendIn(query *strings.Builder, args *[]any, column string, values []string) {
	if len(values) == 0 {
		return
	}
	query.WriteString(" AND ")
	query.WriteString(column)
	query.WriteString(" IN (")
	for i, v := range values {
		if i > 0 {
			query.WriteString(", ")
		}
		query.WriteString("?")
		*args = append(*args, v)
	}
	query.WriteString(")")
}
