package db

import (
	"encoding/json"
	"log/slog"
)

func RawMessageToMap(raw json.RawMessage) map[string]interface{} {
	var result map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		slog.Error("error unmarshaling jsonb column", "err", err)
	}
	return result
}

func MapToRawMessage(data map[string]interface{}) json.RawMessage {
	if data == nil {
		return json.RawMessage(`{}`)
	}
	bytes, err := json.Marshal(data)
	if err != nil {
		slog.Error("error marshaling jsonb column", "err", err)
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(bytes)
}
