package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "sahayak_"

const (
	TABLE_CONVERSATION_MESSAGE = TableName("conversation_message")
	TABLE_FEEDBACK             = TableName("feedback")
	TABLE_EMBEDDING_CACHE      = TableName("embedding_cache")
)
