package types

type MessageUserRole string

const (
	USER_ROLE_USER  MessageUserRole = "user"
	USER_ROLE_MODEL MessageUserRole = "model"
)

func (r MessageUserRole) String() string {
	return string(r)
}

// ConversationMessage is one turn of a per-user conversation thread.
// Messages are append-only, ordering within a thread follows send_time
// with the snowflake id as the tie breaker.
type ConversationMessage struct {
	ID       string          `json:"id" db:"id"`
	UserID   string          `json:"user_id" db:"user_id"`
	Role     MessageUserRole `json:"role" db:"role"`
	Message  string          `json:"message" db:"message"`
	Grade    int             `json:"grade" db:"grade"`
	SendTime int64           `json:"send_time" db:"send_time"`
}
