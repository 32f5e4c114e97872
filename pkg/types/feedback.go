package types

type Feedback struct {
	ID        string `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	Content   string `json:"content" db:"content"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}
