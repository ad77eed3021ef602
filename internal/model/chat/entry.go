package chat

// Roles recorded in the chat log. Every user turn is immediately followed by
// one bot turn carrying the same mood score.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Entry is one persisted turn of the conversation. Rows are append-only and
// ids grow strictly with insertion order.
type Entry struct {
	ID        int64    `json:"id"`
	Role      string   `json:"role"`
	Message   string   `json:"message"`
	Mood      *float64 `json:"mood"`
	Timestamp string   `json:"timestamp"`
}
