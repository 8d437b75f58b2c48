package auth

// OAuth scopes recognized by the habit service.
const (
	ScopeHabitsRead  = "habits:read"
	ScopeHabitsWrite = "habits:write"
)
