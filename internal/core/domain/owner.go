package domain

// Owner is the authenticated account on whose behalf a lifecycle operation
// runs. The HTTP layer builds it from request data.
type Owner struct {
	Agent  string
	UserID int64
}

// Authenticated reports whether both the agent and the user are known.
func (o Owner) Authenticated() bool {
	return o.Agent != "" && o.UserID != 0
}
