package domain

type EnforceRequest struct {
	Role     Role
	Resource string
	Action   string
}
