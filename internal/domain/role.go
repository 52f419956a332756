package domain

type Role struct {
	Meta
	RoleID    string `json:"role_id" dynamodbav:"role_id"`
	Manager   bool   `json:"manager" dynamodbav:"manager"`
	Cashier   bool   `json:"cashier" dynamodbav:"cashier"`
	GuessUser bool   `json:"guess_user" dynamodbav:"guess_user"`
}

type RoleInput struct {
	RoleID    string `json:"role_id" validate:"required"`
	Manager   *bool  `json:"manager" validate:"required"`
	Cashier   *bool  `json:"cashier" validate:"required"`
	GuessUser *bool  `json:"guess_user" validate:"required"`
}

func NewRole(in *RoleInput) *Role {
	return &Role{
		RoleID:    in.RoleID,
		Manager:   *in.Manager,
		Cashier:   *in.Cashier,
		GuessUser: *in.GuessUser,
	}
}
