package domain

// Permission field names ("casher", "guess_user") match the wire format of
// the API this replaces.
type Permission struct {
	Meta
	TokenID   string `json:"token_id" dynamodbav:"token_id"`
	Manager   bool   `json:"manager" dynamodbav:"manager"`
	Casher    bool   `json:"casher" dynamodbav:"casher"`
	GuessUser bool   `json:"guess_user" dynamodbav:"guess_user"`
}

type PermissionInput struct {
	TokenID   string `json:"token_id" validate:"required"`
	Manager   *bool  `json:"manager" validate:"required"`
	Casher    *bool  `json:"casher" validate:"required"`
	GuessUser *bool  `json:"guess_user" validate:"required"`
}

func NewPermission(in *PermissionInput) *Permission {
	return &Permission{
		TokenID:   in.TokenID,
		Manager:   *in.Manager,
		Casher:    *in.Casher,
		GuessUser: *in.GuessUser,
	}
}
