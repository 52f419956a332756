package domain

// User is the user-management directory entry. It is a plain CRUD entity,
// unrelated to the Account credential record used by the auth flows.
type User struct {
	Meta
	UserID    string `json:"userID" dynamodbav:"user_id"`
	Firstname string `json:"firstname,omitempty" dynamodbav:"firstname"`
	Lastname  string `json:"lastname,omitempty" dynamodbav:"lastname"`
	Contact   string `json:"contact,omitempty" dynamodbav:"contact"`
}

type UserInput struct {
	UserID    string `json:"userID" validate:"required"`
	Firstname string `json:"firstname" validate:"omitempty,max=100"`
	Lastname  string `json:"lastname" validate:"omitempty,max=100"`
	Contact   string `json:"contact" validate:"omitempty,max=100"`
}

func NewUser(in *UserInput) *User {
	return &User{
		UserID:    in.UserID,
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Contact:   in.Contact,
	}
}
