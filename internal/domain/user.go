package domain

// UserType — роль пользователя, выставляется шлюзом авторизации.
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeCoach    UserType = "coach"
)

// User — аутентифицированный пользователь запроса.
type User struct {
	ID   string
	Type UserType
}

func NewUser(id string, userType UserType) *User {
	return &User{ID: id, Type: userType}
}

func (u *User) IsCoach() bool {
	return u.Type == UserTypeCoach
}
