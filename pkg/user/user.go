package user

type User struct {
	Name     string `json:"name"`
	Password string `json:"-"`
	ID       string `json:"id"`
	Posts    int    `json:"posts"`
}

type UserRepo interface {
	CheckUser(name, password string) error
	AddUser(user *User) error
	GetUser(name string) (*User, error)
	GetUserByID(userID string) (*User, error)
	IncPostCount(userID string) error
	DecPostCount(userID string) error
}
