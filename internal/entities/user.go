package entities

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser    Role = "user"
	RoleCourier Role = "courier"
	RoleAdmin   Role = "admin"
)

var Roles = []Role{RoleUser, RoleCourier, RoleAdmin}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleCourier, RoleAdmin:
		return true
	}
	return false
}

type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

func (a Address) IsEmpty() bool {
	return strings.TrimSpace(a.Street) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.State) == "" &&
		strings.TrimSpace(a.ZipCode) == "" &&
		strings.TrimSpace(a.Country) == ""
}

// String строка для геокодера: непустые части через запятую.
func (a Address) String() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.ZipCode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Phone        string
	Address      Address
	AvatarURL    string
	IsActive     bool
	IsAvailable  bool
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

type UserSummary struct {
	ID    string
	Name  string
	Email string
	Phone string
}

type UserModify struct {
	ID           *string
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *Role
	Phone        *string
	Address      *Address
	AvatarURL    *string
	IsActive     *bool
	IsAvailable  *bool
}

func (m UserModify) IsEmpty() bool {
	return m.Name == nil &&
		m.Email == nil &&
		m.PasswordHash == nil &&
		m.Role == nil &&
		m.Phone == nil &&
		m.Address == nil &&
		m.AvatarURL == nil &&
		m.IsActive == nil &&
		m.IsAvailable == nil
}

type UserFilter struct {
	Role           *Role
	IncludeDeleted bool
	OnlyActive     bool
	OnlyAvailable  bool
	// Search подстрока имени или email без учета регистра
	Search string
}

type Registration struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  Address
}

type Credentials struct {
	Email    string
	Password string
}

type Session struct {
	Token string
	User  *User
}

// Actor тот, от чьего имени выполняется операция.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) Is(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
