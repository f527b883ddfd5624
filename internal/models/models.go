package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

type Category string

const (
	CategoryFood               Category = "food"
	CategoryDrink              Category = "drink"
	CategoryMedicine           Category = "medicine"
	CategoryHerbs              Category = "herbs"
	CategoryHouseholdEquipment Category = "household_equipment"
)

var Categories = []Category{
	CategoryFood,
	CategoryDrink,
	CategoryMedicine,
	CategoryHerbs,
	CategoryHouseholdEquipment,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusAvailable    Status = "AVAILABLE"
	StatusNotAvailable Status = "NOT_AVAILABLE"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusNotAvailable
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Fullname  string    `                             json:"fullname"`
	Username  string    `gorm:"not null;index"        json:"username"`
	Email     string    `gorm:"not null;uniqueIndex"  json:"email"`
	Password  string    `gorm:"not null"              json:"-"`
	Avatar    string    `                             json:"avatar"`
	Address   string    `                             json:"address"`
	Role      Role      `gorm:"not null"              json:"role"`
	CreatedAt time.Time `                             json:"created_at"`
	UpdatedAt time.Time `                             json:"updated_at"`
}

type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Name      string    `gorm:"not null;index"        json:"name"`
	Category  Category  `gorm:"not null"              json:"category"`
	Price     float64   `gorm:"not null"              json:"price"`
	Quantity  int       `gorm:"not null"              json:"quantity"`
	Status    Status    `gorm:"not null"              json:"status"`
	CreatedAt time.Time `                             json:"created_at"`
	UpdatedAt time.Time `                             json:"updated_at"`
}

type Supplier struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Name      string    `gorm:"not null;index"        json:"name"`
	Address   string    `gorm:"not null"              json:"address"`
	Phone     string    `gorm:"not null"              json:"phone"`
	CreatedAt time.Time `                             json:"created_at"`
	UpdatedAt time.Time `                             json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// All lists the models owned by this service, in migration order.
func All() []any {
	return []any{&User{}, &Product{}, &Supplier{}}
}
