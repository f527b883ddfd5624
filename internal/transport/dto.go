package transport

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mgalihpp/inventory-dashboard/internal/util"
)

type LoginRequest struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

type ListQuery struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	Filter    string
}

// ParseListQuery accepts both pageSize and size for the page length.
func ParseListQuery(q url.Values) ListQuery {
	sizeRaw := q.Get("pageSize")
	if sizeRaw == "" {
		sizeRaw = q.Get("size")
	}
	order := strings.ToLower(q.Get("sortOrder"))
	if order != "desc" {
		order = "asc"
	}
	sortBy := q.Get("sortBy")
	if sortBy == "" {
		sortBy = "createdAt"
	}
	return ListQuery{
		Page:      util.ParseIntDefault(q.Get("page"), 1),
		PageSize:  util.ParseIntDefault(sizeRaw, util.DefaultPageSize),
		SortBy:    sortBy,
		SortOrder: order,
		Filter:    strings.TrimSpace(q.Get("filter")),
	}
}

type CreateUserRequest struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

type PatchUserRequest struct {
	Fullname *string `json:"fullname"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Avatar   *string `json:"avatar"`
	Address  *string `json:"address"`
	Role     *string `json:"role"`
}

type CreateProductRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Status   string  `json:"status"`
}

type PatchProductRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
	Status   *string  `json:"status"`
}

type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type PatchSupplierRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// FormDecoder is implemented by request bodies that can be filled from
// url-encoded or multipart form values.
type FormDecoder interface {
	DecodeForm(v url.Values) error
}

// optString returns nil when the key is absent so patch semantics survive form posts.
func optString(v url.Values, key string) *string {
	if _, ok := v[key]; !ok {
		return nil
	}
	s := v.Get(key)
	return &s
}

func optFloat(v url.Values, key string) (*float64, error) {
	s := optString(v, key)
	if s == nil || *s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &f, nil
}

func optInt(v url.Values, key string) (*int, error) {
	s := optString(v, key)
	if s == nil || *s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &n, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func (r *LoginRequest) DecodeForm(v url.Values) error {
	r.Email = v.Get("email")
	r.Password = v.Get("password")
	return nil
}

func (r *RegisterRequest) DecodeForm(v url.Values) error {
	r.Email = v.Get("email")
	r.Password = v.Get("password")
	return nil
}

func (r *CreateUserRequest) DecodeForm(v url.Values) error {
	r.Fullname = v.Get("fullname")
	r.Username = v.Get("username")
	r.Email = v.Get("email")
	r.Password = v.Get("password")
	r.Avatar = v.Get("avatar")
	r.Address = v.Get("address")
	r.Role = v.Get("role")
	return nil
}

func (r *PatchUserRequest) DecodeForm(v url.Values) error {
	r.Fullname = optString(v, "fullname")
	r.Username = optString(v, "username")
	r.Email = optString(v, "email")
	r.Password = optString(v, "password")
	r.Avatar = optString(v, "avatar")
	r.Address = optString(v, "address")
	r.Role = optString(v, "role")
	return nil
}

func (r *CreateProductRequest) DecodeForm(v url.Values) error {
	price, err := optFloat(v, "price")
	if err != nil {
		return err
	}
	qty, err := optInt(v, "quantity")
	if err != nil {
		return err
	}
	r.Name = v.Get("name")
	r.Category = v.Get("category")
	r.Status = v.Get("status")
	r.Price = deref(price)
	r.Quantity = deref(qty)
	return nil
}

func (r *PatchProductRequest) DecodeForm(v url.Values) error {
	price, err := optFloat(v, "price")
	if err != nil {
		return err
	}
	qty, err := optInt(v, "quantity")
	if err != nil {
		return err
	}
	r.Name = optString(v, "name")
	r.Category = optString(v, "category")
	r.Status = optString(v, "status")
	r.Price = price
	r.Quantity = qty
	return nil
}

func (r *CreateSupplierRequest) DecodeForm(v url.Values) error {
	r.Name = v.Get("name")
	r.Address = v.Get("address")
	r.Phone = v.Get("phone")
	return nil
}

func (r *PatchSupplierRequest) DecodeForm(v url.Values) error {
	r.Name = optString(v, "name")
	r.Address = optString(v, "address")
	r.Phone = optString(v, "phone")
	return nil
}
