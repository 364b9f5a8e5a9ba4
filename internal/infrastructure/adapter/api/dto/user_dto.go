package dto

import (
	"time"

	"github.com/gameplants/plants-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RegisterRequest is the body of POST /usuaris
type RegisterRequest struct {
	Nom          string          `json:"nom" binding:"required"`
	Correu       string          `json:"correu" binding:"required"`
	Contrasenya  string          `json:"contrasenya" binding:"required"`
	Edat         int             `json:"edat"`
	Nacionalitat string          `json:"nacionalitat"`
	CodiPostal   string          `json:"codiPostal"`
	ImatgePerfil string          `json:"imatgePerfil"`
	Btc          decimal.Decimal `json:"btc"`
	Admin        bool            `json:"admin"`
	Superadmin   bool            `json:"superadmin"`
	LE           int             `json:"LE"`
	Nivell       int             `json:"nivell"`
}

// LoginRequest is the body of POST /usuaris/api/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is the body of PUT /usuaris/:id
type UpdateUserRequest struct {
	Nom          string `json:"nom"`
	Edat         int    `json:"edat"`
	Nacionalitat string `json:"nacionalitat"`
	CodiPostal   string `json:"codiPostal"`
}

// CreditRequest is the body of PUT /usuaris/btc/:userId
type CreditRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CreditResponse mirrors the balance-adjustment confirmation shape
type CreditResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UserResponse is the account representation returned by the API.
// The password hash is never serialized.
type UserResponse struct {
	ID           uint64    `json:"id"`
	Nom          string    `json:"nom"`
	Correu       string    `json:"correu"`
	Edat         int       `json:"edat"`
	Nacionalitat string    `json:"nacionalitat"`
	CodiPostal   string    `json:"codiPostal"`
	ImatgePerfil string    `json:"imatgePerfil"`
	Btc          string    `json:"btc"`
	Admin        bool      `json:"admin"`
	Superadmin   bool      `json:"superadmin"`
	LE           int       `json:"LE"`
	Nivell       int       `json:"nivell"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RegisterResponse is the 201 body of POST /usuaris: the account plus a
// signed bearer token
type RegisterResponse struct {
	UserResponse
	Token string `json:"token"`
}

// LoginResponse is the body of a successful login
type LoginResponse struct {
	Message string       `json:"message"`
	Usuario UserResponse `json:"usuario"`
	Token   string       `json:"token"`
}

// NewUserResponse maps an account entity onto its API representation
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Nom:          u.Nom,
		Correu:       u.Correu,
		Edat:         u.Edat,
		Nacionalitat: u.Nacionalitat,
		CodiPostal:   u.CodiPostal,
		ImatgePerfil: u.ImatgePerfil,
		Btc:          u.Btc.String(),
		Admin:        u.Admin,
		Superadmin:   u.Superadmin,
		LE:           u.LE,
		Nivell:       u.Nivell,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// NewUserResponses maps a slice of account entities
func NewUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
