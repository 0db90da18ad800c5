package domain

import "time"

// User representa a conta autenticável.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Oculta o hash da senha no JSON de resposta
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRole é um tipo string para representar o papel do usuário no sistema.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// UserRegistration representa o payload de cadastro.
type UserRegistration struct {
	Nome           string `json:"nome" example:"Maria"`
	Email          string `json:"email" example:"maria@exemplo.com"`
	Senha          string `json:"senha" example:"segredo123"`
	ConfirmarSenha string `json:"confirmar_senha" example:"segredo123"`
}

// Profile é o perfil 1:1 de uma conta. O email é copiado da conta.
type Profile struct {
	UserID    string    `json:"user_id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	Endereco  string    `json:"endereco"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate contém os campos editáveis do perfil.
type ProfileUpdate struct {
	Nome      string `json:"nome"`
	Telefone  string `json:"telefone"`
	Endereco  string `json:"endereco"`
	AvatarURL string `json:"avatar_url"`
}

// ProfileView é o perfil com o total de pontos derivado das coletas do usuário.
type ProfileView struct {
	Profile     Profile `json:"profile"`
	TotalPontos int64   `json:"total_pontos"`
}

// Stats agrega números da plataforma para o painel administrativo.
// Cada valor vem de uma consulta independente.
type Stats struct {
	TotalUsers             int64 `json:"total_users"`
	TotalCollections       int64 `json:"total_collections"`
	TotalPointsDistributed int64 `json:"total_points_distributed"`
	TotalCategories        int64 `json:"total_categories"`
}
