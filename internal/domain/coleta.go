package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialCategory é o tipo de resíduo entregue na coleta.
type MaterialCategory string

const (
	CategoriaPlastico    MaterialCategory = "Plástico"
	CategoriaPapel       MaterialCategory = "Papel"
	CategoriaVidro       MaterialCategory = "Vidro"
	CategoriaMetal       MaterialCategory = "Metal"
	CategoriaEletronicos MaterialCategory = "Eletrônicos"
)

// Unit é a unidade de medida da quantidade.
type Unit string

const (
	UnidadeKg   Unit = "kg"
	UnidadeItem Unit = "unidade"
)

// Valid informa se a unidade é uma das aceitas.
func (u Unit) Valid() bool {
	return u == UnidadeKg || u == UnidadeItem
}

// Limites da coluna coletas.quantidade (NUMERIC(12,3)).
const QuantidadeCasasDecimais = 3

// MaxQuantidade é o maior valor que a coluna aceita.
var MaxQuantidade = decimal.RequireFromString("999999999.999")

// ColetaStatus representa o estado do ciclo de vida da coleta.
// O cancelamento remove o registro, por isso não existe um estado "cancelado".
type ColetaStatus string

const (
	StatusPendente  ColetaStatus = "pendente"
	StatusConcluido ColetaStatus = "concluído"
)

// Coleta representa um pedido de entrega de material reciclável em um ponto de coleta.
// PontoColeta e Endereco são cópias do ponto no momento da criação.
type Coleta struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	TipoResiduo  MaterialCategory `json:"tipo_residuo"`
	Quantidade   decimal.Decimal  `json:"quantidade" swaggertype:"number"`
	Unidade      Unit             `json:"unidade"`
	PontoColeta  string           `json:"ponto_coleta"`
	Endereco     string           `json:"endereco"`
	DataColeta   time.Time        `json:"data_coleta"`
	Status       ColetaStatus     `json:"status"`
	PontosGanhos int64            `json:"pontos_ganhos"`
	FotoURL      string           `json:"foto_url,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ColetaRequest é o payload de agendamento de uma coleta.
type ColetaRequest struct {
	PontoID     int              `json:"ponto_id" example:"1"`
	TipoResiduo MaterialCategory `json:"tipo_residuo" example:"Plástico"`
	Quantidade  decimal.Decimal  `json:"quantidade" swaggertype:"number" example:"3.5"`
	Unidade     Unit             `json:"unidade" example:"kg"`
	DataColeta  *time.Time       `json:"data_coleta,omitempty"`
	FotoURL     string           `json:"foto_url,omitempty"`
}

// ColetaAgendada é a resposta do agendamento: o registro persistido (com 0 pontos)
// e a estimativa provisória, que nunca é gravada.
type ColetaAgendada struct {
	Coleta          Coleta `json:"coleta"`
	PontosEstimados int64  `json:"pontos_estimados"`
}

// EstimativaRequest é o payload da estimativa de pontos.
type EstimativaRequest struct {
	TipoResiduo MaterialCategory `json:"tipo_residuo" example:"Metal"`
	Quantidade  decimal.Decimal  `json:"quantidade" swaggertype:"number" example:"2"`
}

// Estimativa é a resposta da estimativa provisória de pontos.
type Estimativa struct {
	TipoResiduo      MaterialCategory `json:"tipo_residuo"`
	PontosPorUnidade int64            `json:"pontos_por_unidade"`
	PontosEstimados  int64            `json:"pontos_estimados"`
}

// ColetaConcluidaEvent é publicado na fila quando uma coleta é concluída.
type ColetaConcluidaEvent struct {
	ColetaID string `json:"coleta_id"`
	UserID   string `json:"user_id"`
	Pontos   int64  `json:"pontos"`
}

// FotoUploadRequest é o payload para solicitar uma URL de upload da foto da coleta.
type FotoUploadRequest struct {
	Filename    string `json:"filename" example:"garrafas.jpg"`
	ContentType string `json:"content_type" example:"image/jpeg"`
}

// FotoUpload é a URL pré-assinada para PUT e a URL pública a gravar em foto_url.
type FotoUpload struct {
	UploadURL string    `json:"upload_url"`
	FotoURL   string    `json:"foto_url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}
