package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// O campo Error repete a mensagem para clientes que esperam o formato {"error": "..."}.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int    `json:"code" example:"400"`
	Category string `json:"category" example:"VALIDATION_ERROR"`
	Message  string `json:"message" example:"Erro de Validação: quantidade deve ser positiva."`
	Error    string `json:"error" example:"Erro de Validação: quantidade deve ser positiva."`
}
