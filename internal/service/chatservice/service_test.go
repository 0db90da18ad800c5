package chatservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"coleta", "Quero agendar uma COLETA", rules[0].response},
		{"reciclagem", "como reciclar vidro?", rules[1].response},
		{"lixo", "onde jogo o lixo", rules[1].response},
		{"local", "qual o local mais perto", rules[2].response},
		{"pontos casa com ponto", "quantos pontos eu ganho", rules[2].response},
		{"funciona", "isso funciona?", rules[3].response},
		{"recompensa", "tem recompensa?", rules[4].response},
		{"saudação", "Boa tarde!", rules[5].response},
		{"fallback", "qual a capital da frança", FallbackResponse},
		{"vazia", "", FallbackResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Reply(tt.message))
		})
	}
}

func TestReply_FirstMatchWins(t *testing.T) {
	// "coleta" e "recicl" presentes: vale a primeira regra.
	assert.Equal(t, rules[0].response, NewService().Reply("reciclagem e coleta"))
}
