package chatservice

import "strings"

type rule struct {
	keywords []string
	response string
}

// rules é avaliada em ordem; a primeira regra com alguma palavra-chave contida na
// mensagem vence. Por isso "pontos" responde como "ponto".
var rules = []rule{
	{
		keywords: []string{"coleta", "coletar"},
		response: "Você pode agendar coletas através do nosso aplicativo! Temos pontos de coleta em diversos bairros da cidade. Precisa de ajuda para encontrar o ponto mais próximo?",
	},
	{
		keywords: []string{"recicl", "lixo"},
		response: "A reciclagem é fundamental! Separamos materiais como plástico, papel, vidro e metal. Você sabe como separar corretamente seus resíduos?",
	},
	{
		keywords: []string{"ponto", "local"},
		response: "Temos vários pontos de coleta disponíveis: EcoPonto Centro (Rua das Flores, 123), Cooperativa ReciclaVida (Av. Reciclagem, 456) e EcoPonto Norte (Rua Sustentável, 789). Qual fica mais próximo de você?",
	},
	{
		keywords: []string{"como", "funciona"},
		response: "É muito simples! 1) Separe seus resíduos recicláveis, 2) Encontre o ponto de coleta mais próximo, 3) Leve seus materiais até lá, 4) Ganhe pontos que podem ser trocados por recompensas!",
	},
	{
		keywords: []string{"pontos", "recompensa"},
		response: "A cada kg de material reciclável que você entrega, ganha pontos! Plástico e vidro: 10 pontos/kg, Papel: 8 pontos/kg, Metal: 15 pontos/kg. Acumule pontos e troque por descontos em parceiros!",
	},
	{
		keywords: []string{"olá", "oi", "bom dia", "boa tarde", "boa noite"},
		response: "Olá! Bem-vindo ao Recicle.me! 👋 Sou seu assistente virtual. Como posso ajudar você hoje? Posso responder sobre coletas, pontos de reciclagem, recompensas e muito mais!",
	},
}

// FallbackResponse é devolvida quando nenhuma palavra-chave casa.
const FallbackResponse = "Obrigado pela sua pergunta! Posso ajudar você com informações sobre coletas, pontos de reciclagem, tipos de materiais recicláveis e recompensas. Como posso auxiliar?"

// Service responde mensagens do chat com textos fixos. Não guarda estado.
type Service struct{}

// NewService cria o respondedor do chat.
func NewService() *Service {
	return &Service{}
}

// Reply devolve a resposta para a mensagem.
func (s *Service) Reply(message string) string {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.response
			}
		}
	}
	return FallbackResponse
}
