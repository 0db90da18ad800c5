package domain

import "github.com/shopspring/decimal"

// Pontos por unidade de quantidade, por faixa de material.
const (
	PontosMetal        = 15
	PontosPlasticVidro = 10
	PontosPadrao       = 8
)

var half = decimal.NewFromFloat(0.5)

// PontosPorUnidade devolve a taxa da categoria. Categorias desconhecidas caem
// na faixa padrão sem erro.
func PontosPorUnidade(categoria MaterialCategory) int64 {
	switch categoria {
	case CategoriaMetal:
		return PontosMetal
	case CategoriaPlastico, CategoriaVidro:
		return PontosPlasticVidro
	default:
		return PontosPadrao
	}
}

// CalculatePoints calcula round(quantidade * taxa) com arredondamento half-up.
// A quantidade não é validada aqui; isso é responsabilidade de quem chama.
func CalculatePoints(categoria MaterialCategory, quantidade decimal.Decimal) int64 {
	rate := decimal.NewFromInt(PontosPorUnidade(categoria))
	return quantidade.Mul(rate).Add(half).Floor().IntPart()
}
