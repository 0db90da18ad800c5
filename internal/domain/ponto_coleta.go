package domain

// PontoColeta é um local físico fixo que aceita um conjunto de categorias.
type PontoColeta struct {
	ID       int                `json:"id"`
	Nome     string             `json:"nome"`
	Endereco string             `json:"endereco"`
	Lat      float64            `json:"lat"`
	Lng      float64            `json:"lng"`
	Tipos    []MaterialCategory `json:"tipos"`
}

// Aceita informa se o ponto recebe a categoria.
func (p PontoColeta) Aceita(categoria MaterialCategory) bool {
	for _, t := range p.Tipos {
		if t == categoria {
			return true
		}
	}
	return false
}

// pontosColeta é o catálogo estático (Zona Sul de São Paulo).
var pontosColeta = []PontoColeta{
	{
		ID:       1,
		Nome:     "EcoPonto Shopping Ibirapuera",
		Endereco: "Av. Ibirapuera, 3103 - Moema, São Paulo - SP",
		Lat:      -23.5975,
		Lng:      -46.6575,
		Tipos:    []MaterialCategory{CategoriaPlastico, CategoriaPapel, CategoriaVidro, CategoriaMetal},
	},
	{
		ID:       2,
		Nome:     "Cooperativa ReciclaVida Brooklin",
		Endereco: "Av. Eng. Luís Carlos Berrini, 1461 - Brooklin, São Paulo - SP",
		Lat:      -23.6129,
		Lng:      -46.6925,
		Tipos:    []MaterialCategory{CategoriaPlastico, CategoriaPapel, CategoriaMetal, CategoriaEletronicos},
	},
	{
		ID:       3,
		Nome:     "EcoPonto Parque Ibirapuera",
		Endereco: "Av. Pedro Álvares Cabral - Vila Mariana, São Paulo - SP",
		Lat:      -23.5875,
		Lng:      -46.6572,
		Tipos:    []MaterialCategory{CategoriaVidro, CategoriaPapel, CategoriaPlastico},
	},
	{
		ID:       4,
		Nome:     "Centro de Triagem Morumbi",
		Endereco: "Av. Roque Petroni Júnior, 1089 - Morumbi, São Paulo - SP",
		Lat:      -23.6234,
		Lng:      -46.6978,
		Tipos:    []MaterialCategory{CategoriaPlastico, CategoriaPapel, CategoriaVidro, CategoriaMetal, CategoriaEletronicos},
	},
}

// PontosColeta devolve uma cópia do catálogo.
func PontosColeta() []PontoColeta {
	out := make([]PontoColeta, len(pontosColeta))
	copy(out, pontosColeta)
	return out
}

// FindPontoColeta busca um ponto pelo ID.
func FindPontoColeta(id int) (PontoColeta, bool) {
	for _, p := range pontosColeta {
		if p.ID == id {
			return p, true
		}
	}
	return PontoColeta{}, false
}
