package icon

import "strings"

// Default is used when no keyword matches the category name.
const Default = "📦"

type entry struct {
	keyword string
	glyph   string
}

// Order matters: the first keyword contained in the name wins.
var table = []entry{
	{"eletrodomésticos", "🔌"},
	{"eletrônicos", "📱"},
	{"celulares", "📱"},
	{"computadores", "💻"},
	{"informática", "🖥️"},
	{"casa", "🏠"},
	{"móveis", "🛋️"},
	{"decoração", "🖼️"},
	{"moda", "👕"},
	{"roupas", "👗"},
	{"calçados", "👟"},
	{"beleza", "💄"},
	{"saúde", "💊"},
	{"esportes", "⚽"},
	{"fitness", "🏋️"},
	{"brinquedos", "🧸"},
	{"games", "🎮"},
	{"livros", "📚"},
	{"ferramentas", "🔧"},
	{"automotivo", "🚗"},
	{"bebês", "👶"},
	{"pet", "🐕"},
	{"alimentos", "🍎"},
	{"bebidas", "🥤"},
	{"jardim", "🌱"},
	{"papelaria", "✏️"},
	{"instrumentos", "🎸"},
}

// Resolve picks the glyph for a category name by substring match.
func Resolve(categoryName string) string {
	name := strings.ToLower(categoryName)

	for _, e := range table {
		if strings.Contains(name, e.keyword) {
			return e.glyph
		}
	}

	return Default
}
