package uistate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type post struct {
	ID       int
	Title    string
	Excerpt  string
	Category string
}

func (p post) FilterCategory() string { return p.Category }

func (p post) SearchFields() []string { return []string{p.Title, p.Excerpt} }

const todos = "Todos"

var blogPosts = []post{
	{
		ID:       1,
		Title:    "Mudanças na Lei Trabalhista: O que sua empresa precisa saber",
		Excerpt:  "As recentes alterações na legislação trabalhista trouxeram importantes impactos para empresas.",
		Category: "Direito Trabalhista",
	},
	{
		ID:       2,
		Title:    "LGPD e Compliance: Guia Completo para Adequação",
		Excerpt:  "Um guia prático sobre como implementar as diretrizes da Lei Geral de Proteção de Dados.",
		Category: "Direito Digital",
	},
	{
		ID:       3,
		Title:    "Recuperação Judicial: Quando e Como Solicitar",
		Excerpt:  "Entenda os requisitos, procedimentos e benefícios da recuperação judicial para empresas.",
		Category: "Direito Empresarial",
	},
}

var blogCategories = []string{
	todos,
	"Direito Trabalhista",
	"Direito Digital",
	"Direito Empresarial",
	"Direito Tributário",
}

func ids(posts []post) []int {
	out := make([]int, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestFilterDefaults(t *testing.T) {
	f := NewFilter(blogPosts, blogCategories, todos)

	assert.Equal(t, FilterState{Category: todos}, f.State())
	assert.Equal(t, blogPosts, f.Visible())
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, todos, f.AllCategory())
}

func TestFilterCategory(t *testing.T) {
	f := NewFilter(blogPosts, blogCategories, todos)

	t.Run("SingleMatch", func(t *testing.T) {
		visible := f.SetCategory("Direito Digital")
		require.Len(t, visible, 1)
		assert.Equal(t, 2, visible[0].ID)
	})

	t.Run("NoMatchIsEmptyNotError", func(t *testing.T) {
		visible := f.SetCategory("Direito Tributário")
		assert.Empty(t, visible)
	})

	t.Run("UnknownCategoryMatchesNothing", func(t *testing.T) {
		assert.Empty(t, f.SetCategory("Direito Penal"))
	})

	t.Run("SentinelBypassesCategory", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, ids(f.SetCategory(todos)))
	})
}

func TestFilterSearchText(t *testing.T) {
	f := NewFilter(blogPosts, blogCategories, todos)

	tests := []struct {
		name     string
		query    string
		expected []int
	}{
		{"Empty is identity", "", []int{1, 2, 3}},
		{"Lowercase query", "lgpd", []int{2}},
		{"Uppercase query", "LGPD", []int{2}},
		{"Matches excerpt", "proteção de dados", []int{2}},
		{"Folds accented capitals", "RECUPERAÇÃO", []int{3}},
		{"Several matches keep order", "empresa", []int{1, 3}},
		{"Whitespace is trimmed", "  lgpd  ", []int{2}},
		{"No match", "habeas corpus", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(f.SetSearchText(tt.query)))
		})
	}
}

func TestFilterCombinesPredicates(t *testing.T) {
	f := NewFilter(blogPosts, blogCategories, todos)

	f.SetCategory("Direito Empresarial")
	assert.Equal(t, []int{3}, ids(f.SetSearchText("empresas")))

	f.SetCategory("Direito Digital")
	assert.Empty(t, f.Visible())

	assert.Equal(t, FilterState{Category: "Direito Digital", SearchText: "empresas"}, f.State())
}

func TestFilterApply(t *testing.T) {
	f := NewFilter(blogPosts, blogCategories, todos)

	assert.Equal(t, []int{2}, ids(f.Apply(FilterState{Category: todos, SearchText: "LGPD"})))
	assert.Equal(t, []int{1, 2, 3}, ids(f.Apply(FilterState{})))
	assert.Equal(t, todos, f.State().Category)
}

func TestFilterVisibleIsStable(t *testing.T) {
	f := NewFilter(blogPosts, blogCategories, todos)
	f.SetSearchText("lei")

	first := f.Visible()
	second := f.Visible()
	assert.Equal(t, first, second)

	// Callers cannot disturb the cached subset
	first[0] = post{ID: 99}
	assert.Equal(t, second, f.Visible())
}

func TestFilterSourceIsCopied(t *testing.T) {
	src := append([]post(nil), blogPosts...)
	f := NewFilter(src, blogCategories, todos)

	src[0].Title = "changed"
	assert.Equal(t, blogPosts[0], f.Visible()[0])
}

func TestFilterCategoriesIncludeSentinel(t *testing.T) {
	f := NewFilter(blogPosts, []string{"Direito Digital"}, todos)
	assert.Equal(t, []string{todos, "Direito Digital"}, f.Categories())
}

func TestFilterRecomputeHook(t *testing.T) {
	var states []FilterState
	var sizes []int
	f := NewFilter(blogPosts, blogCategories, todos, WithRecomputeHook(func(state FilterState, visible int) {
		states = append(states, state)
		sizes = append(sizes, visible)
	}))

	f.SetCategory("Direito Digital")
	f.SetSearchText("xyz")
	f.Visible()

	assert.Equal(t, []int{3, 1, 0}, sizes)
	assert.Equal(t, FilterState{Category: "Direito Digital", SearchText: "xyz"}, states[2])
}
