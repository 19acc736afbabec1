package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/windoze95/receitas-api/internal/search"
)

// Client messages for a bad ingredientes parameter.
const (
	msgMissingIngredients = `Parâmetro "ingredientes" obrigatório`
	msgNoValidIngredients = "Nenhum ingrediente válido"
)

// parseUintParam parses a string into a uint.
func parseUintParam(param string) (uint, error) {
	parsed, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, err
	}
	if parsed > uint64(^uint(0)) {
		return 0, fmt.Errorf("value out of range for uint: %d", parsed)
	}
	return uint(parsed), nil
}

// parsePageParam reads the pagina query value from its leading integer
// ("2abc" is page 2). No leading integer means the first page; smaller
// values are clamped to 1.
func parsePageParam(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	page, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 1
	}
	return search.ClampPage(page)
}

// parseIngredientsParam splits the comma-separated ingredientes value into
// trimmed, non-empty entries. When nothing usable is left it returns the
// message to send back instead.
func parseIngredientsParam(raw string) ([]string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, msgMissingIngredients
	}

	var ingredients []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ingredients = append(ingredients, part)
		}
	}
	if len(ingredients) == 0 {
		return nil, msgNoValidIngredients
	}
	return ingredients, ""
}

// listEnvelope builds the paginated response shared by every listing.
func listEnvelope[T any](page, total int, hasMore bool, items []T) map[string]any {
	if items == nil {
		items = []T{}
	}
	return map[string]any{
		"sucesso":   true,
		"pagina":    page,
		"total":     total,
		"mostrando": len(items),
		"tem_mais":  hasMore,
		"receitas":  items,
	}
}
