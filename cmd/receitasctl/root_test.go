package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpusYAML = `
receitas:
  - titulo: Bolo de fubá
    nota: "4.7"
    avaliacoes: 80 votos
    ingredientes: [2 xícaras de fubá, 3 ovos]
    modo_preparo: [Misture tudo, Asse por 40 minutos]
  - titulo: Omelete
    nota: "4.2"
    avaliacoes: 12 votos
    ingredientes: [2 ovos, sal]
    modo_preparo: [Bata e frite]
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSeedSearchAndSurprise(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "receitas.db")
	corpus := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(corpus, []byte(corpusYAML), 0o600))
	common := []string{"--env", filepath.Join(dir, "missing.env"), "--database-url", dbPath}

	out, err := run(t, append([]string{"seed", "--file", corpus}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "2 receitas importadas")

	out, err = run(t, append([]string{"search", "--ingredientes", "ovos,sal"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Omelete")
	assert.NotContains(t, out, "Bolo de fubá")
	assert.Contains(t, out, "1 de 1 receitas")

	out, err = run(t, append([]string{"surpresa"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Ingredientes:")
	assert.Contains(t, out, "Modo de preparo:")
}

func TestSearchRequiresIngredients(t *testing.T) {
	_, err := run(t, "search", "--ingredientes", " , ")
	assert.Error(t, err)

	_, err = run(t, "search")
	assert.Error(t, err)
}

func TestSeedRequiresFile(t *testing.T) {
	_, err := run(t, "seed")
	assert.Error(t, err)
}
