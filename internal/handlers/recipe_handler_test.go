package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/models"
	"github.com/windoze95/receitas-api/internal/service"
	"github.com/windoze95/receitas-api/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setUser is a test middleware that injects a user into the gin context.
func setUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set("user_id", user.ID)
			c.Set("user", user)
		}
		c.Next()
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON %q: %v", w.Body.String(), err)
	}
	return body
}

func newSearchRouter(repo *testutil.MockRecipeRepo) *gin.Engine {
	handler := NewSearchHandler(service.NewSearchService(&config.Config{}, repo))
	r := gin.New()
	r.GET("/receitas", handler.SearchRecipes)
	return r
}

func TestSearchRecipes_Envelope(t *testing.T) {
	r := newSearchRouter(testutil.NewMockRecipeRepo(testutil.TestRecipes()...))

	req := httptest.NewRequest("GET", "/receitas?ingredientes=Ovo,%20farinha%20&pagina=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d. body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["sucesso"] != true {
		t.Errorf("sucesso = %v", body["sucesso"])
	}
	ingredientes, _ := body["ingredientes"].([]interface{})
	if len(ingredientes) != 2 || ingredientes[0] != "Ovo" || ingredientes[1] != "farinha" {
		t.Errorf("ingredientes = %v, want trimmed echo", body["ingredientes"])
	}
	// bolo (4.8/250) then panqueca (N/A)
	receitas, _ := body["receitas"].([]interface{})
	if len(receitas) != 2 {
		t.Fatalf("receitas = %v", body["receitas"])
	}
	first := receitas[0].(map[string]interface{})
	if first["titulo"] != "Bolo de cenoura" || first["nota"] != "4.8" || first["avaliacoes"] != "250 votos" {
		t.Errorf("first = %v", first)
	}
	if _, leaked := first["ingredientes"]; leaked {
		t.Error("summaries should not carry ingredients")
	}
	if body["total"] != float64(2) || body["mostrando"] != float64(2) || body["tem_mais"] != false || body["pagina"] != float64(1) {
		t.Errorf("envelope = %v", body)
	}
}

func TestSearchRecipes_BadParams(t *testing.T) {
	r := newSearchRouter(testutil.NewMockRecipeRepo())

	cases := map[string]string{
		"/receitas":                     `Parâmetro "ingredientes" obrigatório`,
		"/receitas?ingredientes=%20%20": `Parâmetro "ingredientes" obrigatório`,
		"/receitas?ingredientes=,%20,":  "Nenhum ingrediente válido",
	}
	for url, want := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", url, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", url, w.Code)
			continue
		}
		if got := decodeBody(t, w)["erro"]; got != want {
			t.Errorf("%s: erro = %v, want %q", url, got, want)
		}
	}
}

func TestSearchRecipes_PageBeyondEnd(t *testing.T) {
	r := newSearchRouter(testutil.NewMockRecipeRepo(testutil.TestRecipes()...))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/receitas?ingredientes=ovo&pagina=abc", nil))
	if decodeBody(t, w)["pagina"] != float64(1) {
		t.Error("non-numeric pagina should fall back to 1")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/receitas?ingredientes=ovo&pagina=5", nil))
	body := decodeBody(t, w)
	receitas, ok := body["receitas"].([]interface{})
	if !ok || len(receitas) != 0 {
		t.Errorf("receitas = %v, want empty array", body["receitas"])
	}
	if body["total"] != float64(3) || body["tem_mais"] != false {
		t.Errorf("envelope = %v", body)
	}
}

func TestSearchRecipes_HugePage(t *testing.T) {
	r := newSearchRouter(testutil.NewMockRecipeRepo(testutil.TestRecipes()...))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/receitas?ingredientes=ovo&pagina=9223372036854775807", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d. body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	body := decodeBody(t, w)
	receitas, ok := body["receitas"].([]interface{})
	if !ok || len(receitas) != 0 {
		t.Errorf("receitas = %v, want empty array", body["receitas"])
	}
	if body["total"] != float64(3) || body["tem_mais"] != false || body["mostrando"] != float64(0) {
		t.Errorf("envelope = %v", body)
	}
}

func TestSearchRecipes_CorpusError(t *testing.T) {
	repo := testutil.NewMockRecipeRepo()
	repo.ReadCorpusErr = http.ErrHandlerTimeout
	r := newSearchRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/receitas?ingredientes=ovo", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got := decodeBody(t, w)["erro"]; got != "Erro ao buscar receitas" {
		t.Errorf("erro = %v", got)
	}
}

func newRecipeRouter(repo *testutil.MockRecipeRepo) *gin.Engine {
	handler := NewRecipeHandler(service.NewRecipeService(&config.Config{}, repo))
	r := gin.New()
	r.GET("/receitas/surpresa", handler.GetSurpriseRecipe)
	r.GET("/receitas/:id", handler.GetRecipe)
	return r
}

func TestGetRecipe_Valid(t *testing.T) {
	r := newRecipeRouter(testutil.NewMockRecipeRepo(testutil.TestRecipes()...))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/receitas/1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d. body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	receita, ok := decodeBody(t, w)["receita"].(map[string]interface{})
	if !ok {
		t.Fatal("response missing 'receita'")
	}
	if receita["titulo"] != "Bolo de cenoura" {
		t.Errorf("titulo = %v", receita["titulo"])
	}
	if steps, _ := receita["modo_preparo"].([]interface{}); len(steps) != 2 {
		t.Errorf("modo_preparo = %v", receita["modo_preparo"])
	}
	if ings, _ := receita["ingredientes"].([]interface{}); len(ings) != 3 {
		t.Errorf("ingredientes = %v", receita["ingredientes"])
	}
}

func TestGetRecipe_InvalidAndMissing(t *testing.T) {
	r := newRecipeRouter(testutil.NewMockRecipeRepo(testutil.TestRecipes()...))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/receitas/abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/receitas/999", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing status = %d, want 404", w.Code)
	}
	if got := decodeBody(t, w)["erro"]; got != "Receita não encontrada" {
		t.Errorf("erro = %v", got)
	}
}

func TestGetSurpriseRecipe(t *testing.T) {
	r := newRecipeRouter(testutil.NewMockRecipeRepo(testutil.TestRecipes()...))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/receitas/surpresa", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["mensagem"] != "Receita surpresa! 🎉" {
		t.Errorf("mensagem = %v", body["mensagem"])
	}

	empty := newRecipeRouter(testutil.NewMockRecipeRepo())
	w = httptest.NewRecorder()
	empty.ServeHTTP(w, httptest.NewRequest("GET", "/receitas/surpresa", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("empty corpus status = %d, want 404", w.Code)
	}
	if got := decodeBody(t, w)["erro"]; got != "Nenhuma receita disponível" {
		t.Errorf("erro = %v", got)
	}
}
