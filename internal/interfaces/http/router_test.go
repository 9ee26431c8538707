package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-admin/internal/application/auth"
	"github.com/jhoicas/tienda-admin/internal/application/usecase"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/jsonstore"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/upload"
	apphttp "github.com/jhoicas/tienda-admin/internal/interfaces/http"
	"github.com/jhoicas/tienda-admin/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testSite struct {
	t       *testing.T
	app     *fiber.App
	dir     string
	static  string
	cookies map[string]*http.Cookie
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()
	dir := t.TempDir()
	static := filepath.Join(dir, "static")
	images, err := upload.NewStorage(static, "images")
	require.NoError(t, err)
	uploads, err := upload.NewStorage(static, "uploads")
	require.NoError(t, err)

	log := logger.Nop()
	app := apphttp.NewApp(apphttp.RouterDeps{
		AppName:     "tienda-admin-test",
		AuthUC:      auth.NewAuthUseCase(jsonstore.NewUserRepository(filepath.Join(dir, "users.json"), log), auth.SchemePlain),
		ProductUC:   usecase.NewProductUseCase(jsonstore.NewProductRepository(filepath.Join(dir, "products.json"), log), images, log),
		PromotionUC: usecase.NewPromotionUseCase(jsonstore.NewPromotionRepository(filepath.Join(dir, "promotions.json"), log), uploads, log),
		OrderUC:     usecase.NewOrderUseCase(log),
		Sessions:    apphttp.NewSessions(apphttp.SessionConfig{}),
		StaticDir:   static,
		Log:         log,
	})
	return &testSite{t: t, app: app, dir: dir, static: static, cookies: map[string]*http.Cookie{}}
}

// do envía la petición conservando las cookies entre llamadas, como un navegador.
func (s *testSite) do(req *http.Request) *http.Response {
	s.t.Helper()
	for _, c := range s.cookies {
		req.AddCookie(c)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	for _, c := range resp.Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(s.cookies, c.Name)
			continue
		}
		s.cookies[c.Name] = c
	}
	return resp
}

func (s *testSite) get(path string) *http.Response {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testSite) postForm(path string, values url.Values) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func (s *testSite) postJSON(path, body string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

type filePart struct {
	field, filename, content string
}

func (s *testSite) postMultipart(path string, values map[string]string, files ...filePart) *http.Response {
	s.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range values {
		require.NoError(s.t, w.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := w.CreateFormFile(f.field, f.filename)
		require.NoError(s.t, err)
		_, err = io.WriteString(fw, f.content)
		require.NoError(s.t, err)
	}
	require.NoError(s.t, w.Close())
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return s.do(req)
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func readJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (s *testSite) products() []map[string]interface{} {
	s.t.Helper()
	raw, err := os.ReadFile(filepath.Join(s.dir, "products.json"))
	require.NoError(s.t, err)
	var out []map[string]interface{}
	require.NoError(s.t, json.Unmarshal(raw, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Cabeceras y utilidades
// ──────────────────────────────────────────────────────────────────────────────

func TestNoCache_EnTodasLasRespuestas(t *testing.T) {
	site := newTestSite(t)
	for _, path := range []string{"/", "/products", "/no-existe", "/health"} {
		resp := site.get(path)
		assert.Equal(t, "no-store, no-cache, must-revalidate, post-check=0, pre-check=0, max-age=0",
			resp.Header.Get("Cache-Control"), path)
		assert.Equal(t, "no-cache", resp.Header.Get("Pragma"), path)
		assert.Equal(t, "0", resp.Header.Get("Expires"), path)
	}
}

func TestNoCache_EnPanicoRecuperado(t *testing.T) {
	site := newTestSite(t)
	site.app.Get("/falla", func(c *fiber.Ctx) error {
		panic("fallo inesperado")
	})

	resp := site.get("/falla")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "no-store, no-cache, must-revalidate, post-check=0, pre-check=0, max-age=0",
		resp.Header.Get("Cache-Control"))
	assert.Equal(t, "no-cache", resp.Header.Get("Pragma"))
	assert.Equal(t, "0", resp.Header.Get("Expires"))
}

func TestHealth(t *testing.T) {
	site := newTestSite(t)
	resp := site.get("/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := readJSON(t, resp)
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, "tienda-admin-test", out["service"])
}

func TestHome(t *testing.T) {
	site := newTestSite(t)
	resp := site.get("/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Store administration")
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro, login y logout
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_FlujoCompleto(t *testing.T) {
	site := newTestSite(t)
	form := url.Values{"username": {"ana"}, "password": {"clave"}, "confirm": {"clave"}}

	resp := site.postForm("/register", form)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Contains(t, body(t, site.get("/login")), "Registration successful. Please login.")

	// El flash se muestra una sola vez.
	assert.NotContains(t, body(t, site.get("/login")), "Registration successful.")

	resp = site.postForm("/register", url.Values{"username": {"ana"}, "password": {"otra"}, "confirm": {"otra"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/register", resp.Header.Get("Location"))
	assert.Contains(t, body(t, site.get("/register")), "Username already exists.")

	raw, err := os.ReadFile(filepath.Join(site.dir, "users.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ana":{"password":"clave"}}`, string(raw))
}

func TestRegister_Validaciones(t *testing.T) {
	site := newTestSite(t)
	cases := []struct {
		form url.Values
		msg  string
	}{
		{url.Values{"username": {"ana"}, "password": {"a"}, "confirm": {"b"}}, "Passwords do not match."},
		{url.Values{"username": {"  "}, "password": {"a"}, "confirm": {"a"}}, "Please fill all fields."},
		{url.Values{}, "Please fill all fields."},
	}
	for _, tc := range cases {
		resp := site.postForm("/register", tc.form)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/register", resp.Header.Get("Location"))
		assert.Contains(t, body(t, site.get("/register")), tc.msg)
	}
	_, err := os.Stat(filepath.Join(site.dir, "users.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoginLogout(t *testing.T) {
	site := newTestSite(t)
	site.postForm("/register", url.Values{"username": {"ana"}, "password": {"clave"}, "confirm": {"clave"}})

	resp := site.postForm("/login", url.Values{"username": {"ana"}, "password": {"mala"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Contains(t, body(t, site.get("/login")), "Invalid username or password.")

	resp = site.postForm("/login", url.Values{"username": {" ana "}, "password": {"clave"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/products", resp.Header.Get("Location"))

	page := body(t, site.get("/products"))
	assert.Contains(t, page, "Login successful.")
	assert.Contains(t, page, "Logout")

	resp = site.get("/logout")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	page = body(t, site.get("/login"))
	assert.Contains(t, page, "Logged out successfully.")
	assert.NotContains(t, page, "/logout")
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_ConImagen(t *testing.T) {
	site := newTestSite(t)
	resp := site.postMultipart("/add_product",
		map[string]string{"name": "Café", "price": "12.5", "description": "molido"},
		filePart{"image", "../café molido.png", "png"},
	)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/products", resp.Header.Get("Location"))

	products := site.products()
	require.Len(t, products, 1)
	assert.Equal(t, "Café", products[0]["name"])
	assert.Equal(t, 12.5, products[0]["price"])
	assert.Equal(t, "images/cafe_molido.png", products[0]["image"])
	assert.FileExists(t, filepath.Join(site.static, "images", "cafe_molido.png"))

	page := body(t, site.get("/products"))
	assert.Contains(t, page, "Café")
	assert.Contains(t, page, "12.50")
	assert.Contains(t, page, "/static/images/cafe_molido.png")

	resp = site.get("/static/images/cafe_molido.png")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "png", body(t, resp))
}

func TestAddProduct_SinImagenYConCampoVacio(t *testing.T) {
	site := newTestSite(t)
	resp := site.postForm("/add_product", url.Values{"name": {"Té"}, "price": {"3"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp = site.postMultipart("/add_product", map[string]string{"name": "Pan", "price": "1.2"},
		filePart{"image", "", ""})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	products := site.products()
	require.Len(t, products, 2)
	assert.Equal(t, "", products[0]["image"])
	assert.Equal(t, "", products[1]["image"])
}

func TestAddProduct_PrecioInvalido(t *testing.T) {
	site := newTestSite(t)
	resp := site.postForm("/add_product", url.Values{"name": {"Té"}, "price": {"gratis"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEditProduct(t *testing.T) {
	site := newTestSite(t)
	site.postForm("/add_product", url.Values{"name": {"Té"}, "price": {"3"}, "description": {"verde"}})
	id := site.products()[0]["id"].(string)

	resp := site.get("/edit_product/" + id)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), `value="Té"`)

	resp = site.postForm("/edit_product/"+id, url.Values{"name": {"Té negro"}, "price": {"4.25"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	products := site.products()
	require.Len(t, products, 1)
	assert.Equal(t, "Té negro", products[0]["name"])
	assert.Equal(t, 4.25, products[0]["price"])
	assert.Equal(t, "", products[0]["description"])
}

func TestEditProduct_NoEncontrado(t *testing.T) {
	site := newTestSite(t)

	resp := site.get("/edit_product/no-existe")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", body(t, resp))

	resp = site.postForm("/edit_product/no-existe", url.Values{"name": {"x"}, "price": {"1"}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", body(t, resp))
}

func TestDeleteProduct(t *testing.T) {
	site := newTestSite(t)
	site.postMultipart("/add_product", map[string]string{"name": "A", "price": "1"}, filePart{"image", "a.png", "a"})
	site.postForm("/add_product", url.Values{"name": {"B"}, "price": {"2"}})
	products := site.products()
	require.Len(t, products, 2)
	id := products[0]["id"].(string)

	before, err := os.ReadFile(filepath.Join(site.dir, "products.json"))
	require.NoError(t, err)
	resp := site.do(httptest.NewRequest(http.MethodPost, "/delete_product/no-existe", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	out := readJSON(t, resp)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Product not found", out["error"])
	after, err := os.ReadFile(filepath.Join(site.dir, "products.json"))
	require.NoError(t, err)
	assert.Equal(t, before, after)

	resp = site.do(httptest.NewRequest(http.MethodPost, "/delete_product/"+id, nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"success": true}, readJSON(t, resp))

	assert.NoFileExists(t, filepath.Join(site.static, "images", "a.png"))
	products = site.products()
	require.Len(t, products, 1)
	assert.Equal(t, "B", products[0]["name"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedido
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderSummary(t *testing.T) {
	site := newTestSite(t)
	resp := site.postForm("/order_summary", url.Values{
		"order_data": {`[{"name":"Café","price":"10.5","quantity":2},{"name":"Pan","price":"3","quantity":1}]`},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	page := body(t, resp)
	assert.Contains(t, page, "24.00")
	assert.Contains(t, page, "Café")
	assert.Contains(t, page, "Pan")
}

func TestOrderSummary_JSONInvalido(t *testing.T) {
	site := newTestSite(t)
	for _, data := range []string{"{roto", ""} {
		resp := site.postForm("/order_summary", url.Values{"order_data": {data}})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		page := body(t, resp)
		assert.Contains(t, page, "Your order is empty.")
		assert.Contains(t, page, "0.00")
	}
}

func TestSaveYConfirmOrder(t *testing.T) {
	site := newTestSite(t)

	resp := site.postJSON("/save_order_changes", `{"items":[{"name":"Café","price":"10.5","quantity":2}]}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"success": true}, readJSON(t, resp))
	assert.JSONEq(t, `[{"name":"Café","price":"10.5","quantity":2}]`, body(t, site.get("/order_items")))

	resp = site.postJSON("/save_order_changes", `{"items":[]}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, body(t, site.get("/order_items")))

	site.postJSON("/save_order_changes", `{"items":[{"price":1,"quantity":1}]}`)
	resp = site.do(httptest.NewRequest(http.MethodPost, "/confirm_order", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"success": true}, readJSON(t, resp))
	assert.JSONEq(t, `[]`, body(t, site.get("/order_items")))
}

func TestSaveOrder_CuerpoInvalido(t *testing.T) {
	site := newTestSite(t)
	resp := site.postJSON("/save_order_changes", `no es json`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"success": true}, readJSON(t, resp))
	assert.JSONEq(t, `[]`, body(t, site.get("/order_items")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Promociones
// ──────────────────────────────────────────────────────────────────────────────

func promotionFields(name string) map[string]string {
	return map[string]string{"name": name, "price": "9", "saving": "1", "quantity": "2", "description": "combo"}
}

func TestAddPromotion(t *testing.T) {
	site := newTestSite(t)
	for _, name := range []string{"uno", "dos"} {
		resp := site.postMultipart("/add_promotion", promotionFields(name), filePart{"image", name + ".jpg", name})
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/promotions", resp.Header.Get("Location"))
	}

	raw, err := os.ReadFile(filepath.Join(site.dir, "promotions.json"))
	require.NoError(t, err)
	var promos []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &promos))
	require.Len(t, promos, 2)
	assert.Equal(t, 1.0, promos[0]["id"])
	assert.Equal(t, 2.0, promos[1]["id"])
	assert.Equal(t, "uploads/dos.jpg", promos[1]["image"])
	assert.FileExists(t, filepath.Join(site.static, "uploads", "dos.jpg"))

	page := body(t, site.get("/promotions"))
	assert.Contains(t, page, "uno")
	assert.Contains(t, page, "10.00", "precio regular = price + saving")
}

func TestAddPromotion_SinImagen(t *testing.T) {
	site := newTestSite(t)
	resp := site.postMultipart("/add_promotion", promotionFields("uno"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err := os.Stat(filepath.Join(site.dir, "promotions.json"))
	assert.True(t, os.IsNotExist(err))
}
