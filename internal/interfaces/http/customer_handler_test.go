package http_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Libreta-api/internal/application/ledger"
	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Libreta-api/internal/interfaces/http"
	"github.com/jhoicas/Libreta-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type memRepo struct {
	customers []*entity.Customer
}

func (r *memRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, len(r.customers))
	copy(out, r.customers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memRepo) Create(customer *entity.Customer) (string, error) {
	c := *customer
	c.ID = primitive.NewObjectID()
	r.customers = append(r.customers, &c)
	return c.ID.Hex(), nil
}

func (r *memRepo) AppendProduct(id string, product entity.Product) error {
	for _, c := range r.customers {
		if c.ID.Hex() == id {
			c.Products = append(c.Products, product)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memUploader struct {
	url   string
	calls int
}

func (u *memUploader) Upload(data []byte) (string, error) {
	u.calls++
	return u.url, nil
}

// buildTestApp construye una app Fiber con los formularios montados y
// dependencias en memoria. Las vistas HTML no se montan: los tests cubren
// los endpoints de formulario (redirect y códigos de error), no el render.
func buildTestApp(t *testing.T) (*fiber.App, *memRepo, *memUploader) {
	t.Helper()
	repo := &memRepo{}
	up := &memUploader{url: "https://res.cloudinary.com/test/foto.jpg"}
	uc := ledger.NewCustomerUseCase(repo, up, "https://via.placeholder.com/150?text=No+Image")
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	app := fiber.New()
	h := apphttp.NewCustomerHandler(uc, log)
	app.Post("/add-customer", h.CreateCustomer)
	app.Post("/add-product/:id", h.AddProduct)
	return app, repo, up
}

// multipartForm arma un cuerpo multipart con los campos dados y, opcionalmente,
// un archivo en el campo image.
func multipartForm(t *testing.T, fields map[string]string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		fw, err := w.CreateFormFile("image", "foto.jpg")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func doPost(t *testing.T, app *fiber.App, path string, body *bytes.Buffer, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /add-customer
// ──────────────────────────────────────────────────────────────────────────────

func TestAddCustomer_FormularioValidoRedirige(t *testing.T) {
	app, repo, up := buildTestApp(t)

	body, ct := multipartForm(t, map[string]string{
		"customerName": "Alice",
		"productName":  "Scarf",
		"price":        "25.50",
		"status":       "unpaid",
	}, nil)
	resp := doPost(t, app, "/add-customer", body, ct)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"), "tras guardar se vuelve a la lista")

	require.Len(t, repo.customers, 1)
	assert.Equal(t, "Alice", repo.customers[0].Name)
	require.Len(t, repo.customers[0].Products, 1)
	assert.Equal(t, entity.StatusUnpaid, repo.customers[0].Products[0].Status)
	assert.Zero(t, up.calls, "sin archivo no hay subida")
}

func TestAddCustomer_ConArchivoSubeLaImagen(t *testing.T) {
	app, repo, up := buildTestApp(t)

	body, ct := multipartForm(t, map[string]string{
		"customerName": "Alice",
		"productName":  "Scarf",
		"price":        "25.50",
		"status":       "paid",
	}, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	resp := doPost(t, app, "/add-customer", body, ct)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, 1, up.calls)
	require.Len(t, repo.customers, 1)
	assert.Equal(t, up.url, repo.customers[0].Products[0].Image)
}

func TestAddCustomer_PrecioInvalidoRetorna400(t *testing.T) {
	app, repo, _ := buildTestApp(t)

	body, ct := multipartForm(t, map[string]string{
		"customerName": "Alice",
		"productName":  "Scarf",
		"price":        "-5",
		"status":       "paid",
	}, nil)
	resp := doPost(t, app, "/add-customer", body, ct)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	msg, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(msg), "price", "la respuesta debe nombrar el campo inválido")
	assert.Empty(t, repo.customers)
}

func TestAddCustomer_StatusInvalidoRetorna400(t *testing.T) {
	app, repo, _ := buildTestApp(t)

	body, ct := multipartForm(t, map[string]string{
		"customerName": "Alice",
		"productName":  "Scarf",
		"price":        "10",
		"status":       "pending",
	}, nil)
	resp := doPost(t, app, "/add-customer", body, ct)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.customers)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /add-product/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_ClienteExistenteRedirige(t *testing.T) {
	app, repo, _ := buildTestApp(t)
	id, err := repo.Create(&entity.Customer{
		Name:     "Alice",
		Products: []entity.Product{{Name: "Scarf", Price: 25.5, Status: entity.StatusUnpaid}},
	})
	require.NoError(t, err)

	body, ct := multipartForm(t, map[string]string{
		"productName": "Belt",
		"price":       "10",
		"status":      "paid",
	}, nil)
	resp := doPost(t, app, "/add-product/"+id, body, ct)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	require.Len(t, repo.customers[0].Products, 2)
	assert.Equal(t, "Belt", repo.customers[0].Products[1].Name)
}

func TestAddProduct_ClienteInexistenteRetorna404(t *testing.T) {
	app, repo, _ := buildTestApp(t)

	body, ct := multipartForm(t, map[string]string{
		"productName": "Belt",
		"price":       "10",
		"status":      "paid",
	}, nil)
	resp := doPost(t, app, "/add-product/"+primitive.NewObjectID().Hex(), body, ct)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, repo.customers, "un append fallido no produce cambios visibles")
}
