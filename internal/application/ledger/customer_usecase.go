package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de la libreta: crear cliente con su primer
// producto, fiar un producto más a un cliente existente y listar la libreta.
type CustomerUseCase struct {
	repo           repository.CustomerRepository
	uploader       ImageUploader
	placeholderURL string
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, uploader ImageUploader, placeholderURL string) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, uploader: uploader, placeholderURL: placeholderURL}
}

// Create registra un cliente nuevo junto con su primer producto y devuelve
// el id asignado por el almacén. Toda la validación ocurre antes de cualquier
// efecto (subida de imagen o escritura): una subida fallida falla la petición
// completa, nunca se persiste un agregado a medias.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (string, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return "", domain.NewFieldError("customerName", "es requerido")
	}
	product, err := uc.buildProduct(in.Product)
	if err != nil {
		return "", err
	}
	customer := &entity.Customer{
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Products:  []entity.Product{product},
	}
	return uc.repo.Create(customer)
}

// AppendProduct fía un producto adicional a un cliente existente.
// El append en el almacén es atómico; aquí nunca se lee el agregado.
func (uc *CustomerUseCase) AppendProduct(customerID string, in dto.NewProductRequest) error {
	if strings.TrimSpace(customerID) == "" {
		// Un id vacío no puede referenciar ningún cliente.
		return domain.ErrNotFound
	}
	product, err := uc.buildProduct(in)
	if err != nil {
		return err
	}
	return uc.repo.AppendProduct(customerID, product)
}

// List devuelve la libreta completa, clientes más recientes primero.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp := &dto.CustomerResponse{
			ID:        c.ID.Hex(),
			Name:      c.Name,
			CreatedAt: c.CreatedAt,
			Products:  make([]dto.ProductResponse, 0, len(c.Products)),
		}
		for _, p := range c.Products {
			resp.Products = append(resp.Products, dto.ProductResponse{
				Name:   p.Name,
				Price:  p.Price,
				Status: string(p.Status),
				Image:  p.Image,
				Date:   p.Date,
			})
		}
		out = append(out, resp)
	}
	return out, nil
}

// buildProduct valida el formulario de producto y resuelve la imagen:
// si viene archivo se sube al servicio de medios, si no se usa el placeholder.
func (uc *CustomerUseCase) buildProduct(in dto.NewProductRequest) (entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.Product{}, domain.NewFieldError("productName", "es requerido")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil {
		return entity.Product{}, domain.NewFieldError("price", "debe ser un número")
	}
	if price.IsNegative() {
		return entity.Product{}, domain.NewFieldError("price", "no puede ser negativo")
	}
	status, ok := entity.ParseProductStatus(in.Status)
	if !ok {
		return entity.Product{}, domain.NewFieldError("status", "debe ser paid o unpaid")
	}

	image := uc.placeholderURL
	if in.Image != nil {
		url, err := uc.uploader.Upload(in.Image)
		if err != nil {
			return entity.Product{}, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
		}
		image = url
	}

	return entity.Product{
		Name:   name,
		Price:  price.InexactFloat64(),
		Status: status,
		Image:  image,
		Date:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}
