package repository

import "github.com/jhoicas/Libreta-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para el agregado Customer.
// AppendProduct debe ser una extensión atómica del arreglo en el almacén
// (nunca leer-modificar-escribir desde el llamador).
type CustomerRepository interface {
	List() ([]*entity.Customer, error)
	Create(customer *entity.Customer) (string, error)
	AppendProduct(id string, product entity.Product) error
}
