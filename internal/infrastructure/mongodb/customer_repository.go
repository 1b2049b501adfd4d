package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customersCollection = "customers"

// CustomerRepo implementación de CustomerRepository sobre MongoDB.
type CustomerRepo struct {
	col *mongo.Collection
}

// NewCustomerRepository construye el adaptador sobre la base de datos indicada.
func NewCustomerRepository(db *mongo.Database) *CustomerRepo {
	return &CustomerRepo{col: db.Collection(customersCollection)}
}

// List devuelve todos los clientes ordenados por fecha de creación descendente.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	ctx := context.Background()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Customer
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decodificar clientes: %w", err)
	}
	return list, nil
}

// Create persiste un nuevo agregado y devuelve el id generado por el almacén.
func (r *CustomerRepo) Create(customer *entity.Customer) (string, error) {
	res, err := r.col.InsertOne(context.Background(), customer)
	if err != nil {
		return "", fmt.Errorf("insertar cliente: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("id generado con tipo inesperado %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// AppendProduct extiende el arreglo products del cliente con un $push atómico.
// No lee el documento: la atomicidad del append la garantiza el servidor.
func (r *CustomerRepo) AppendProduct(id string, product entity.Product) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Un id que no es ObjectID no puede referenciar ningún documento.
		return domain.ErrNotFound
	}
	res, err := r.col.UpdateByID(context.Background(), oid, bson.M{
		"$push": bson.M{"products": product},
	})
	if err != nil {
		return fmt.Errorf("agregar producto al cliente %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
