package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/violetta-moda/violetta-api/internal/domain"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// usuarioDoc es la forma BSON de entity.Usuario. El email se guarda en
// minúsculas para que el índice único no distinga mayúsculas.
type usuarioDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Nombre       string             `bson:"nombre"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Rol          string             `bson:"rol"`
	Activo       bool               `bson:"activo"`
	UltimoAcceso *time.Time         `bson:"ultimo_acceso,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *usuarioDoc) aEntidad() *entity.Usuario {
	return &entity.Usuario{
		ID:           d.ID.Hex(),
		Nombre:       d.Nombre,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Rol:          d.Rol,
		Activo:       d.Activo,
		UltimoAcceso: d.UltimoAcceso,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func aUsuarioDoc(u *entity.Usuario) *usuarioDoc {
	return &usuarioDoc{
		Nombre:       u.Nombre,
		Email:        strings.ToLower(u.Email),
		PasswordHash: u.PasswordHash,
		Rol:          u.Rol,
		Activo:       u.Activo,
		UltimoAcceso: u.UltimoAcceso,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// UsuarioRepo implementación de UsuarioRepository sobre MongoDB. La
// unicidad del email la garantiza el índice único de la colección: un
// duplicate key error se traduce a domain.ErrEmailAlreadyExists.
type UsuarioRepo struct {
	col *mongo.Collection
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(db *mongo.Database) *UsuarioRepo {
	return &UsuarioRepo{col: db.Collection(ColUsuarios)}
}

// GetAll devuelve todos los usuarios ordenados por fecha de creación.
func (r *UsuarioRepo) GetAll(ctx context.Context) ([]*entity.Usuario, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer cursor.Close(ctx)
	var list []*entity.Usuario
	for cursor.Next(ctx) {
		var doc usuarioDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode usuario: %w", err)
		}
		list = append(list, doc.aEntidad())
	}
	return list, cursor.Err()
}

// GetByID devuelve el usuario o (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// GetByEmail devuelve el usuario con ese email o (nil, nil).
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

// Create inserta el usuario. El índice único de email convierte un alta
// duplicada concurrente en ErrEmailAlreadyExists en lugar de un 500.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	res, err := r.col.InsertOne(ctx, aUsuarioDoc(u))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// Update reemplaza los campos del usuario existente.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return nil
	}
	_, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": aUsuarioDoc(u)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Delete elimina el usuario. Devuelve false si no existía.
func (r *UsuarioRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete usuario: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// ActualizarUltimoAcceso registra la fecha del último login.
func (r *UsuarioRepo) ActualizarUltimoAcceso(ctx context.Context, id string, t time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"ultimo_acceso": t}})
	if err != nil {
		return fmt.Errorf("actualizar último acceso: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UsuarioRepo) findOne(ctx context.Context, filter bson.M) (*entity.Usuario, error) {
	var doc usuarioDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return doc.aEntidad(), nil
}
