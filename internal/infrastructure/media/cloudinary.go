package media

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/jhoicas/Libreta-api/internal/application/ledger"
	"github.com/jhoicas/Libreta-api/pkg/config"
)

// Verificar en tiempo de compilación que CloudinaryUploader implementa ImageUploader.
var _ ledger.ImageUploader = (*CloudinaryUploader)(nil)

// CloudinaryUploader adaptador que sube imágenes a Cloudinary bajo una carpeta fija
// y devuelve la URL segura del recurso almacenado. No guarda estado local.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader construye el adaptador con las credenciales de la cuenta.
func NewCloudinaryUploader(cfg config.CloudinaryConfig) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("credenciales de cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: cfg.Folder}, nil
}

// Upload envía el buffer al servicio y devuelve la URL pública del recurso.
// No reintenta: el llamador decide cómo presentar el fallo.
func (u *CloudinaryUploader) Upload(data []byte) (string, error) {
	res, err := u.cld.Upload.Upload(context.Background(), bytes.NewReader(data), uploader.UploadParams{
		Folder:   u.folder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("subir imagen a cloudinary: %w", err)
	}
	// El SDK puede devolver err == nil con el rechazo dentro del cuerpo.
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rechazó la imagen: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("cloudinary no devolvió URL para el recurso")
	}
	return res.SecureURL, nil
}
