package ledger

// ImageUploader puerto hacia el servicio de medios externo.
// Recibe el contenido completo de la imagen y devuelve la URL pública del recurso.
type ImageUploader interface {
	Upload(data []byte) (string, error)
}
