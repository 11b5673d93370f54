package entity

import "time"

// Tipos válidos de pérdida de inventario.
const (
	LossTypeTheft    = "robo"
	LossTypeDamage   = "deterioro"
	LossTypeClerical = "error_registro"
	LossTypeOther    = "otro"
)

// ValidLossType indica si el tipo de pérdida pertenece a la enumeración cerrada.
func ValidLossType(t string) bool {
	switch t {
	case LossTypeTheft, LossTypeDamage, LossTypeClerical, LossTypeOther:
		return true
	}
	return false
}

// Loss representa una pérdida de inventario (merma). Inmutable una vez creada.
// Opcionalmente descuenta stock del producto al registrarse (efecto del caso de uso, no de la entidad).
type Loss struct {
	ID         string
	ProductID  string
	Quantity   int
	LossType   string // robo, deterioro, error_registro, otro
	Reason     string
	ReportedBy string
	LossDate   time.Time
}
