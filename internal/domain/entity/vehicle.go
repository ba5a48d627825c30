package entity

// Vehicle vehículo de la flota de despachos.
type Vehicle struct {
	ID           int64
	Type         string
	LicensePlate string
	Capacity     int64
	Status       string
}
