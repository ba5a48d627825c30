package entity

import "time"

// Shipment despacho de un pedido. VehicleType y LicensePlate solo se llenan
// en lecturas con LEFT JOIN a Vehicles (NULL si no hay vehículo asignado).
type Shipment struct {
	ID            int64
	OrderID       int64
	VehicleID     *int64
	Destination   string
	DepartureDate *time.Time
	ArrivalDate   *time.Time
	Status        string
	VehicleType   *string
	LicensePlate  *string
}
