package entity

// Customer cliente de la cadena de suministro. El ID lo elige el operador al crear.
type Customer struct {
	ID      int64
	Name    string
	Address string
	Contact string
}
