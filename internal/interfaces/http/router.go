package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

// RouterDeps puertos que consume la capa HTTP.
type RouterDeps struct {
	Customers     repository.CustomerRepository
	Products      repository.ProductRepository
	Manufacturers repository.ManufacturerRepository
	Suppliers     repository.SupplierRepository
	Warehouses    repository.WarehouseRepository
	Vehicles      repository.VehicleRepository
	Orders        repository.OrderRepository
	Reports       repository.ReportCatalog
}

// Router registra todas las rutas de la consola sobre la app Fiber.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", Dashboard)

	customers := NewCustomerHandler(deps.Customers)
	app.Get("/customers", customers.List)
	app.Get("/customers/add", customers.AddForm)
	app.Post("/customers/add", customers.Add)
	app.Get("/customers/edit/:id", customers.EditForm)
	app.Post("/customers/edit/:id", customers.Edit)
	app.Post("/customers/delete/:id", customers.Delete)

	products := NewProductHandler(deps.Products, deps.Manufacturers)
	app.Get("/products", products.List)
	app.Get("/products/add", products.AddForm)
	app.Post("/products/add", products.Add)
	app.Get("/products/edit/:id", products.EditForm)
	app.Post("/products/edit/:id", products.Edit)
	app.Post("/products/delete/:id", products.Delete)

	suppliers := NewSupplierHandler(deps.Suppliers)
	app.Get("/suppliers", suppliers.List)
	app.Get("/suppliers/add", suppliers.AddForm)
	app.Post("/suppliers/add", suppliers.Add)
	app.Get("/suppliers/edit/:id", suppliers.EditForm)
	app.Post("/suppliers/edit/:id", suppliers.Edit)
	app.Post("/suppliers/delete/:id", suppliers.Delete)

	manufacturers := NewManufacturerHandler(deps.Manufacturers)
	app.Get("/manufacturers", manufacturers.List)
	app.Get("/manufacturers/add", manufacturers.AddForm)
	app.Post("/manufacturers/add", manufacturers.Add)
	app.Get("/manufacturers/edit/:id", manufacturers.EditForm)
	app.Post("/manufacturers/edit/:id", manufacturers.Edit)
	app.Post("/manufacturers/delete/:id", manufacturers.Delete)

	warehouses := NewWarehouseHandler(deps.Warehouses)
	app.Get("/warehouses", warehouses.List)
	app.Get("/warehouses/add", warehouses.AddForm)
	app.Post("/warehouses/add", warehouses.Add)
	app.Get("/warehouses/edit/:id", warehouses.EditForm)
	app.Post("/warehouses/edit/:id", warehouses.Edit)
	app.Post("/warehouses/delete/:id", warehouses.Delete)

	vehicles := NewVehicleHandler(deps.Vehicles)
	app.Get("/vehicles", vehicles.List)
	app.Get("/vehicles/add", vehicles.AddForm)
	app.Post("/vehicles/add", vehicles.Add)
	app.Get("/vehicles/edit/:id", vehicles.EditForm)
	app.Post("/vehicles/edit/:id", vehicles.Edit)
	app.Post("/vehicles/delete/:id", vehicles.Delete)

	orders := NewOrderHandler(deps.Orders)
	app.Get("/orders", orders.List)
	app.Get("/orders/:id", orders.Detail)

	reports := NewReportHandler(deps.Reports)
	app.Get("/reports", reports.Index)
	app.Get("/reports/:name", reports.Run)
}

// Dashboard GET / página de inicio con los accesos a cada módulo.
func Dashboard(c *fiber.Ctx) error {
	return render(c, "index", fiber.Map{})
}
