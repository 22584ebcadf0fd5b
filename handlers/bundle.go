package handlers

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single argument.
type HandlerBundle struct {
	Business *BusinessHandler
	Booking  *BookingHandler
	Staff    *StaffHandler
	Catalog  *CatalogHandler
}
