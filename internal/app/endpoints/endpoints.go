package endpoints

// Endpoints holds every endpoint served over HTTP.
type Endpoints struct {
	FlightEndpoint   FlightEndpoint
	CheckoutEndpoint CheckoutEndpoint
	BookingEndpoint  BookingEndpoint
	VisaEndpoint     VisaEndpoint
	TripEndpoint     TripEndpoint
	AirportEndpoint  AirportEndpoint
}
