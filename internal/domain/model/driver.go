package model

// DriverStatus is the delivery service's driver state.
type DriverStatus string

const (
	DriverOnline   DriverStatus = "ONLINE"
	DriverOffline  DriverStatus = "OFFLINE"
	DriverDelivery DriverStatus = "DELIVERY"
)

// GeoLocation is a latitude/longitude pair.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Driver describes a delivery driver as served by the delivery service.
type Driver struct {
	DriverID  string       `json:"driverId"`
	Name      string       `json:"name"`
	Status    DriverStatus `json:"status"`
	Available bool         `json:"available"`
	Location  GeoLocation  `json:"driverLocation"`
}
