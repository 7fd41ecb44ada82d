package repository

import (
	"time"

	"faretrack-service/internal/domain/entity"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Airports GORM model for database mapping
type Airports struct {
	ID          uint   `gorm:"primaryKey"`
	IATACode    string `gorm:"column:iata_code;type:varchar(3);not null;uniqueIndex:uq_airports_iata_code"`
	City        string `gorm:"column:city;not null"`
	Country     string `gorm:"column:country;not null"`
	Provisional bool   `gorm:"column:provisional;not null"`
	CreatedAt   time.Time
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "airports"
}

func (a *Airports) toEntity() *entity.Airport {
	return &entity.Airport{
		ID:          a.ID,
		IATACode:    a.IATACode,
		City:        a.City,
		Country:     a.Country,
		Provisional: a.Provisional,
		CreatedAt:   a.CreatedAt,
	}
}

// Airlines GORM model for database mapping
type Airlines struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"column:code;type:varchar(3);not null;uniqueIndex:uq_airlines_code"`
	Name      string `gorm:"column:name;not null;index:idx_airlines_name"`
	CreatedAt time.Time
}

// TableName overrides the default table name
func (Airlines) TableName() string {
	return "airlines"
}

func (a *Airlines) toEntity() *entity.Airline {
	return &entity.Airline{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

// Routes GORM model for database mapping
type Routes struct {
	ID                 uint     `gorm:"primaryKey"`
	AirlineID          uint     `gorm:"column:airline_id;not null;uniqueIndex:uq_routes_airline_departure_arrival,priority:1"`
	DepartureAirportID uint     `gorm:"column:departure_airport_id;not null;uniqueIndex:uq_routes_airline_departure_arrival,priority:2"`
	ArrivalAirportID   uint     `gorm:"column:arrival_airport_id;not null;uniqueIndex:uq_routes_airline_departure_arrival,priority:3"`
	Airline            Airlines `gorm:"foreignKey:AirlineID"`
	DepartureAirport   Airports `gorm:"foreignKey:DepartureAirportID"`
	ArrivalAirport     Airports `gorm:"foreignKey:ArrivalAirportID"`
	CreatedAt          time.Time
}

// TableName overrides the default table name
func (Routes) TableName() string {
	return "routes"
}

func (r *Routes) toEntity() *entity.Route {
	return &entity.Route{
		ID:                 r.ID,
		AirlineID:          r.AirlineID,
		DepartureAirportID: r.DepartureAirportID,
		ArrivalAirportID:   r.ArrivalAirportID,
		CreatedAt:          r.CreatedAt,
	}
}

// Flights GORM model for database mapping
type Flights struct {
	ID                uint      `gorm:"primaryKey"`
	RouteID           uint      `gorm:"column:route_id;not null;uniqueIndex:uq_flights_route_number_departure,priority:1"`
	FlightNumber      string    `gorm:"column:flight_number;not null;uniqueIndex:uq_flights_route_number_departure,priority:2;index:idx_flights_flight_number"`
	DepartureDateTime time.Time `gorm:"column:departure_datetime;not null;uniqueIndex:uq_flights_route_number_departure,priority:3"`
	ArrivalDateTime   time.Time `gorm:"column:arrival_datetime;not null"`
	Route             Routes    `gorm:"foreignKey:RouteID"`
	CreatedAt         time.Time
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "flights"
}

func (f *Flights) toEntity() *entity.Flight {
	return &entity.Flight{
		ID:                f.ID,
		RouteID:           f.RouteID,
		FlightNumber:      f.FlightNumber,
		DepartureDateTime: f.DepartureDateTime,
		ArrivalDateTime:   f.ArrivalDateTime,
		CreatedAt:         f.CreatedAt,
	}
}

// SearchOperations GORM model for database mapping
type SearchOperations struct {
	ID               uint              `gorm:"primaryKey"`
	RunID            string            `gorm:"column:run_id;type:varchar(36);not null;index"`
	Timestamp        time.Time         `gorm:"column:timestamp;not null;index"`
	Successful       bool              `gorm:"column:successful;not null"`
	ErrorMessage     *string           `gorm:"column:error_message"`
	DepartureDate    string            `gorm:"column:departure_date;type:varchar(10);not null"`
	DepartureAirport string            `gorm:"column:departure_airport;type:varchar(3);not null"`
	ArrivalAirport   string            `gorm:"column:arrival_airport;type:varchar(3);not null"`
	Currency         string            `gorm:"column:currency;type:varchar(3)"`
	URL              string            `gorm:"column:url"`
	StatusCode       *int              `gorm:"column:status_code"`
	FaresReceived    int               `gorm:"column:fares_received;not null"`
	FaresRejected    int               `gorm:"column:fares_rejected;not null"`
	QueryParams      datatypes.JSONMap `gorm:"column:query_params"`
}

// TableName overrides the default table name
func (SearchOperations) TableName() string {
	return "search_operations"
}

func (s *SearchOperations) toEntity() *entity.SearchOperation {
	op := &entity.SearchOperation{
		ID:               s.ID,
		RunID:            s.RunID,
		Timestamp:        s.Timestamp,
		Successful:       s.Successful,
		DepartureDate:    s.DepartureDate,
		DepartureAirport: s.DepartureAirport,
		ArrivalAirport:   s.ArrivalAirport,
		Currency:         s.Currency,
		URL:              s.URL,
		FaresReceived:    s.FaresReceived,
		FaresRejected:    s.FaresRejected,
		QueryParams:      map[string]interface{}(s.QueryParams),
	}
	if s.ErrorMessage != nil {
		op.ErrorMessage = *s.ErrorMessage
	}
	if s.StatusCode != nil {
		op.StatusCode = *s.StatusCode
	}
	return op
}

// PriceSnapshots GORM model for database mapping
type PriceSnapshots struct {
	ID            uint             `gorm:"primaryKey"`
	FlightID      uint             `gorm:"column:flight_id;not null;index"`
	SearchID      uint             `gorm:"column:search_id;not null;index"`
	Timestamp     time.Time        `gorm:"column:timestamp;not null;index"`
	OutboundPrice float64          `gorm:"column:outbound_price;not null"`
	ReturnPrice   float64          `gorm:"column:return_price;not null"`
	Flight        Flights          `gorm:"foreignKey:FlightID"`
	Search        SearchOperations `gorm:"foreignKey:SearchID"`
}

// TableName overrides the default table name
func (PriceSnapshots) TableName() string {
	return "price_snapshots"
}

// AirportDirectory GORM model for database mapping
type AirportDirectory struct {
	ID          uint   `gorm:"primaryKey"`
	IATACode    string `gorm:"column:iata_code;type:varchar(3);not null;uniqueIndex:uq_airport_directory_iata_code"`
	AirportName string `gorm:"column:airport_name"`
	City        string `gorm:"column:city;not null"`
	Country     string `gorm:"column:country;not null"`
	TzName      string `gorm:"column:tz_name"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (AirportDirectory) TableName() string {
	return "airport_directory"
}

func (d *AirportDirectory) toEntity() *entity.AirportDirectoryEntry {
	return &entity.AirportDirectoryEntry{
		ID:          d.ID,
		IATACode:    d.IATACode,
		AirportName: d.AirportName,
		City:        d.City,
		Country:     d.Country,
		TzName:      d.TzName,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Migrate creates or updates the tables, unique constraints and foreign keys
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AirportDirectory{},
		&Airports{},
		&Airlines{},
		&Routes{},
		&Flights{},
		&SearchOperations{},
		&PriceSnapshots{},
	)
}
